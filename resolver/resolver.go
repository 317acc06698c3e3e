// File: resolver/resolver.go
// Author: momentics <momentics@gmail.com>
//
// Resolver with a single-slot outstanding result set. The slot is the
// crash-safety cell the addrinfo model requires: between allocation and
// free the set is owned here, and replace/teardown serialize on the
// mutex so concurrent calls can neither double-free nor leak it.

package resolver

import (
	"context"
	"errors"
	"sync"

	"github.com/momentics/sockcore/api"
	"github.com/momentics/sockcore/control"
	"github.com/momentics/sockcore/sockaddr"
)

// ErrClosed is returned by calls on a resolver after Close.
var ErrClosed = errors.New("resolver is closed")

// Resolver performs forward and reverse resolution through a Backend.
type Resolver struct {
	mu      sync.Mutex
	backend Backend
	pending *api.ResultSet
	metrics *control.MetricsRegistry
	closed  bool
}

// Option customizes resolver initialization.
type Option func(*Resolver)

// WithBackend replaces the default OS backend.
func WithBackend(b Backend) Option {
	return func(r *Resolver) { r.backend = b }
}

// WithMetrics wires lookup/free counters into a registry.
func WithMetrics(m *control.MetricsRegistry) Option {
	return func(r *Resolver) { r.metrics = m }
}

// New creates a resolver over the OS backend unless overridden.
func New(opts ...Option) *Resolver {
	r := &Resolver{backend: NewOSBackend()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve performs forward resolution. Any result set still outstanding
// from a previous call is released first. Zero candidates without an OS
// error is an empty slice, not an error.
func (r *Resolver) Resolve(ctx context.Context, req *api.Request) ([]api.AddrInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	r.releaseLocked()

	r.count("resolver.lookups")
	rs, err := r.backend.Lookup(ctx, req)
	if err != nil {
		return nil, &api.ResolutionError{Op: "getaddrinfo", Err: err}
	}
	r.pending = rs
	infos, err := convert(rs)
	r.releaseLocked()
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// ReverseResolve translates an address back into host and service
// strings. The address's raw layout bytes are used when present,
// otherwise the address is encoded first.
func (r *Resolver) ReverseResolve(ctx context.Context, a *api.Address, flags int) (string, string, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return "", "", ErrClosed
	}
	backend := r.backend
	r.count("resolver.reverse")
	r.mu.Unlock()

	sa := a.Raw
	if len(sa) == 0 {
		enc, err := sockaddr.Encode(a)
		if err != nil {
			return "", "", err
		}
		sa = enc
	}
	host, serv, err := backend.LookupName(ctx, sa, flags)
	if err != nil {
		var ae *api.AddrError
		if errors.As(err, &ae) {
			return "", "", err
		}
		return "", "", &api.ResolutionError{Op: "getnameinfo", Err: err}
	}
	return host, serv, nil
}

// Close releases any outstanding result set exactly once. Further calls
// on the resolver fail with ErrClosed; Close itself is idempotent.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked()
	r.closed = true
	return nil
}

// releaseLocked frees the outstanding set and clears the slot. Callers
// hold r.mu.
func (r *Resolver) releaseLocked() {
	if r.pending == nil {
		return
	}
	r.backend.Free(r.pending)
	r.pending = nil
	r.count("resolver.frees")
}

func (r *Resolver) count(key string) {
	if r.metrics != nil {
		r.metrics.Inc(key)
	}
}

// convert decodes every raw candidate. A malformed candidate aborts the
// whole conversion; the caller still frees the set.
func convert(rs *api.ResultSet) ([]api.AddrInfo, error) {
	infos := make([]api.AddrInfo, 0, len(rs.Entries))
	for _, e := range rs.Entries {
		a, err := sockaddr.Decode(e.Sockaddr)
		if err != nil {
			return nil, err
		}
		infos = append(infos, api.AddrInfo{
			Addr:     a,
			SockType: e.SockType,
			Protocol: e.Protocol,
		})
	}
	return infos, nil
}
