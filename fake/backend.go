// Author: momentics <momentics@gmail.com>
//
// Counting resolution backend for tests. Tracks every result set it
// allocates so tests can assert the alloc/free balance and catch
// double frees.

package fake

import (
	"context"
	"sync"

	"github.com/momentics/sockcore/api"
)

// Backend is an in-memory resolver backend. All fields are read under
// the backend's own lock via the accessor methods.
type Backend struct {
	mu   sync.Mutex
	live map[*api.ResultSet]bool

	lookups    int
	frees      int
	doubleFree int

	// Entries is handed out (copied) by every successful Lookup.
	Entries []api.RawAddrInfo
	// LookupErr, when set, makes Lookup fail without allocating.
	LookupErr error
	// Host, Serv and NameErr script LookupName.
	Host    string
	Serv    string
	NameErr error
}

// NewBackend returns an empty counting backend.
func NewBackend() *Backend {
	return &Backend{live: make(map[*api.ResultSet]bool)}
}

// Lookup allocates a tracked result set holding a copy of Entries.
func (b *Backend) Lookup(_ context.Context, _ *api.Request) (*api.ResultSet, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.LookupErr != nil {
		return nil, b.LookupErr
	}
	rs := &api.ResultSet{Entries: append([]api.RawAddrInfo(nil), b.Entries...)}
	b.live[rs] = true
	b.lookups++
	return rs, nil
}

// Free releases a tracked set; freeing an unknown or already-freed set
// is recorded as a double free.
func (b *Backend) Free(rs *api.ResultSet) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.live[rs] {
		b.doubleFree++
		return
	}
	delete(b.live, rs)
	b.frees++
}

// LookupName returns the scripted reverse-resolution answer.
func (b *Backend) LookupName(_ context.Context, _ []byte, _ int) (string, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.NameErr != nil {
		return "", "", b.NameErr
	}
	return b.Host, b.Serv, nil
}

// Lookups reports how many result sets were allocated.
func (b *Backend) Lookups() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lookups
}

// Frees reports how many result sets were released.
func (b *Backend) Frees() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frees
}

// Outstanding reports how many allocated sets have not been freed.
func (b *Backend) Outstanding() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live)
}

// DoubleFrees reports how many times a set was freed more than once.
func (b *Backend) DoubleFrees() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doubleFree
}
