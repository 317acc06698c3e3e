// File: resolver/backend.go
// Author: momentics <momentics@gmail.com>
//
// Resolution backend contract and hint flags.

package resolver

import (
	"context"

	"github.com/momentics/sockcore/api"
)

// Forward-resolution hint flags carried in api.Request.Flags.
const (
	// FlagPassive makes an empty host resolve to the wildcard address
	// instead of loopback, for listeners.
	FlagPassive = 0x1
	// FlagNumericHost requires the host to be a numeric literal; no
	// lookup is performed.
	FlagNumericHost = 0x4
	// FlagNumericServ requires the service to be a numeric port.
	FlagNumericServ = 0x400
)

// Reverse-resolution flags for ReverseResolve.
const (
	// NameNumericHost returns the numeric host text without a lookup.
	NameNumericHost = 0x1
	// NameNumericServ returns the numeric port text. Service names are
	// not looked up by this layer either way; the flag is accepted for
	// call-site compatibility.
	NameNumericServ = 0x2
	// NameReqd makes a missing reverse mapping an error instead of
	// falling back to the numeric host.
	NameReqd = 0x8
)

// Backend performs the actual OS-level resolution. Lookup allocates a
// result set the caller must pass to Free exactly once; Free must
// tolerate being the only reference holder left.
type Backend interface {
	Lookup(ctx context.Context, req *api.Request) (*api.ResultSet, error)
	Free(rs *api.ResultSet)
	LookupName(ctx context.Context, sa []byte, flags int) (host, serv string, err error)
}
