// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Structured error kinds for the sockcore library. Every fallible entry
// point fails with exactly one of these; callers match them with
// errors.As / errors.Is and treat failures as terminal for that call.

package api

import (
	"errors"
	"fmt"
)

// ErrNotSupported marks a facility the platform does not provide,
// such as the peer-credential query outside Linux.
var ErrNotSupported = errors.New("operation not supported on this platform")

// ArgumentError reports malformed caller input: wrong type, wrong
// arity, or an out-of-range length.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string { return e.Reason }

// AddrError reports a malformed or undersized sockaddr buffer, or
// invalid numeric address text.
type AddrError struct {
	Reason string
}

func (e *AddrError) Error() string { return e.Reason }

// ResolutionError reports an OS-level name resolution failure. Op names
// the resolution primitive, Err carries the OS-reported reason.
type ResolutionError struct {
	Op  string
	Err error
}

func (e *ResolutionError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *ResolutionError) Unwrap() error { return e.Err }

// SyscallError tags a failing OS call with its name so callers can
// tell which primitive failed without parsing message text.
type SyscallError struct {
	Call  string
	Errno error
}

func (e *SyscallError) Error() string { return fmt.Sprintf("%s: %v", e.Call, e.Errno) }

func (e *SyscallError) Unwrap() error { return e.Errno }

// NewSyscallError wraps err as a SyscallError for call. A nil err
// yields nil, so OS call results can be wrapped unconditionally.
func NewSyscallError(call string, err error) error {
	if err == nil {
		return nil
	}
	return &SyscallError{Call: call, Errno: err}
}
