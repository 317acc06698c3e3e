// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Address families, decoded endpoint addresses and resolution
// request/result types shared by the codec, resolver and descriptor
// layers.

package api

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// Family identifies the structure and namespace of a network address.
// The numeric value is the OS AF_* constant.
type Family int

const (
	FamilyUnspec Family = unix.AF_UNSPEC
	FamilyINET   Family = unix.AF_INET
	FamilyINET6  Family = unix.AF_INET6
	FamilyUNIX   Family = unix.AF_UNIX
)

// IsIP reports whether the family is one of the internet families.
func (f Family) IsIP() bool {
	return f == FamilyINET || f == FamilyINET6
}

// Known reports whether the family is one the codec can marshal.
func (f Family) Known() bool {
	return f == FamilyINET || f == FamilyINET6 || f == FamilyUNIX
}

// String returns the AF_* name of the family.
func (f Family) String() string {
	switch f {
	case FamilyINET:
		return "AF_INET"
	case FamilyINET6:
		return "AF_INET6"
	case FamilyUNIX:
		return "AF_UNIX"
	case FamilyUnspec:
		return "AF_UNSPEC"
	default:
		return fmt.Sprintf("AF_(%d)", int(f))
	}
}

// Address is a decoded network endpoint. Treat it as read-only after
// construction: every producer (codec, resolver, descriptor queries)
// hands out a fresh value.
//
// IP and Port are meaningful for the internet families, Path for
// AF_UNIX. Raw holds the OS-structure byte layout the address was
// decoded from or encoded to; it may be empty for addresses built
// directly from fields.
type Address struct {
	Family Family
	IP     []byte // 4 bytes for INET, 16 for INET6
	Port   int
	Path   string // UNIX socket path
	Scope  uint32 // INET6 scope id, passed through opaquely
	Raw    []byte
}

// UnixPath returns the filesystem path of an AF_UNIX address.
func (a *Address) UnixPath() (string, error) {
	if a.Family != FamilyUNIX {
		return "", &AddrError{Reason: "need AF_UNIX address"}
	}
	return a.Path, nil
}

// HostIP returns the numeric host text of an internet-family address.
func (a *Address) HostIP() (string, error) {
	if !a.Family.IsIP() {
		return "", &AddrError{Reason: "need AF_INET or AF_INET6 address"}
	}
	return net.IP(a.IP).String(), nil
}

// String renders the address for logs and diagnostics.
func (a *Address) String() string {
	switch a.Family {
	case FamilyINET:
		return fmt.Sprintf("%s:%d", net.IP(a.IP), a.Port)
	case FamilyINET6:
		return fmt.Sprintf("[%s]:%d", net.IP(a.IP), a.Port)
	case FamilyUNIX:
		return a.Path
	default:
		return a.Family.String()
	}
}

// Request describes one forward-resolution call. An empty Host means
// "any/local" (see the resolver's passive flag); an empty Service means
// no port lookup. Family, SockType, Protocol and Flags are hints in the
// getaddrinfo sense. A Request is never mutated after construction.
type Request struct {
	Host     string
	Service  string
	Family   Family
	SockType int
	Protocol int
	Flags    int
}

// RawAddrInfo is one unconverted resolution candidate: the OS-layout
// sockaddr bytes plus the (family, socktype, protocol) triple the
// backend derived for it.
type RawAddrInfo struct {
	Sockaddr []byte
	Family   Family
	SockType int
	Protocol int
}

// AddrInfo is one converted resolution candidate.
type AddrInfo struct {
	Addr     *Address
	SockType int
	Protocol int
}

// ResultSet is the handle for the candidate set produced by a single
// resolution call. It models the OS addrinfo list: a scarce resource
// owned by the resolver that produced it and freed through its backend
// exactly once.
type ResultSet struct {
	Entries []RawAddrInfo
}
