// File: sockaddr/codec.go
// Author: momentics <momentics@gmail.com>
//
// Binary sockaddr marshaling. Addresses are copied through the
// unix.RawSockaddr* structures so the emitted bytes match the platform
// layout bit for bit, including the length prefix on BSD-like systems.

//go:build linux || darwin

package sockaddr

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/sockcore/api"
)

// minSockaddrLen is the smallest buffer that still carries a family tag.
const minSockaddrLen = 2

// pathOffset is where sun_path starts inside sockaddr_un. Two bytes of
// header on every supported platform (family16, or len8+family8).
const pathOffset = 2

// unixPathCap is the sun_path capacity including the NUL terminator.
var unixPathCap = len(unix.RawSockaddrUnix{}.Path)

// PathMax returns the longest UNIX socket path Encode accepts.
func PathMax() int { return unixPathCap - 1 }

// Encode produces the OS-structure byte layout for a. The port of an
// internet address is written in network byte order; a UNIX path is
// NUL-terminated inside the fixed-size structure.
func Encode(a *api.Address) ([]byte, error) {
	switch a.Family {
	case api.FamilyINET:
		if len(a.IP) != 4 {
			return nil, &api.AddrError{Reason: "invalid address"}
		}
		var sa unix.RawSockaddrInet4
		initSockaddr4(&sa)
		putPort(&sa.Port, a.Port)
		copy(sa.Addr[:], a.IP)
		return structBytes(unsafe.Pointer(&sa), unix.SizeofSockaddrInet4), nil

	case api.FamilyINET6:
		if len(a.IP) != 16 {
			return nil, &api.AddrError{Reason: "invalid address"}
		}
		var sa unix.RawSockaddrInet6
		initSockaddr6(&sa)
		putPort(&sa.Port, a.Port)
		copy(sa.Addr[:], a.IP)
		sa.Scope_id = a.Scope
		return structBytes(unsafe.Pointer(&sa), unix.SizeofSockaddrInet6), nil

	case api.FamilyUNIX:
		var sa unix.RawSockaddrUnix
		if len(a.Path) > len(sa.Path)-1 {
			return nil, &api.ArgumentError{
				Reason: fmt.Sprintf("too long unix socket path (max: %d bytes)", len(sa.Path)-1),
			}
		}
		initSockaddrUnix(&sa)
		for i := 0; i < len(a.Path); i++ {
			sa.Path[i] = int8(a.Path[i])
		}
		return structBytes(unsafe.Pointer(&sa), unix.SizeofSockaddrUnix), nil

	default:
		return nil, &api.AddrError{Reason: "unknown address family"}
	}
}

// RawFamily reads the family tag of a sockaddr buffer without decoding
// the rest of it.
func RawFamily(b []byte) (api.Family, error) {
	if len(b) < minSockaddrLen {
		return api.FamilyUnspec, &api.AddrError{Reason: "invalid sockaddr (too short)"}
	}
	return api.Family(rawFamily(b)), nil
}

// Decode reads the leading family tag of b, selects the matching layout
// and returns the decoded address. The input is not retained; Raw holds
// a trimmed copy.
func Decode(b []byte) (*api.Address, error) {
	fam, err := RawFamily(b)
	if err != nil {
		return nil, err
	}
	switch fam {
	case api.FamilyINET:
		if len(b) < unix.SizeofSockaddrInet4 {
			return nil, &api.AddrError{Reason: "invalid sockaddr (too short)"}
		}
		var sa unix.RawSockaddrInet4
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&sa)), unix.SizeofSockaddrInet4), b)
		return &api.Address{
			Family: fam,
			IP:     append([]byte(nil), sa.Addr[:]...),
			Port:   getPort(&sa.Port),
			Raw:    append([]byte(nil), b[:unix.SizeofSockaddrInet4]...),
		}, nil

	case api.FamilyINET6:
		if len(b) < unix.SizeofSockaddrInet6 {
			return nil, &api.AddrError{Reason: "invalid sockaddr (too short)"}
		}
		var sa unix.RawSockaddrInet6
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&sa)), unix.SizeofSockaddrInet6), b)
		return &api.Address{
			Family: fam,
			IP:     append([]byte(nil), sa.Addr[:]...),
			Port:   getPort(&sa.Port),
			Scope:  sa.Scope_id,
			Raw:    append([]byte(nil), b[:unix.SizeofSockaddrInet6]...),
		}, nil

	case api.FamilyUNIX:
		n := len(b)
		if n > unix.SizeofSockaddrUnix {
			n = unix.SizeofSockaddrUnix
		}
		var sa unix.RawSockaddrUnix
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&sa)), unix.SizeofSockaddrUnix)[:n], b[:n])
		avail := n - pathOffset
		path := make([]byte, 0, avail)
		for i := 0; i < avail; i++ {
			if sa.Path[i] == 0 {
				break
			}
			path = append(path, byte(sa.Path[i]))
		}
		return &api.Address{
			Family: fam,
			Path:   string(path),
			Raw:    append([]byte(nil), b[:n]...),
		}, nil

	default:
		return nil, &api.AddrError{Reason: "unknown address family"}
	}
}

// UnixPath extracts the filesystem path of an AF_UNIX sockaddr buffer.
func UnixPath(b []byte) (string, error) {
	a, err := Decode(b)
	if err != nil {
		return "", err
	}
	return a.UnixPath()
}

// ToUnix converts an OS-layout sockaddr buffer into the unix.Sockaddr
// shape the syscall wrappers take.
func ToUnix(b []byte) (unix.Sockaddr, error) {
	a, err := Decode(b)
	if err != nil {
		return nil, err
	}
	switch a.Family {
	case api.FamilyINET:
		sa := &unix.SockaddrInet4{Port: a.Port}
		copy(sa.Addr[:], a.IP)
		return sa, nil
	case api.FamilyINET6:
		sa := &unix.SockaddrInet6{Port: a.Port, ZoneId: a.Scope}
		copy(sa.Addr[:], a.IP)
		return sa, nil
	default:
		return &unix.SockaddrUnix{Name: a.Path}, nil
	}
}

// FromUnix converts a unix.Sockaddr returned by the kernel into a
// decoded address with its Raw layout filled in. A nil sockaddr (an
// unnamed peer) yields a nil address.
func FromUnix(sa unix.Sockaddr) (*api.Address, error) {
	var a *api.Address
	switch s := sa.(type) {
	case nil:
		return nil, nil
	case *unix.SockaddrInet4:
		a = &api.Address{
			Family: api.FamilyINET,
			IP:     append([]byte(nil), s.Addr[:]...),
			Port:   s.Port,
		}
	case *unix.SockaddrInet6:
		a = &api.Address{
			Family: api.FamilyINET6,
			IP:     append([]byte(nil), s.Addr[:]...),
			Port:   s.Port,
			Scope:  s.ZoneId,
		}
	case *unix.SockaddrUnix:
		a = &api.Address{Family: api.FamilyUNIX, Path: s.Name}
	default:
		return nil, &api.AddrError{Reason: "unknown address family"}
	}
	raw, err := Encode(a)
	if err != nil {
		return nil, err
	}
	a.Raw = raw
	return a, nil
}

// putPort stores port into a raw sockaddr port field in network byte
// order regardless of host endianness.
func putPort(p *uint16, port int) {
	b := (*[2]byte)(unsafe.Pointer(p))
	b[0] = byte(port >> 8)
	b[1] = byte(port)
}

// getPort reads a network-byte-order port field.
func getPort(p *uint16) int {
	b := (*[2]byte)(unsafe.Pointer(p))
	return int(b[0])<<8 | int(b[1])
}

// structBytes copies n bytes of the structure at p into a fresh slice.
func structBytes(p unsafe.Pointer, n int) []byte {
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}
