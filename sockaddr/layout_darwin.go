// File: sockaddr/layout_darwin.go
// Author: momentics <momentics@gmail.com>
//
// Darwin sockaddr layout: one length byte followed by an 8-bit family
// tag.

//go:build darwin

package sockaddr

import "golang.org/x/sys/unix"

func initSockaddr4(sa *unix.RawSockaddrInet4) {
	sa.Len = unix.SizeofSockaddrInet4
	sa.Family = unix.AF_INET
}

func initSockaddr6(sa *unix.RawSockaddrInet6) {
	sa.Len = unix.SizeofSockaddrInet6
	sa.Family = unix.AF_INET6
}

func initSockaddrUnix(sa *unix.RawSockaddrUnix) {
	sa.Len = unix.SizeofSockaddrUnix
	sa.Family = unix.AF_UNIX
}

func rawFamily(b []byte) int { return int(b[1]) }
