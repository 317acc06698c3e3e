// File: sockaddr/layout_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux sockaddr layout: 16-bit family tag in host byte order, no
// length prefix.

//go:build linux

package sockaddr

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

func initSockaddr4(sa *unix.RawSockaddrInet4) { sa.Family = unix.AF_INET }

func initSockaddr6(sa *unix.RawSockaddrInet6) { sa.Family = unix.AF_INET6 }

func initSockaddrUnix(sa *unix.RawSockaddrUnix) { sa.Family = unix.AF_UNIX }

func rawFamily(b []byte) int { return int(binary.NativeEndian.Uint16(b[:2])) }
