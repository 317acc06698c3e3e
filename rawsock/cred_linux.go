// File: rawsock/cred_linux.go
// Author: momentics <momentics@gmail.com>

//go:build linux

package rawsock

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/sockcore/api"
)

// PeerCredentials returns the effective uid and gid of the peer of a
// connected AF_UNIX descriptor, read from SO_PEERCRED.
func PeerCredentials(fd int) (uid, gid uint32, err error) {
	cred, err := unix.GetsockoptUcred(fd, unix.SOL_SOCKET, unix.SO_PEERCRED)
	if err != nil {
		return 0, 0, api.NewSyscallError("getpeereid", err)
	}
	return cred.Uid, cred.Gid, nil
}
