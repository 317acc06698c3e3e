// File: rawsock/cred_darwin.go
// Author: momentics <momentics@gmail.com>

//go:build darwin

package rawsock

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/sockcore/api"
)

// PeerCredentials returns the effective uid and primary gid of the peer
// of a connected AF_UNIX descriptor, read from LOCAL_PEERCRED.
func PeerCredentials(fd int) (uid, gid uint32, err error) {
	cred, err := unix.GetsockoptXucred(fd, unix.SOL_LOCAL, unix.LOCAL_PEERCRED)
	if err != nil {
		return 0, 0, api.NewSyscallError("getpeereid", err)
	}
	var g uint32
	if cred.Ngroups > 0 {
		g = cred.Groups[0]
	}
	return cred.Uid, g, nil
}
