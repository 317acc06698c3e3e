// File: rawsock/cred_stub.go
// Author: momentics <momentics@gmail.com>

//go:build !linux && !darwin

package rawsock

import (
	"fmt"

	"github.com/momentics/sockcore/api"
)

// PeerCredentials is unavailable on this platform.
func PeerCredentials(fd int) (uid, gid uint32, err error) {
	return 0, 0, fmt.Errorf("getpeereid: %w", api.ErrNotSupported)
}
