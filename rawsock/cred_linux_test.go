// File: rawsock/cred_linux_test.go
// Author: momentics <momentics@gmail.com>

//go:build linux

package rawsock

import (
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestPeerCredentials(t *testing.T) {
	a, b, err := Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socketpair failed: %v", err)
	}
	t.Cleanup(func() { Close(a); Close(b) })

	uid, gid, err := PeerCredentials(a)
	if err != nil {
		t.Fatalf("PeerCredentials failed: %v", err)
	}
	if uid != uint32(os.Getuid()) {
		t.Errorf("uid = %d, want %d", uid, os.Getuid())
	}
	if gid != uint32(os.Getgid()) {
		t.Errorf("gid = %d, want %d", gid, os.Getgid())
	}
}
