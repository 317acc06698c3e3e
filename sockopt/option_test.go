// File: sockopt/option_test.go
// Author: momentics <momentics@gmail.com>

//go:build linux || darwin

package sockopt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/momentics/sockcore/api"
)

func newUDPSocket(t *testing.T) int {
	t.Helper()
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		t.Fatalf("socket failed: %v", err)
	}
	t.Cleanup(func() { unix.Close(fd) })
	return fd
}

func TestNormalizeEquivalence(t *testing.T) {
	fromBool, err := Normalize(true)
	if err != nil {
		t.Fatalf("Normalize(true) failed: %v", err)
	}
	fromInt, err := Normalize(1)
	if err != nil {
		t.Fatalf("Normalize(1) failed: %v", err)
	}
	fromBytes, err := Normalize(append([]byte(nil), fromInt...))
	if err != nil {
		t.Fatalf("Normalize(bytes) failed: %v", err)
	}
	if !bytes.Equal(fromBool, fromInt) || !bytes.Equal(fromInt, fromBytes) {
		t.Fatalf("normalized forms differ: %v / %v / %v", fromBool, fromInt, fromBytes)
	}
	if len(fromBool) != intWidth {
		t.Fatalf("width = %d, want %d", len(fromBool), intWidth)
	}

	fromFalse, _ := Normalize(false)
	fromZero, _ := Normalize(0)
	if !bytes.Equal(fromFalse, fromZero) {
		t.Fatalf("false != 0: %v / %v", fromFalse, fromZero)
	}
}

func TestNormalizeOption(t *testing.T) {
	opt := &Option{Level: unix.SOL_SOCKET, Name: unix.SO_REUSEADDR, Data: []byte{1, 0, 0, 0}}
	b, err := Normalize(opt)
	if err != nil || !bytes.Equal(b, opt.Data) {
		t.Fatalf("Normalize(*Option) = %v, %v", b, err)
	}
}

func TestDecodeCopiesData(t *testing.T) {
	data := []byte{1, 0, 0, 0}
	opt := Decode(api.FamilyINET6, unix.SOL_SOCKET, unix.SO_KEEPALIVE, data)
	data[0] = 0
	if on, err := opt.Bool(); err != nil || !on {
		t.Fatalf("Bool = %v, %v; want true from retained copy", on, err)
	}
	if opt.Family != api.FamilyINET6 {
		t.Errorf("Family = %v, want AF_INET6", opt.Family)
	}
}

func TestNormalizeBadType(t *testing.T) {
	var argErr *api.ArgumentError
	if _, err := Normalize(3.14); !errors.As(err, &argErr) {
		t.Fatalf("got %v, want ArgumentError", err)
	}
}

func TestSetArity(t *testing.T) {
	fd := newUDPSocket(t)

	err := Set(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR)
	var argErr *api.ArgumentError
	if !errors.As(err, &argErr) || !strings.Contains(err.Error(), "(2 for 3)") {
		t.Fatalf("2 args: got %v, want ArgumentError reporting 2", err)
	}

	err = Set(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1, 0)
	if !errors.As(err, &argErr) || !strings.Contains(err.Error(), "(4 for 3)") {
		t.Fatalf("4 args: got %v, want ArgumentError reporting 4", err)
	}
}

func TestSetBadShapes(t *testing.T) {
	fd := newUDPSocket(t)
	var argErr *api.ArgumentError

	if err := Set(fd, "SOL_SOCKET", unix.SO_REUSEADDR, 1); !errors.As(err, &argErr) {
		t.Errorf("string level: got %v, want ArgumentError", err)
	}
	if err := Set(fd, struct{}{}); !errors.As(err, &argErr) {
		t.Errorf("non-Option single arg: got %v, want ArgumentError", err)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	fd := newUDPSocket(t)

	if err := Set(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, true); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	opt, err := Get(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	on, err := opt.Bool()
	if err != nil || !on {
		t.Fatalf("Bool = %v, %v; want true", on, err)
	}
	if opt.Family != api.FamilyINET {
		t.Errorf("Family = %v, want AF_INET", opt.Family)
	}
	if opt.Level != unix.SOL_SOCKET || opt.Name != unix.SO_REUSEADDR {
		t.Errorf("Level/Name = %d/%d", opt.Level, opt.Name)
	}

	// Replay the structured option through the one-argument shape.
	if err := Set(fd, opt); err != nil {
		t.Fatalf("Set(*Option) failed: %v", err)
	}
}

func TestGetBadDescriptor(t *testing.T) {
	_, err := Get(-1, unix.SOL_SOCKET, unix.SO_REUSEADDR)
	var sysErr *api.SyscallError
	if !errors.As(err, &sysErr) || sysErr.Call != "getsockopt" {
		t.Fatalf("got %v, want getsockopt SyscallError", err)
	}
}

func TestOptionIntWidth(t *testing.T) {
	opt := &Option{Data: []byte{1}}
	if _, err := opt.Int(); err == nil {
		t.Error("1-byte option data accepted as integer")
	}
}
