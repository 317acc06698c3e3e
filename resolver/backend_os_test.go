// File: resolver/backend_os_test.go
// Author: momentics <momentics@gmail.com>
//
// OS backend tests stay on numeric inputs so they never depend on a
// working DNS setup.

//go:build linux || darwin

package resolver

import (
	"context"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/momentics/sockcore/api"
	"github.com/momentics/sockcore/sockaddr"
)

func TestOSBackendNumericHost(t *testing.T) {
	b := NewOSBackend()
	rs, err := b.Lookup(context.Background(), &api.Request{
		Host:     "127.0.0.1",
		Service:  "8080",
		SockType: unix.SOCK_DGRAM,
		Flags:    FlagNumericHost,
	})
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	defer b.Free(rs)
	if len(rs.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(rs.Entries))
	}
	e := rs.Entries[0]
	if e.SockType != unix.SOCK_DGRAM || e.Protocol != unix.IPPROTO_UDP {
		t.Fatalf("socktype/protocol = %d/%d", e.SockType, e.Protocol)
	}
	a, err := sockaddr.Decode(e.Sockaddr)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if a.Port != 8080 || a.String() != "127.0.0.1:8080" {
		t.Fatalf("decoded %v", a)
	}
}

func TestOSBackendPassiveWildcard(t *testing.T) {
	b := NewOSBackend()
	rs, err := b.Lookup(context.Background(), &api.Request{
		Family:   api.FamilyINET,
		SockType: unix.SOCK_STREAM,
		Flags:    FlagPassive,
	})
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	defer b.Free(rs)
	if len(rs.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(rs.Entries))
	}
	a, err := sockaddr.Decode(rs.Entries[0].Sockaddr)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if host, _ := a.HostIP(); host != "0.0.0.0" {
		t.Fatalf("passive host = %q, want 0.0.0.0", host)
	}
}

func TestOSBackendLoopbackDefault(t *testing.T) {
	b := NewOSBackend()
	rs, err := b.Lookup(context.Background(), &api.Request{
		Family:   api.FamilyINET6,
		SockType: unix.SOCK_STREAM,
	})
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	defer b.Free(rs)
	if len(rs.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(rs.Entries))
	}
	a, err := sockaddr.Decode(rs.Entries[0].Sockaddr)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if host, _ := a.HostIP(); host != "::1" {
		t.Fatalf("loopback host = %q, want ::1", host)
	}
}

func TestOSBackendSockTypeExpansion(t *testing.T) {
	b := NewOSBackend()
	rs, err := b.Lookup(context.Background(), &api.Request{
		Host:  "127.0.0.1",
		Flags: FlagNumericHost,
	})
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	defer b.Free(rs)
	if len(rs.Entries) != 2 {
		t.Fatalf("got %d entries, want stream+dgram pair", len(rs.Entries))
	}
	if rs.Entries[0].SockType != unix.SOCK_STREAM || rs.Entries[1].SockType != unix.SOCK_DGRAM {
		t.Fatalf("expansion = %d, %d", rs.Entries[0].SockType, rs.Entries[1].SockType)
	}
}

func TestOSBackendBadInputs(t *testing.T) {
	b := NewOSBackend()
	ctx := context.Background()

	if _, err := b.Lookup(ctx, &api.Request{Host: "not numeric", Flags: FlagNumericHost}); err == nil {
		t.Error("bad numeric host accepted")
	}
	if _, err := b.Lookup(ctx, &api.Request{Host: "127.0.0.1", Service: "70000", Flags: FlagNumericHost}); err == nil {
		t.Error("out-of-range port accepted")
	}
	if _, err := b.Lookup(ctx, &api.Request{Host: "127.0.0.1", Service: "name", Flags: FlagNumericHost | FlagNumericServ}); err == nil {
		t.Error("non-numeric service accepted with FlagNumericServ")
	}
}

func TestOSBackendLookupName(t *testing.T) {
	b := NewOSBackend()
	raw, err := sockaddr.Encode(&api.Address{Family: api.FamilyINET, IP: []byte{127, 0, 0, 1}, Port: 53})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	host, serv, err := b.LookupName(context.Background(), raw, NameNumericHost)
	if err != nil {
		t.Fatalf("LookupName failed: %v", err)
	}
	if host != "127.0.0.1" || serv != "53" {
		t.Fatalf("got %q, %q", host, serv)
	}

	unixRaw, err := sockaddr.Encode(&api.Address{Family: api.FamilyUNIX, Path: "/tmp/x"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, _, err := b.LookupName(context.Background(), unixRaw, 0); err == nil {
		t.Error("AF_UNIX reverse lookup accepted")
	}
}
