// File: resolver/backend_os.go
// Author: momentics <momentics@gmail.com>
//
// Default backend built on the net package resolver. Candidate
// expansion follows getaddrinfo: an unspecified socket type yields a
// stream and a datagram candidate per address.

package resolver

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/momentics/sockcore/api"
	"github.com/momentics/sockcore/sockaddr"
)

// OSBackend resolves through net.DefaultResolver.
type OSBackend struct {
	res *net.Resolver
}

// NewOSBackend returns a backend using the process default resolver.
func NewOSBackend() *OSBackend {
	return &OSBackend{res: net.DefaultResolver}
}

type sockTypeProto struct {
	typ   int
	proto int
}

// Lookup resolves the request into a fresh result set.
func (b *OSBackend) Lookup(ctx context.Context, req *api.Request) (*api.ResultSet, error) {
	port := 0
	if req.Service != "" {
		p, err := b.lookupPort(ctx, req)
		if err != nil {
			return nil, err
		}
		port = p
	}
	ips, err := b.lookupHost(ctx, req)
	if err != nil {
		return nil, err
	}

	var entries []api.RawAddrInfo
	for _, ipa := range ips {
		fam := api.FamilyINET
		ip := ipa.IP.To4()
		if ip == nil {
			fam = api.FamilyINET6
			ip = ipa.IP.To16()
		}
		if req.Family != api.FamilyUnspec && req.Family != fam {
			continue
		}
		for _, stp := range sockTypes(req) {
			raw, err := sockaddr.Encode(&api.Address{
				Family: fam,
				IP:     append([]byte(nil), ip...),
				Port:   port,
			})
			if err != nil {
				return nil, err
			}
			entries = append(entries, api.RawAddrInfo{
				Sockaddr: raw,
				Family:   fam,
				SockType: stp.typ,
				Protocol: stp.proto,
			})
		}
	}
	return &api.ResultSet{Entries: entries}, nil
}

// Free releases a result set produced by Lookup.
func (b *OSBackend) Free(rs *api.ResultSet) {
	if rs != nil {
		rs.Entries = nil
	}
}

// LookupName reverse-resolves OS-layout sockaddr bytes to host and
// service strings.
func (b *OSBackend) LookupName(ctx context.Context, sa []byte, flags int) (string, string, error) {
	a, err := sockaddr.Decode(sa)
	if err != nil {
		return "", "", err
	}
	if !a.Family.IsIP() {
		return "", "", fmt.Errorf("ai_family not supported")
	}
	numeric := net.IP(a.IP).String()
	host := numeric
	if flags&NameNumericHost == 0 {
		names, err := b.res.LookupAddr(ctx, numeric)
		switch {
		case err == nil && len(names) > 0:
			host = strings.TrimSuffix(names[0], ".")
		case flags&NameReqd != 0:
			if err == nil {
				err = fmt.Errorf("name required for %s", numeric)
			}
			return "", "", err
		}
	}
	return host, strconv.Itoa(a.Port), nil
}

func (b *OSBackend) lookupHost(ctx context.Context, req *api.Request) ([]net.IPAddr, error) {
	if req.Host == "" {
		if req.Flags&FlagPassive != 0 {
			return []net.IPAddr{{IP: net.IPv4zero}, {IP: net.IPv6zero}}, nil
		}
		return []net.IPAddr{{IP: net.IPv4(127, 0, 0, 1)}, {IP: net.IPv6loopback}}, nil
	}
	if req.Flags&FlagNumericHost != 0 {
		ip := net.ParseIP(req.Host)
		if ip == nil {
			return nil, fmt.Errorf("numeric host %q not parseable", req.Host)
		}
		return []net.IPAddr{{IP: ip}}, nil
	}
	return b.res.LookupIPAddr(ctx, req.Host)
}

func (b *OSBackend) lookupPort(ctx context.Context, req *api.Request) (int, error) {
	if n, err := strconv.Atoi(req.Service); err == nil {
		if n < 0 || n > 65535 {
			return 0, fmt.Errorf("invalid port %d", n)
		}
		return n, nil
	}
	if req.Flags&FlagNumericServ != 0 {
		return 0, fmt.Errorf("numeric service %q not parseable", req.Service)
	}
	network := "tcp"
	if req.SockType == unix.SOCK_DGRAM {
		network = "udp"
	}
	return b.res.LookupPort(ctx, network, req.Service)
}

// sockTypes expands the request's socket-type hint the way getaddrinfo
// does when ai_socktype is left at zero.
func sockTypes(req *api.Request) []sockTypeProto {
	if req.SockType != 0 {
		proto := req.Protocol
		if proto == 0 {
			switch req.SockType {
			case unix.SOCK_STREAM:
				proto = unix.IPPROTO_TCP
			case unix.SOCK_DGRAM:
				proto = unix.IPPROTO_UDP
			}
		}
		return []sockTypeProto{{req.SockType, proto}}
	}
	return []sockTypeProto{
		{unix.SOCK_STREAM, unix.IPPROTO_TCP},
		{unix.SOCK_DGRAM, unix.IPPROTO_UDP},
	}
}
