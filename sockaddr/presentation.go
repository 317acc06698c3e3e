// File: sockaddr/presentation.go
// Author: momentics <momentics@gmail.com>
//
// Numeric-literal text conversion for internet addresses, the pton/ntop
// pair built on the net package parser.

//go:build linux || darwin

package sockaddr

import (
	"net"
	"strings"

	"github.com/momentics/sockcore/api"
)

// ParseNumeric converts dotted-quad or colon-hex text into the raw
// 4- or 16-byte address for the given family.
func ParseNumeric(family api.Family, text string) ([]byte, error) {
	ip := net.ParseIP(text)
	switch family {
	case api.FamilyINET:
		if ip == nil || strings.Contains(text, ":") {
			return nil, &api.AddrError{Reason: "invalid address"}
		}
		v4 := ip.To4()
		if v4 == nil {
			return nil, &api.AddrError{Reason: "invalid address"}
		}
		return append([]byte(nil), v4...), nil

	case api.FamilyINET6:
		if ip == nil || !strings.Contains(text, ":") {
			return nil, &api.AddrError{Reason: "invalid address"}
		}
		return append([]byte(nil), ip.To16()...), nil

	default:
		return nil, &api.ArgumentError{Reason: "unsupported address family"}
	}
}

// FormatNumeric renders raw 4- or 16-byte address bytes as numeric
// text for the given family.
func FormatNumeric(family api.Family, ip []byte) (string, error) {
	switch family {
	case api.FamilyINET:
		if len(ip) != 4 {
			return "", &api.AddrError{Reason: "invalid address"}
		}
	case api.FamilyINET6:
		if len(ip) != 16 {
			return "", &api.AddrError{Reason: "invalid address"}
		}
	default:
		return "", &api.ArgumentError{Reason: "unsupported address family"}
	}
	return net.IP(ip).String(), nil
}
