// File: sockopt/option.go
// Author: momentics <momentics@gmail.com>
//
// Socket option values of heterogeneous shape, normalized to the byte
// buffers setsockopt takes and decoded back from getsockopt results.

//go:build linux || darwin

package sockopt

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/sockcore/api"
)

// intWidth is the byte width of a normalized boolean or integer value.
const intWidth = 4

// Option wraps an option's level, number and raw bytes together with
// the address family of the socket it was read from, so the value can
// be inspected or replayed into a later Set call.
type Option struct {
	Family api.Family
	Level  int
	Name   int
	Data   []byte
}

// Int interprets the option bytes as a native-endian integer.
func (o *Option) Int() (int, error) {
	if len(o.Data) != intWidth {
		return 0, &api.ArgumentError{
			Reason: fmt.Sprintf("option data is %d bytes, want %d", len(o.Data), intWidth),
		}
	}
	return int(int32(binary.NativeEndian.Uint32(o.Data))), nil
}

// Bool interprets the option bytes as a boolean integer.
func (o *Option) Bool() (bool, error) {
	n, err := o.Int()
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

// Decode wraps raw option bytes read elsewhere together with the
// level, option number and the address family of the socket they came
// from, for later inspection or replay through Set.
func Decode(family api.Family, level, name int, data []byte) *Option {
	return &Option{
		Family: family,
		Level:  level,
		Name:   name,
		Data:   append([]byte(nil), data...),
	}
}

// Normalize coerces a caller-supplied option value into the byte buffer
// handed to setsockopt: booleans and integers become a 4-byte integer,
// raw bytes pass through, an Option contributes its embedded bytes.
func Normalize(v any) ([]byte, error) {
	switch x := v.(type) {
	case bool:
		b := make([]byte, intWidth)
		if x {
			binary.NativeEndian.PutUint32(b, 1)
		}
		return b, nil
	case int:
		b := make([]byte, intWidth)
		binary.NativeEndian.PutUint32(b, uint32(int32(x)))
		return b, nil
	case int32:
		b := make([]byte, intWidth)
		binary.NativeEndian.PutUint32(b, uint32(x))
		return b, nil
	case int64:
		b := make([]byte, intWidth)
		binary.NativeEndian.PutUint32(b, uint32(int32(x)))
		return b, nil
	case []byte:
		return x, nil
	case *Option:
		return x.Data, nil
	default:
		return nil, &api.ArgumentError{
			Reason: "optval should be true, false, an integer, or a byte string",
		}
	}
}

// Get queries a socket option and wraps it with the socket's family.
//
// The read is fixed at the 4-byte integer width; options with wider
// values (linger, timeval) need a dedicated accessor. Kept narrow on
// purpose, matching the integer options this layer is used for.
func Get(fd, level, name int) (*Option, error) {
	v, err := unix.GetsockoptInt(fd, level, name)
	if err != nil {
		return nil, api.NewSyscallError("getsockopt", err)
	}
	data := make([]byte, intWidth)
	binary.NativeEndian.PutUint32(data, uint32(int32(v)))
	return &Option{
		Family: socketFamily(fd),
		Level:  level,
		Name:   name,
		Data:   data,
	}, nil
}

// Set writes a socket option. Two call shapes are accepted:
//
//	Set(fd, opt)                  opt is *Option; its embedded level,
//	                              name and bytes are used
//	Set(fd, level, name, value)   value is coerced via Normalize
//
// Any other arity fails with an ArgumentError reporting the count.
func Set(fd int, args ...any) error {
	switch len(args) {
	case 1:
		opt, ok := args[0].(*Option)
		if !ok {
			return &api.ArgumentError{Reason: "not a socket option value"}
		}
		return setRaw(fd, opt.Level, opt.Name, opt.Data)
	case 3:
		level, ok := args[0].(int)
		if !ok {
			return &api.ArgumentError{Reason: "level is not an integer"}
		}
		name, ok := args[1].(int)
		if !ok {
			return &api.ArgumentError{Reason: "option name is not an integer"}
		}
		data, err := Normalize(args[2])
		if err != nil {
			return err
		}
		return setRaw(fd, level, name, data)
	default:
		return &api.ArgumentError{
			Reason: fmt.Sprintf("wrong number of arguments (%d for 3)", len(args)),
		}
	}
}

func setRaw(fd, level, name int, data []byte) error {
	if err := unix.SetsockoptString(fd, level, name, string(data)); err != nil {
		return api.NewSyscallError("setsockopt", err)
	}
	return nil
}

// socketFamily stamps the queried option with the socket's family.
// Unreadable socket names degrade to AF_UNSPEC rather than failing the
// option query.
func socketFamily(fd int) api.Family {
	sa, err := unix.Getsockname(fd)
	if err != nil {
		return api.FamilyUnspec
	}
	switch sa.(type) {
	case *unix.SockaddrInet4:
		return api.FamilyINET
	case *unix.SockaddrInet6:
		return api.FamilyINET6
	case *unix.SockaddrUnix:
		return api.FamilyUNIX
	default:
		return api.FamilyUnspec
	}
}
