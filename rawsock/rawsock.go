// File: rawsock/rawsock.go
// Author: momentics <momentics@gmail.com>
//
// Thin descriptor-scoped wrappers over the socket syscalls. Descriptors
// created by Accept and Socketpair are owned by exactly one path on
// every exit: returned to the caller, or closed before the error
// surfaces.

//go:build linux || darwin

package rawsock

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/momentics/sockcore/api"
	"github.com/momentics/sockcore/pool"
	"github.com/momentics/sockcore/sockaddr"
)

// Shutdown directions.
const (
	ShutRead  = unix.SHUT_RD
	ShutWrite = unix.SHUT_WR
	ShutBoth  = unix.SHUT_RDWR
)

// Socket creates a descriptor for the given domain, type and protocol.
func Socket(domain, typ, proto int) (int, error) {
	fd, err := unix.Socket(domain, typ, proto)
	if err != nil {
		return -1, api.NewSyscallError("socket", err)
	}
	count("rawsock.socket")
	return fd, nil
}

// Close releases a descriptor.
func Close(fd int) error {
	return api.NewSyscallError("close", unix.Close(fd))
}

// Bind attaches the OS-layout sockaddr bytes to the descriptor.
func Bind(fd int, sa []byte) error {
	ua, err := sockaddr.ToUnix(sa)
	if err != nil {
		return err
	}
	return api.NewSyscallError("bind", unix.Bind(fd, ua))
}

// Connect connects the descriptor to the OS-layout sockaddr bytes.
func Connect(fd int, sa []byte) error {
	ua, err := sockaddr.ToUnix(sa)
	if err != nil {
		return err
	}
	return api.NewSyscallError("connect", unix.Connect(fd, ua))
}

// Listen marks the descriptor as accepting with the given backlog.
func Listen(fd, backlog int) error {
	return api.NewSyscallError("listen", unix.Listen(fd, backlog))
}

// Accept takes one pending connection and returns the new descriptor
// with the decoded peer address. The peer may be nil for unnamed peers.
// If peer conversion fails the new descriptor is closed, never leaked.
func Accept(fd int) (int, *api.Address, error) {
	nfd, sa, err := unix.Accept(fd)
	if err != nil {
		return -1, nil, api.NewSyscallError("accept", err)
	}
	peer, err := sockaddr.FromUnix(sa)
	if err != nil {
		unix.Close(nfd)
		return -1, nil, err
	}
	count("rawsock.accept")
	return nfd, peer, nil
}

// Socketpair returns a connected pair of descriptors. As with Accept,
// no path leaves a half-created pair behind.
func Socketpair(domain, typ, proto int) (int, int, error) {
	fds, err := unix.Socketpair(domain, typ, proto)
	if err != nil {
		return -1, -1, api.NewSyscallError("socketpair", err)
	}
	count("rawsock.socketpair")
	return fds[0], fds[1], nil
}

// Send writes to a connected descriptor and returns the byte count.
func Send(fd int, p []byte, flags int) (int, error) {
	n, err := unix.SendmsgN(fd, p, nil, nil, flags)
	if err != nil {
		return 0, api.NewSyscallError("send", err)
	}
	count("rawsock.send")
	return n, nil
}

// SendTo writes to the destination given as OS-layout sockaddr bytes.
func SendTo(fd int, p []byte, flags int, sa []byte) (int, error) {
	ua, err := sockaddr.ToUnix(sa)
	if err != nil {
		return 0, err
	}
	n, err := unix.SendmsgN(fd, p, nil, ua, flags)
	if err != nil {
		return 0, api.NewSyscallError("sendto", err)
	}
	count("rawsock.send")
	return n, nil
}

// Recv reads up to maxLen bytes and returns a buffer trimmed to the
// count the OS reported.
func Recv(fd, maxLen, flags int) ([]byte, error) {
	buf := pool.Default().Get(maxLen)
	defer pool.Default().Put(buf)
	n, _, err := unix.Recvfrom(fd, buf, flags)
	if err != nil {
		return nil, api.NewSyscallError("recv", err)
	}
	count("rawsock.recv")
	out := make([]byte, n)
	copy(out, buf[:n])
	return out, nil
}

// RecvFrom reads up to maxLen bytes and additionally returns the
// decoded peer address, trimmed like the data buffer. The peer is nil
// when the OS reports no source address.
func RecvFrom(fd, maxLen, flags int) ([]byte, *api.Address, error) {
	buf := pool.Default().Get(maxLen)
	defer pool.Default().Put(buf)
	n, from, err := unix.Recvfrom(fd, buf, flags)
	if err != nil {
		return nil, nil, api.NewSyscallError("recvfrom", err)
	}
	peer, err := sockaddr.FromUnix(from)
	if err != nil {
		return nil, nil, err
	}
	count("rawsock.recv")
	out := make([]byte, n)
	copy(out, buf[:n])
	return out, peer, nil
}

// GetPeerName returns the decoded remote address of the descriptor.
func GetPeerName(fd int) (*api.Address, error) {
	sa, err := unix.Getpeername(fd)
	if err != nil {
		return nil, api.NewSyscallError("getpeername", err)
	}
	return sockaddr.FromUnix(sa)
}

// GetSockName returns the decoded local address of the descriptor.
func GetSockName(fd int) (*api.Address, error) {
	sa, err := unix.Getsockname(fd)
	if err != nil {
		return nil, api.NewSyscallError("getsockname", err)
	}
	return sockaddr.FromUnix(sa)
}

// SetNonblock toggles O_NONBLOCK via a fcntl read-modify-write.
func SetNonblock(fd int, enable bool) error {
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return api.NewSyscallError("fcntl", err)
	}
	if enable {
		flags |= unix.O_NONBLOCK
	} else {
		flags &^= unix.O_NONBLOCK
	}
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_SETFL, flags); err != nil {
		return api.NewSyscallError("fcntl", err)
	}
	return nil
}

// Shutdown closes one or both directions of the connection.
func Shutdown(fd, how int) error {
	return api.NewSyscallError("shutdown", unix.Shutdown(fd, how))
}

// Hostname returns the machine's hostname.
func Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", api.NewSyscallError("gethostname", err)
	}
	return name, nil
}
