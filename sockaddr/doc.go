// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package sockaddr converts between decoded api.Address values and the
// exact byte layouts of the OS sockaddr structures, and bridges both to
// the golang.org/x/sys/unix call surface.
package sockaddr
