// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package rawsock exposes descriptor-level socket operations: create,
// bind, connect, listen, accept, pair, data transfer and shutdown over
// integer file descriptors. The package is stateless; callers own
// descriptor lifetime, and every failing OS call surfaces as an
// api.SyscallError tagged with the call name.
package rawsock
