// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package sockopt normalizes heterogeneous socket option inputs into
// setsockopt byte buffers and decodes getsockopt results into typed
// values carrying the socket's address family.
package sockopt
