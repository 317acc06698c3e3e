// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package pool provides reusable byte buffers for the receive paths so
// repeated Recv/RecvFrom calls do not allocate a fresh max-length
// buffer each time.
package pool
