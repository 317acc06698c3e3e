// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and configuration control layer for the rawsock
// library.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Reload listeners notified on config changes
//   - Metrics telemetry counters for resolver and descriptor ops
package control
