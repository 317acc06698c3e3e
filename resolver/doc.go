// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package resolver wraps OS-level name resolution. A Resolver owns at
// most one outstanding result set at a time and guarantees it is freed
// exactly once, including across failed lookups and teardown.
package resolver
