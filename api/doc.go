// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package api defines the shared address model, resolution request/result
// types and the structured error kinds used across the sockcore library.
package api
