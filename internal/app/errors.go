package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrNotFound marks a class or competitor lookup with no match. The
	// caller decides the fallback; it is never fatal.
	ErrNotFound = errors.New("not found")
)
