package router

import "errors"

// Sentinel errors: package-level errors.New values rather than a custom
// error type hierarchy.
var (
	// ErrEmptyPath is returned by Add when path is empty.
	ErrEmptyPath = errors.New("router: path must not be empty")

	// ErrNoMethods is returned by Add when methods is zero: a route that
	// can never match any request is almost certainly a caller bug.
	ErrNoMethods = errors.New("router: methods mask must not be zero")
)
