// Package errs holds the error taxonomy shared by the engine and its stores.
package errs

import "errors"

var (
	// ErrNotFound is returned when a referenced user or badge rule does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks a transient store failure. Callers may retry, the engine does not.
	ErrUnavailable = errors.New("store unavailable")

	// ErrMalformedRule marks a catalog entry that can never be satisfied.
	ErrMalformedRule = errors.New("malformed badge rule")
)
