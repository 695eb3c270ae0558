package cubekit

import "errors"

// Sentinel errors for the cubekit package.
var (
	// ErrInvalidNotation reports an unrecognized move token.
	ErrInvalidNotation = errors.New("cubekit: invalid move notation")
)
