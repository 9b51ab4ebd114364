package repository

import "errors"

// Sentinel errors returned by repository implementations. Domain operations
// translate these into classified errors exactly once; they never reach the
// HTTP layer raw.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrInvalidID      = errors.New("invalid id")
)
