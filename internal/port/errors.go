package port

import "errors"

var (
	// ErrNotFound marks a confirmed absence (no row, no object). At the
	// resolver boundary this is a normal nil outcome, not a failure.
	ErrNotFound = errors.New("remote: not found")
	// ErrUnauthorized marks rejected credentials on the remote side.
	ErrUnauthorized = errors.New("remote: unauthorized")
	// ErrInternal wraps every other remote failure.
	ErrInternal = errors.New("remote: internal error")
)
