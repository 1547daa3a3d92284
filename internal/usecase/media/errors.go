package media

import "errors"

// ErrValidation marks inputs rejected before any I/O was attempted.
var ErrValidation = errors.New("media: invalid input")
