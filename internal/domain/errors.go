package domain

import "errors"

// Domain errors (no external dependencies). Adapters wrap these with %w so
// callers can classify failures with errors.Is.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("invalid input")
	ErrTransport  = errors.New("backend unreachable")
	ErrConflict   = errors.New("conflict with current state")
)
