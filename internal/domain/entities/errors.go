package entities

import "errors"

// Error taxonomy roots. Use-case errors wrap one of these so callers can
// classify with errors.Is.
var (
	// ErrNotFound: the entity is absent or not owned by the caller.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState: a business rule rejects the operation before any write.
	ErrInvalidState = errors.New("invalid state")

	// ErrConflict: a conditional write lost against a concurrent writer.
	ErrConflict = errors.New("conflict")
)
