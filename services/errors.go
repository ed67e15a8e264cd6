package services

import "errors"

// Sentinel errors controllers translate into HTTP statuses. Services wrap
// them with context via fmt.Errorf("%w: ...") so errors.Is keeps working.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrNotOwner   = errors.New("not the owner")
)
