package types

import "errors"

// Domain errors for type validation
var (
	ErrInvalidEntityKind   = errors.New("invalid entity kind")
	ErrMissingEntityName   = errors.New("entity name is required")
	ErrMissingClassName    = errors.New("class name is required")
	ErrMissingSignature    = errors.New("at least one signature is required")
	ErrMissingEntity       = errors.New("entity reference is required")
	ErrMissingViaClass     = errors.New("via class is required")
	ErrBrokenLinearization = errors.New("linearization must be duplicate-free and complete")
)
