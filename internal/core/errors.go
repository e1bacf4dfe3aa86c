package core

import "errors"

// Validation failures. Callers wrap these with context and match them with
// errors.Is.
var (
	ErrSizeMismatch       = errors.New("configuration size mismatch")
	ErrInvalidCell        = errors.New("configuration values must be 0 or 1")
	ErrArityMismatch      = errors.New("local rule arity must match neighborhood size")
	ErrInvalidArity       = errors.New("arity must be odd and positive")
	ErrEmptyConfiguration = errors.New("configuration is empty")
	ErrNonPositiveSize    = errors.New("size must be positive")
	ErrInvalidCharacter   = errors.New("string contains invalid character: must be '0' or '1'")
	ErrNoRule             = errors.New("local rule not set")
	ErrUnknownRule        = errors.New("unknown rule")
	ErrInvalidParameter   = errors.New("invalid parameter")
)
