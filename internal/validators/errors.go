package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName    = errors.New("name is required")
	ErrNameTooLong  = errors.New("name is too long")
	ErrEmptyEmail   = errors.New("email is required")
	ErrInvalidEmail = errors.New("invalid email")

	// ErrMalformedText is returned for values that are not valid UTF-8 or
	// contain NUL bytes; PostgreSQL TEXT columns cannot store either.
	ErrMalformedText = errors.New("value is not valid text")
)
