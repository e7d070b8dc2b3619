package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrUsernameTooLong = errors.New("username is too long")
	ErrInvalidUsername = errors.New("username must not contain whitespace or control characters")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyEmail      = errors.New("email is required")
	ErrInvalidEmail    = errors.New("invalid email address")
)
