package crypto

import "errors"

var (
	// ErrInvalidCredentialFormat is returned by Hash when the password is
	// empty or its length is outside the configured bounds.
	ErrInvalidCredentialFormat = errors.New("invalid credential format")
	// ErrMalformedHash is returned by Verify when the stored hash cannot be
	// decoded.
	ErrMalformedHash = errors.New("malformed password hash")
	// ErrUnsupportedAlgorithm is returned by NewPasswordHasher for an
	// unknown algorithm name.
	ErrUnsupportedAlgorithm = errors.New("unsupported hashing algorithm")
)
