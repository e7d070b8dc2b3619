package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrStorageUnavailable wraps every backend fault (connection loss,
	// driver error, failed scan) that is not a context cancellation.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnsupportedDSN is returned by [NewStorages] when the DSN scheme does
	// not select any known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// ErrBuildingSQLQuery is wrapped together with [ErrStorageUnavailable] when
// constructing a parameterised SQL query fails.
var ErrBuildingSQLQuery = errors.New("error building sql query")
