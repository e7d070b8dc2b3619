package store

import (
	"context"

	"github.com/MKhiriev/go-login-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the user directory: a concurrent-safe mapping from user
// id to user record with a secondary unique index on username.
//
// Lookups of absent records return (nil, nil); "not found" is a result, not
// an error. Storage faults are reported wrapped in [ErrStorageUnavailable],
// context cancellation and deadline errors are returned as is.
type UserRepository interface {
	// CreateUser atomically checks that username is free and inserts a new
	// record with a freshly assigned id. Returns [ErrUsernameAlreadyExists]
	// when the username is taken; of two concurrent calls with the same
	// username at most one succeeds.
	CreateUser(ctx context.Context, username, passwordHash, email string) (models.User, error)

	// FindUserByID returns the record with the given id or nil.
	FindUserByID(ctx context.Context, id int64) (*models.User, error)

	// FindUserByUsername returns the record with the given username or nil.
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UpdateEmail replaces the email of an existing record and bumps its
	// UpdatedAt. Returns nil when the record does not exist.
	UpdateEmail(ctx context.Context, id int64, email string) (*models.User, error)

	// DeleteUser removes the record. Reports whether it existed; deleting an
	// absent record is not an error.
	DeleteUser(ctx context.Context, id int64) (bool, error)

	// SetPasswordHash replaces the stored password hash of an existing record.
	// Reports whether the record existed.
	SetPasswordHash(ctx context.Context, id int64, passwordHash string) (bool, error)
}

// ErrorClassificator interprets dialect-specific driver errors.
type ErrorClassificator interface {
	// Classify decides whether a failed database operation is worth retrying.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err was raised by a unique index.
	IsUniqueViolation(err error) bool
}
