// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/models"
)

// userRepository is the SQL implementation of [UserRepository] shared by the
// PostgreSQL and SQLite backends. Dialect differences (placeholders, unique
// violation detection) come from the wrapped [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser inserts a new user and returns the stored row. The database
// unique index on username performs the atomic check-and-insert.
//
// Error handling:
//   - unique violation → [ErrUsernameAlreadyExists];
//   - context cancellation or deadline → returned as is;
//   - any other driver-level error → wrapped in [ErrStorageUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, username, passwordHash, email string) (models.User, error) {
	query, args, err := buildCreateUserQuery(r.db.builder(), username, passwordHash, email, r.now())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, r.storageError(ctx, "*userRepository.CreateUser", err)
	}

	return *user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": id})
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": username})
}

func (r *userRepository) findUser(ctx context.Context, fn string, where sq.Eq) (*models.User, error) {
	query, args, err := buildFindUserQuery(r.db.builder(), where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.storageError(ctx, fn, err)
	}

	return user, nil
}

// UpdateEmail updates the email in a single UPDATE ... RETURNING statement,
// so the returned row is exactly the committed state.
func (r *userRepository) UpdateEmail(ctx context.Context, id int64, email string) (*models.User, error) {
	query, args, err := buildUpdateEmailQuery(r.db.builder(), id, email, r.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.storageError(ctx, "*userRepository.UpdateEmail", err)
	}

	return user, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	query, args, err := buildDeleteUserQuery(r.db.builder(), id)
	if err != nil {
		return false, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.DeleteUser", query, args)
}

func (r *userRepository) SetPasswordHash(ctx context.Context, id int64, passwordHash string) (bool, error) {
	query, args, err := buildSetPasswordHashQuery(r.db.builder(), id, passwordHash, r.now())
	if err != nil {
		return false, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.SetPasswordHash", query, args)
}

func (r *userRepository) execAffectingOne(ctx context.Context, fn, query string, args []any) (bool, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, r.storageError(ctx, fn, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, r.storageError(ctx, fn, err)
	}

	return affected > 0, nil
}

// storageError logs a failed database operation and maps it to the
// repository error contract.
func (r *userRepository) storageError(ctx context.Context, fn string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w", ctxErr, err)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
		Msg("database operation failed")

	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.Email, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}
