// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-login-server/internal/config"
	"github.com/MKhiriev/go-login-server/internal/crypto"
	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/internal/store"
	"github.com/MKhiriev/go-login-server/internal/validators"
	"github.com/MKhiriev/go-login-server/models"
)

// dummyPassword is hashed once at construction. Logins of unknown users are
// verified against that hash so they cost the same as a wrong password.
const dummyPassword = "timing-equalizer-password"

// authService is the concrete implementation of AuthService.
// It holds no mutable state of its own: the user directory, the hasher and
// the revocation list are all safe for concurrent use.
type authService struct {
	// userRepository is the user directory.
	userRepository store.UserRepository

	// hasher hashes new passwords and verifies login attempts.
	hasher crypto.PasswordHasher

	// tokens mints tokens at login and validates them afterwards.
	tokens TokenIssuer

	// revocations holds tokens ended by logout.
	revocations TokenRevoker

	// validator checks request shape before any expensive work is done.
	validator validators.Validator

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// dummyHash is the encoded hash of dummyPassword.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given user
// directory, hasher and token collaborators, with the token lifetime taken
// from cfg.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens TokenIssuer,
	revocations TokenRevoker,
	cfg config.App,
	logger *logger.Logger,
) (AuthService, error) {
	if cfg.TokenDuration <= 0 {
		return nil, ErrTokenDurationIsNotSpecified
	}

	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing dummy password: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		revocations:    revocations,
		validator:      validators.NewUserValidator(),
		tokenDuration:  cfg.TokenDuration,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Register validates the input, hashes the password and creates the user.
//
// Returns the stored record or:
//   - ErrValidation for a blank or malformed username or email, or a
//     password outside the accepted length bounds;
//   - ErrUsernameTaken if the username is in use (the existing record is
//     left untouched);
//   - ErrTimeout if ctx ends before the record is created;
//   - ErrStorageUnavailable on a storage fault.
func (a *authService) Register(ctx context.Context, username, password, email string) (models.User, error) {
	request := models.RegisterRequest{Username: username, Password: password, Email: email}
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	passwordHash, err := a.hashPassword(ctx, password)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, username, passwordHash, email)
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, fmt.Errorf("%w: %w", ErrUsernameTaken, err)
		}
		return models.User{}, a.storageError(ctx, "Register", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a session token.
//
// An unknown username is verified against a dummy hash and reported exactly
// like a wrong password, as ErrInvalidCredentials. When the stored hash was
// made with stale parameters it is replaced on a best-effort basis.
func (a *authService) Login(ctx context.Context, username, password string) (models.SessionToken, error) {
	log := logger.FromContext(ctx)

	request := models.LoginRequest{Username: username, Password: password}
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.SessionToken{}, a.storageError(ctx, "Login", err)
	}

	encodedHash := a.dummyHash
	if user != nil {
		encodedHash = user.PasswordHash
	}

	match, err := runBlocking(ctx, func() (bool, error) {
		return a.hasher.Verify(password, encodedHash)
	})
	if err != nil {
		if isContextError(err) {
			return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		if user == nil {
			return models.SessionToken{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Int64("user_id", user.UserID).Msg("stored password hash cannot be verified")
		return models.SessionToken{}, fmt.Errorf("error verifying password: %w", err)
	}
	if user == nil || !match {
		return models.SessionToken{}, ErrInvalidCredentials
	}

	if a.hasher.NeedsRehash(user.PasswordHash) {
		a.upgradePasswordHash(ctx, user.UserID, password)
	}

	token, err := a.tokens.Issue(user.UserID, a.tokenDuration)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("user_id", user.UserID).Msg("error issuing token")
		return models.SessionToken{}, fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}

// Authenticate validates rawToken and returns the id of its user.
// A token that fails validation, was revoked, or whose user has been
// deleted yields ErrInvalidToken.
func (a *authService) Authenticate(ctx context.Context, rawToken string) (int64, error) {
	token, err := a.tokens.Validate(rawToken)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if a.revocations.IsRevoked(token.ID) {
		return 0, fmt.Errorf("%w: token is revoked", ErrInvalidToken)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		return 0, a.storageError(ctx, "Authenticate", err)
	}
	if user == nil {
		return 0, fmt.Errorf("%w: user no longer exists", ErrInvalidToken)
	}

	return user.UserID, nil
}

// Logout revokes rawToken until it expires. Revoking the same token again
// succeeds.
func (a *authService) Logout(ctx context.Context, rawToken string) error {
	token, err := a.tokens.Validate(rawToken)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	a.revocations.Revoke(token.ID, token.ExpiresAt)
	return nil
}

// GetProfile returns the user with the given id or ErrNotFound.
func (a *authService) GetProfile(ctx context.Context, id int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, a.storageError(ctx, "GetProfile", err)
	}
	if user == nil {
		return models.User{}, ErrNotFound
	}

	return *user, nil
}

// UpdateProfile replaces the email of the user with the given id and returns
// the updated record. Returns ErrValidation for a blank or malformed email
// and ErrNotFound when the user does not exist.
func (a *authService) UpdateProfile(ctx context.Context, id int64, email string) (models.User, error) {
	if err := a.validator.Validate(ctx, models.UpdateEmailRequest{Email: email}); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.UpdateEmail(ctx, id, email)
	if err != nil {
		return models.User{}, a.storageError(ctx, "UpdateProfile", err)
	}
	if user == nil {
		return models.User{}, ErrNotFound
	}

	return *user, nil
}

// DeleteAccount removes the user and reports whether it existed.
// Tokens issued to the user stop authenticating immediately.
func (a *authService) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	deleted, err := a.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return false, a.storageError(ctx, "DeleteAccount", err)
	}

	return deleted, nil
}

// hashPassword hashes password off the calling goroutine and gives up once
// ctx is done.
func (a *authService) hashPassword(ctx context.Context, password string) (string, error) {
	passwordHash, err := runBlocking(ctx, func() (string, error) {
		return a.hasher.Hash(password)
	})
	switch {
	case err == nil:
		return passwordHash, nil
	case isContextError(err):
		return "", fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, crypto.ErrInvalidCredentialFormat):
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return "", fmt.Errorf("error hashing password: %w", err)
	}
}

// upgradePasswordHash re-hashes password with the current parameters.
// Failures are logged and otherwise ignored: the old hash keeps working.
func (a *authService) upgradePasswordHash(ctx context.Context, userID int64, password string) {
	log := logger.FromContext(ctx)

	passwordHash, err := runBlocking(ctx, func() (string, error) {
		return a.hasher.Hash(password)
	})
	if err != nil {
		log.Warn().Err(err).Str("func", "authService.upgradePasswordHash").Int64("user_id", userID).Msg("password rehash skipped")
		return
	}

	if _, err := a.userRepository.SetPasswordHash(ctx, userID, passwordHash); err != nil {
		log.Warn().Err(err).Str("func", "authService.upgradePasswordHash").Int64("user_id", userID).Msg("error storing upgraded password hash")
	}
}

// storageError maps a user directory error to ErrTimeout or
// ErrStorageUnavailable.
func (a *authService) storageError(ctx context.Context, op string, err error) error {
	if isContextError(err) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	logger.FromContext(ctx).Err(err).Str("func", "authService."+op).Msg("user directory failure")
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

// runBlocking runs fn on its own goroutine and stops waiting for it once
// ctx is done. The abandoned goroutine finishes in the background.
func runBlocking[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := fn()
		done <- result{value: value, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
