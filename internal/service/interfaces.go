// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-login-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the credential-authentication core: registration, login,
// token validation and profile management.
//
// Every method is safe for concurrent use. Failures are reported as errors
// matching exactly one of the service sentinels (see [KindOf]).
type AuthService interface {
	// Register creates a user with a hashed password.
	Register(ctx context.Context, username, password, email string) (models.User, error)

	// Login checks the credentials and issues a session token.
	// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (models.SessionToken, error)

	// Authenticate resolves a raw session token to the id of its user.
	Authenticate(ctx context.Context, rawToken string) (int64, error)

	// Logout revokes a session token until its natural expiry.
	Logout(ctx context.Context, rawToken string) error

	GetProfile(ctx context.Context, id int64) (models.User, error)
	UpdateProfile(ctx context.Context, id int64, email string) (models.User, error)

	// DeleteAccount removes the user and reports whether it existed.
	DeleteAccount(ctx context.Context, id int64) (bool, error)
}

// AppInfoService exposes static information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// TokenIssuer mints and validates signed session tokens.
type TokenIssuer interface {
	Issue(userID int64, ttl time.Duration) (models.SessionToken, error)
	Validate(raw string) (models.SessionToken, error)
}

// TokenRevoker remembers tokens ended by logout.
type TokenRevoker interface {
	Revoke(jti string, expiresAt time.Time)
	IsRevoked(jti string) bool
}
