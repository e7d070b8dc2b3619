// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the login server REST API.
//
// [Client] mirrors the operations of the server's auth service. Failed
// requests are mapped back to the sentinel errors of the service package, so
// callers can use [errors.Is] with service.ErrUsernameTaken,
// service.ErrInvalidCredentials and the rest exactly as server-side code does.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-login-server/models"
)

// Client defines communication with the login server. Implementations are
// responsible for serialisation, bearer token management and mapping
// transport errors to sentinel values.
type Client interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if none has been set.
	Token() string

	// Register creates a new account. No token is stored: registration does
	// not start a session.
	Register(ctx context.Context, username, password, email string) (models.User, error)

	// Login authenticates the user and stores the returned token via
	// SetToken.
	Login(ctx context.Context, username, password string) (models.SessionToken, error)

	// Logout revokes the stored token on the server and clears it locally.
	Logout(ctx context.Context) error

	// GetProfile fetches the user record of id. Only the token owner's own id
	// is accessible.
	GetProfile(ctx context.Context, id int64) (models.User, error)

	// UpdateProfile replaces the email of user id.
	UpdateProfile(ctx context.Context, id int64, email string) (models.User, error)

	// DeleteAccount removes user id. It reports false when the record was
	// already gone.
	DeleteAccount(ctx context.Context, id int64) (bool, error)

	// Version returns the server's build version.
	Version(ctx context.Context) (string, error)
}
