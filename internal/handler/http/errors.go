// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request errors raised by the handlers themselves.
var (
	// ErrInvalidJSON is returned for a request body that is not valid JSON
	// or exceeds the size limit.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidUserID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrForbidden is returned when an authenticated user addresses another
	// user's record.
	ErrForbidden = errors.New("access to another user's data is forbidden")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the auth middleware.
	ErrNoUserInContext = errors.New("no authenticated user in context")
)
