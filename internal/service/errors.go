// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
)

// Error kinds reported by AuthService. Every failed operation returns an
// error wrapping exactly one of them.
var (
	// ErrValidation is returned for malformed input: blank or invalid
	// username or email, password outside the accepted length bounds.
	ErrValidation = errors.New("validation error")

	// ErrUsernameTaken is returned by Register when the username is in use.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for a token that is malformed, forged,
	// expired, revoked or bound to a deleted user.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrNotFound is returned when the addressed user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrStorageUnavailable is returned for transient storage faults.
	// Callers may retry with backoff.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrTimeout is returned when the operation was abandoned because its
	// context was cancelled or its deadline passed.
	ErrTimeout = errors.New("operation timed out")
)

var (
	ErrVersionIsNotSpecified       = errors.New("app version is not specified")
	ErrTokenDurationIsNotSpecified = errors.New("token duration is not specified")
)

// Kind is the discriminated outcome of an AuthService call.
type Kind int

const (
	KindOK Kind = iota
	KindValidation
	KindUsernameTaken
	KindInvalidCredentials
	KindInvalidToken
	KindNotFound
	KindStorageUnavailable
	KindTimeout
	KindInternal
)

var kindNames = map[Kind]string{
	KindOK:                 "ok",
	KindValidation:         "validation",
	KindUsernameTaken:      "username_taken",
	KindInvalidCredentials: "invalid_credentials",
	KindInvalidToken:       "invalid_token",
	KindNotFound:           "not_found",
	KindStorageUnavailable: "storage_unavailable",
	KindTimeout:            "timeout",
	KindInternal:           "internal",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindOf classifies err. A nil error is KindOK; an error wrapping none of the
// service sentinels is KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrUsernameTaken):
		return KindUsernameTaken
	case errors.Is(err, ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, ErrInvalidToken):
		return KindInvalidToken
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrStorageUnavailable):
		return KindStorageUnavailable
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	default:
		return KindInternal
	}
}
