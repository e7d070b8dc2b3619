// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionToken describes a session credential issued at login.
//
// Callers only ever see SignedString and ExpiresAt; the remaining fields are
// the decoded view used on the server side after validation.
type SessionToken struct {
	// ID is the unique token identifier ("jti" claim). Used for revocation.
	ID string `json:"-"`

	// UserID is the subject the token is bound to ("sub" claim).
	UserID int64 `json:"-"`

	// IssuedAt is the moment the token was minted ("iat" claim).
	IssuedAt time.Time `json:"-"`

	// ExpiresAt is the moment the token stops being valid ("exp" claim).
	ExpiresAt time.Time `json:"expires_at"`

	// SignedString is the compact serialized token handed to the caller.
	SignedString string `json:"token"`
}

// String returns the compact serialized token.
// It implements the [fmt.Stringer] interface.
func (t SessionToken) String() string {
	return t.SignedString
}

// IsExpired reports whether the token is expired at the given moment.
func (t SessionToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
