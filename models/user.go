// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a record of the user directory.
//
// UserID and Username are immutable once the record is created; only Email
// can change afterwards. PasswordHash holds the encoded salted hash and is
// never serialized to JSON.
type User struct {
	// UserID is the unique identifier assigned by the directory at creation.
	// Identifiers are never reused, even after the record is deleted.
	UserID int64 `json:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username"`

	// PasswordHash is the encoded one-way hash of the user's password
	// (algorithm parameters, salt and digest). Never the plaintext.
	PasswordHash string `json:"-"`

	// Email is the contact address of the user. It is the only mutable field.
	Email string `json:"email"`

	// CreatedAt is the moment the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the moment of the last mutation (equal to CreatedAt for
	// records that were never updated).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
