// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-login-server/models"
)

// Field name constants accepted by [UserValidator.Validate] to restrict
// validation to a subset of fields.
const (
	// FieldUsername targets the login name.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password. Only presence is checked
	// here; length bounds belong to the credential hasher.
	FieldPassword = "password"

	// FieldEmail targets the contact address.
	FieldEmail = "email"
)

const (
	maxUsernameLength = 64
	maxEmailLength    = 320
)

// UserValidator implements the Validator interface for user directory
// requests: RegisterRequest, LoginRequest and UpdateEmailRequest.
type UserValidator struct{}

// NewUserValidator creates a new UserValidator.
func NewUserValidator() *UserValidator {
	return &UserValidator{}
}

// Validate dispatches validation by the concrete type of data.
// Values and pointers of the supported request types are accepted; any other
// type yields ErrUnsupportedType.
func (v *UserValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.UpdateEmailRequest:
		return v.validateUpdateEmailRequest(ctx, value, fields...)
	case *models.UpdateEmailRequest:
		return v.validateUpdateEmailRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest checks username, password and email.
// Returns the first encountered validation error or nil.
func (v *UserValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(request.Username); err != nil {
				return err
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest only checks presence: a login must not reveal which
// format rules a stored account satisfies.
func (v *UserValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(request.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUpdateEmailRequest(_ context.Context, request models.UpdateEmailRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if len(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	for _, r := range username {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidUsername
		}
	}
	return nil
}

// validateEmail accepts a bare RFC 5322 address ("a@x.com"), rejecting
// display-name forms such as "Alice <a@x.com>".
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxEmailLength {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
