// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-login-server/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "alice",
		Password: "S3cret!",
		Email:    "a@x.com",
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()
	req := validRegisterRequest()

	require.NoError(t, v.Validate(ctx, req))
	require.NoError(t, v.Validate(ctx, &req))
	require.NoError(t, v.Validate(ctx, models.LoginRequest{Username: "alice", Password: "x"}))
	require.NoError(t, v.Validate(ctx, &models.UpdateEmailRequest{Email: "b@x.com"}))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, req, "nickname"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidateRegisterRequest
// ---------------------------------------------------------------------------

func TestValidateRegisterRequest(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.RegisterRequest) {}},
		{name: "empty username", mutate: func(r *models.RegisterRequest) { r.Username = "" }, wantErr: ErrEmptyUsername},
		{name: "blank username", mutate: func(r *models.RegisterRequest) { r.Username = "   " }, wantErr: ErrEmptyUsername},
		{name: "username with space", mutate: func(r *models.RegisterRequest) { r.Username = "al ice" }, wantErr: ErrInvalidUsername},
		{name: "username with control char", mutate: func(r *models.RegisterRequest) { r.Username = "al\x00ice" }, wantErr: ErrInvalidUsername},
		{name: "username too long", mutate: func(r *models.RegisterRequest) { r.Username = strings.Repeat("a", 65) }, wantErr: ErrUsernameTooLong},
		{name: "unicode username", mutate: func(r *models.RegisterRequest) { r.Username = "алиса" }},
		{name: "empty password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "empty email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "blank email", mutate: func(r *models.RegisterRequest) { r.Email = " " }, wantErr: ErrEmptyEmail},
		{name: "email without at", mutate: func(r *models.RegisterRequest) { r.Email = "alice.example.com" }, wantErr: ErrInvalidEmail},
		{name: "email with display name", mutate: func(r *models.RegisterRequest) { r.Email = "Alice <a@x.com>" }, wantErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestValidateRegisterRequest_FieldScoping verifies that only the requested
// fields are checked.
func TestValidateRegisterRequest_FieldScoping(t *testing.T) {
	v := NewUserValidator()
	req := models.RegisterRequest{Username: "alice"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldUsername, FieldEmail), ErrEmptyEmail)
}

// ---------------------------------------------------------------------------
// TestValidateLoginRequest
// ---------------------------------------------------------------------------

func TestValidateLoginRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "x"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Username: "alice"}), ErrEmptyPassword)
	// format rules of registration do not apply to login
	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Username: "al ice", Password: "x"}))
}

// ---------------------------------------------------------------------------
// TestValidateUpdateEmailRequest
// ---------------------------------------------------------------------------

func TestValidateUpdateEmailRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UpdateEmailRequest{Email: "new@x.com"}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateEmailRequest{}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateEmailRequest{Email: "nope"}), ErrInvalidEmail)
}
