package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-login-server/internal/service"
	"github.com/MKhiriev/go-login-server/models"
)

// ─────────────────────────────────────────────
// POST /api/sessions
// ─────────────────────────────────────────────

func TestLogin_OK(t *testing.T) {
	h, auth := newTestHandler(t)
	expiresAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	auth.EXPECT().Login(gomock.Any(), "alice", "S3cret!").Return(models.SessionToken{
		ID:           "jti",
		UserID:       1,
		ExpiresAt:    expiresAt,
		SignedString: "signed.jwt.value",
	}, nil)

	rec := serve(t, h, http.MethodPost, "/api/sessions", `{"username":"alice","password":"S3cret!"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.value", rec.Header().Get("Authorization"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed.jwt.value", body["token"])
	assert.Equal(t, expiresAt.Format(time.RFC3339), body["expires_at"])
	assert.Len(t, body, 2)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, auth := newTestHandler(t)
	auth.EXPECT().Login(gomock.Any(), "alice", "wrong").Return(models.SessionToken{}, service.ErrInvalidCredentials)

	rec := serve(t, h, http.MethodPost, "/api/sessions", `{"username":"alice","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeError(t, rec))
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodPost, "/api/sessions", `[]`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/sessions
// ─────────────────────────────────────────────

func TestLogout_NoContent(t *testing.T) {
	h, auth := newTestHandler(t)
	gomock.InOrder(
		auth.EXPECT().Authenticate(gomock.Any(), "valid-token").Return(int64(1), nil),
		auth.EXPECT().Logout(gomock.Any(), "valid-token").Return(nil),
	)

	rec := serve(t, h, http.MethodDelete, "/api/sessions", "", authorized())

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLogout_RevokedTokenIs401(t *testing.T) {
	h, auth := newTestHandler(t)
	auth.EXPECT().Authenticate(gomock.Any(), "valid-token").Return(int64(0), service.ErrInvalidToken)

	rec := serve(t, h, http.MethodDelete, "/api/sessions", "", authorized())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
