package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/internal/service"
	"github.com/MKhiriev/go-login-server/models"
)

func newTestCLI(t *testing.T) (*cli, *bytes.Buffer) {
	t.Helper()
	for _, key := range []string{"LOGIN_SERVER_ADDRESS", "LOGIN_TOKEN", "LOGIN_REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	var out bytes.Buffer
	return newCLI(&out, logger.Nop()), &out
}

func TestCLI_Register(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.User{UserID: 1, Username: "alice", Email: "a@x.com"})
	}))
	defer srv.Close()

	c, out := newTestCLI(t)
	err := c.run(context.Background(), []string{"-a", srv.URL, "register", "alice", "S3cret!", "a@x.com"})

	require.NoError(t, err)

	var user models.User
	require.NoError(t, json.Unmarshal(out.Bytes(), &user))
	assert.Equal(t, int64(1), user.UserID)
}

func TestCLI_ProfileUsesTokenFromEnv(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer env-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/users/5", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{UserID: 5, Username: "bob"})
	}))
	defer srv.Close()

	c, out := newTestCLI(t)
	t.Setenv("LOGIN_TOKEN", "env-token")
	t.Setenv("LOGIN_SERVER_ADDRESS", srv.URL)

	require.NoError(t, c.run(context.Background(), []string{"profile", "5"}))
	assert.Contains(t, out.String(), `"username": "bob"`)
}

func TestCLI_ServerErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid credentials"})
	}))
	defer srv.Close()

	c, _ := newTestCLI(t)
	err := c.run(context.Background(), []string{"-a", srv.URL, "login", "alice", "wrong"})

	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestCLI_Version(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("v9"))
	}))
	defer srv.Close()

	c, out := newTestCLI(t)
	c.buildInfo = models.NewAppBuildInfo("v1", "today", "abc")

	require.NoError(t, c.run(context.Background(), []string{"-a", srv.URL, "version"}))
	assert.Contains(t, out.String(), "Client version: v1 (today, abc)")
	assert.Contains(t, out.String(), "Server version: v9")
}

func TestCLI_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"shout"}},
		{name: "missing arguments", args: []string{"-a", "localhost:1", "register", "alice"}},
		{name: "invalid id", args: []string{"-a", "localhost:1", "-token", "t", "delete", "abc"}},
		{name: "non-positive id", args: []string{"-a", "localhost:1", "-token", "t", "profile", "0"}},
		{name: "unknown flag", args: []string{"-x", "version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(t)

			err := c.run(context.Background(), tt.args)

			require.ErrorIs(t, err, errUsage)
		})
	}
}
