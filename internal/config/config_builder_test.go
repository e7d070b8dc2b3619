package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.App.TokenSignKey = "secret"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a builder without any
// source yields a validation error instead of a zero config.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that for every field the first source
// providing a non-zero value takes priority over later ones.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "env-key"}},
		&StructuredConfig{App: App{TokenSignKey: "flag-key", TokenIssuer: "flag-issuer"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithArgs_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withArgs([]string{"-unknown"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithJSON_UsesPathFromEarlierSource verifies that the JSON file path is
// taken from env or flags and its contents are appended as a source.
func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "json-key"},
		"server": map[string]any{
			"request_timeout": "42s",
		},
	})

	b := newConfigBuilder().withArgs([]string{"-c", path}).withJSON().withDefaults()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 42*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withArgs(nil).withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder().
		withArgs([]string{"-config", filepath.Join(t.TempDir(), "nope.json")}).
		withJSON()
	require.Error(t, b.err)
}

// TestGetStructuredConfig_EnvOverridesDefaults exercises the full pipeline
// with the process environment as the highest-priority source.
func TestGetStructuredConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("CONFIG", "")
	t.Setenv("APP_TOKEN_ISSUER", "")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "7s")
	oldArgs := os.Args
	os.Args = []string{"login-server", "-request-timeout", "9s", "-token-issuer", "flag-issuer"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, DefaultHashAlgorithm, cfg.Hasher.Algorithm)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown algorithm",
			mutate:  func(cfg *StructuredConfig) { cfg.Hasher.Algorithm = "md5" },
			wantErr: ErrInvalidHasherConfigs,
		},
		{
			name: "inverted length bounds",
			mutate: func(cfg *StructuredConfig) {
				cfg.Hasher.MinPasswordLength = 10
				cfg.Hasher.MaxPasswordLength = 5
			},
			wantErr: ErrInvalidHasherConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero purge interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.RevocationPurgeInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
