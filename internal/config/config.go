// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the login
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token parameters, log level and
	// the application version.
	App App `envPrefix:"APP_"`

	// Hasher holds the password hashing algorithm and its cost parameters.
	Hasher Hasher `envPrefix:"HASHER_"`

	// Storage holds configuration of the user directory backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the token
// lifecycle, logging and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on every validation.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenClockSkew is the tolerance applied to time-based claims when a
	// token is validated (e.g. "30s").
	// Env: APP_TOKEN_CLOCK_SKEW
	TokenClockSkew time.Duration `env:"TOKEN_CLOCK_SKEW"`

	// LogLevel is the minimal level of emitted log entries
	// ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Hasher holds password hashing settings.
type Hasher struct {
	// Algorithm selects the hashing algorithm used for new hashes:
	// "argon2id" or "bcrypt". Hashes of either algorithm are always verifiable.
	// Env: HASHER_ALGORITHM
	Algorithm string `env:"ALGORITHM"`

	// Argon2Memory is the argon2id memory cost in KiB.
	// Env: HASHER_ARGON2_MEMORY
	Argon2Memory uint32 `env:"ARGON2_MEMORY"`

	// Argon2Iterations is the argon2id time cost (passes over memory).
	// Env: HASHER_ARGON2_ITERATIONS
	Argon2Iterations uint32 `env:"ARGON2_ITERATIONS"`

	// Argon2Parallelism is the argon2id number of lanes.
	// Env: HASHER_ARGON2_PARALLELISM
	Argon2Parallelism uint8 `env:"ARGON2_PARALLELISM"`

	// BcryptCost is the bcrypt cost factor (4-31).
	// Env: HASHER_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// MinPasswordLength is the minimal accepted password length in bytes.
	// Env: HASHER_MIN_PASSWORD_LENGTH
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH"`

	// MaxPasswordLength is the maximal accepted password length in bytes.
	// Env: HASHER_MAX_PASSWORD_LENGTH
	MaxPasswordLength int `env:"MAX_PASSWORD_LENGTH"`
}

// Storage groups the configuration of the user directory backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the user directory.
type DB struct {
	// DSN selects and configures the backend:
	//   - "" or "memory": in-process map (non-durable);
	//   - "postgres://..." or "postgresql://...": PostgreSQL;
	//   - "sqlite://path" or "file:path": SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the size of the SQL connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RevocationPurgeInterval is how often expired entries are dropped from
	// the token revocation list.
	// Env: WORKERS_REVOCATION_PURGE_INTERVAL
	RevocationPurgeInterval time.Duration `env:"REVOCATION_PURGE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source providing a non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
