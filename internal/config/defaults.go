// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults applied to every field left empty by the other sources.
const (
	DefaultHTTPAddress             = "localhost:8080"
	DefaultRequestTimeout          = 10 * time.Second
	DefaultShutdownTimeout         = 5 * time.Second
	DefaultTokenIssuer             = "go-login-server"
	DefaultTokenDuration           = time.Hour
	DefaultTokenClockSkew          = 30 * time.Second
	DefaultLogLevel                = "info"
	DefaultHashAlgorithm           = "argon2id"
	DefaultArgon2Memory            = 64 * 1024 // 64 MiB
	DefaultArgon2Iterations        = 1
	DefaultArgon2Parallelism       = 4
	DefaultBcryptCost              = 12
	DefaultMinPasswordLength       = 6
	DefaultMaxPasswordLength       = 256
	DefaultMaxOpenConns            = 10
	DefaultRevocationPurgeInterval = time.Minute
)

// defaults returns the lowest-priority configuration source.
//
// TokenSignKey has no default: running without an explicit signing key is a
// configuration error reported by validate.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
			TokenClockSkew: DefaultTokenClockSkew,
			LogLevel:       DefaultLogLevel,
		},
		Hasher: Hasher{
			Algorithm:         DefaultHashAlgorithm,
			Argon2Memory:      DefaultArgon2Memory,
			Argon2Iterations:  DefaultArgon2Iterations,
			Argon2Parallelism: DefaultArgon2Parallelism,
			BcryptCost:        DefaultBcryptCost,
			MinPasswordLength: DefaultMinPasswordLength,
			MaxPasswordLength: DefaultMaxPasswordLength,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: DefaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Workers: Workers{
			RevocationPurgeInterval: DefaultRevocationPurgeInterval,
		},
	}
}
