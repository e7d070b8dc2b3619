// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	// HashAlgorithmArgon2id selects golang.org/x/crypto/argon2 (id variant).
	HashAlgorithmArgon2id = "argon2id"
	// HashAlgorithmBcrypt selects golang.org/x/crypto/bcrypt.
	HashAlgorithmBcrypt = "bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.TokenClockSkew < 0 {
		return fmt.Errorf("%w: token issuer, duration and clock skew must be set", ErrInvalidAppConfigs)
	}

	switch cfg.Hasher.Algorithm {
	case HashAlgorithmArgon2id, HashAlgorithmBcrypt:
	default:
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidHasherConfigs, cfg.Hasher.Algorithm)
	}
	if cfg.Hasher.MinPasswordLength < 1 || cfg.Hasher.MaxPasswordLength < cfg.Hasher.MinPasswordLength {
		return fmt.Errorf("%w: password length bounds [%d, %d]",
			ErrInvalidHasherConfigs, cfg.Hasher.MinPasswordLength, cfg.Hasher.MaxPasswordLength)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RevocationPurgeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
