// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-login-server/internal/config"
)

// MultiHasher hashes new passwords with a primary algorithm and verifies
// hashes of every supported algorithm, dispatching on the encoded prefix.
// Switching the configured algorithm therefore never locks out existing
// users: their old hashes keep verifying and NeedsRehash reports them for
// upgrade.
type MultiHasher struct {
	primary PasswordHasher
	argon2  *Argon2idHasher
	bcrypt  *BcryptHasher

	minLength int
	maxLength int
}

// NewPasswordHasher builds a MultiHasher from the hasher configuration.
// Returns ErrUnsupportedAlgorithm when cfg.Algorithm is unknown.
func NewPasswordHasher(cfg config.Hasher) (*MultiHasher, error) {
	h := &MultiHasher{
		argon2: NewArgon2idHasher(Argon2Params{
			Memory:      cfg.Argon2Memory,
			Iterations:  cfg.Argon2Iterations,
			Parallelism: cfg.Argon2Parallelism,
		}),
		bcrypt:    NewBcryptHasher(cfg.BcryptCost),
		minLength: cfg.MinPasswordLength,
		maxLength: cfg.MaxPasswordLength,
	}

	switch cfg.Algorithm {
	case config.HashAlgorithmArgon2id:
		h.primary = h.argon2
	case config.HashAlgorithmBcrypt:
		h.primary = h.bcrypt
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}

	return h, nil
}

// Hash validates the password length and hashes it with the primary
// algorithm.
func (h *MultiHasher) Hash(password string) (string, error) {
	if err := h.checkLength(password); err != nil {
		return "", err
	}
	return h.primary.Hash(password)
}

// Verify checks password against a hash of any supported algorithm.
func (h *MultiHasher) Verify(password, encodedHash string) (bool, error) {
	switch {
	case strings.HasPrefix(encodedHash, argon2Prefix):
		return h.argon2.Verify(password, encodedHash)
	case isBcryptHash(encodedHash):
		return h.bcrypt.Verify(password, encodedHash)
	default:
		return false, fmt.Errorf("%w: unknown hash prefix", ErrMalformedHash)
	}
}

// NeedsRehash reports true for hashes of a non-primary algorithm and for
// primary hashes produced with stale parameters.
func (h *MultiHasher) NeedsRehash(encodedHash string) bool {
	return h.primary.NeedsRehash(encodedHash)
}

func (h *MultiHasher) checkLength(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is empty", ErrInvalidCredentialFormat)
	}
	if h.minLength > 0 && len(password) < h.minLength {
		return fmt.Errorf("%w: password must be at least %d bytes", ErrInvalidCredentialFormat, h.minLength)
	}
	if h.maxLength > 0 && len(password) > h.maxLength {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidCredentialFormat, h.maxLength)
	}
	return nil
}

var _ PasswordHasher = (*MultiHasher)(nil)
