package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-login-server/internal/config"
)

// cheap parameters keep the suite fast; production values come from config
func testHasherConfig(algorithm string) config.Hasher {
	return config.Hasher{
		Algorithm:         algorithm,
		Argon2Memory:      1024,
		Argon2Iterations:  1,
		Argon2Parallelism: 1,
		BcryptCost:        4,
		MinPasswordLength: 6,
		MaxPasswordLength: 64,
	}
}

func newTestHasher(t *testing.T, algorithm string) *MultiHasher {
	t.Helper()
	h, err := NewPasswordHasher(testHasherConfig(algorithm))
	require.NoError(t, err)
	return h
}

func TestNewPasswordHasher_UnknownAlgorithm(t *testing.T) {
	h, err := NewPasswordHasher(testHasherConfig("md5"))
	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestMultiHasher_HashAndVerify(t *testing.T) {
	for _, algorithm := range []string{config.HashAlgorithmArgon2id, config.HashAlgorithmBcrypt} {
		t.Run(algorithm, func(t *testing.T) {
			h := newTestHasher(t, algorithm)

			hash, err := h.Hash("S3cret!")
			require.NoError(t, err)
			assert.NotContains(t, hash, "S3cret!")

			ok, err := h.Verify("S3cret!", hash)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = h.Verify("wrong-password", hash)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

// TestMultiHasher_SaltUniqueness verifies that hashing the same plaintext
// twice yields different encodings that both verify.
func TestMultiHasher_SaltUniqueness(t *testing.T) {
	for _, algorithm := range []string{config.HashAlgorithmArgon2id, config.HashAlgorithmBcrypt} {
		t.Run(algorithm, func(t *testing.T) {
			h := newTestHasher(t, algorithm)

			hash1, err := h.Hash("samepassword")
			require.NoError(t, err)
			hash2, err := h.Hash("samepassword")
			require.NoError(t, err)
			assert.NotEqual(t, hash1, hash2)

			for _, hash := range []string{hash1, hash2} {
				ok, err := h.Verify("samepassword", hash)
				require.NoError(t, err)
				assert.True(t, ok)
			}
		})
	}
}

func TestMultiHasher_LengthBounds(t *testing.T) {
	h := newTestHasher(t, config.HashAlgorithmArgon2id)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "empty", password: "", wantErr: true},
		{name: "below minimum", password: "abc", wantErr: true},
		{name: "at minimum", password: "abcdef"},
		{name: "at maximum", password: strings.Repeat("x", 64)},
		{name: "above maximum", password: strings.Repeat("x", 65), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentialFormat)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, argon2Prefix))
		})
	}
}

// TestMultiHasher_VerifiesForeignAlgorithm verifies that hashes created under
// a previous algorithm keep verifying and are flagged for rehash.
func TestMultiHasher_VerifiesForeignAlgorithm(t *testing.T) {
	legacy := newTestHasher(t, config.HashAlgorithmBcrypt)
	current := newTestHasher(t, config.HashAlgorithmArgon2id)

	hash, err := legacy.Hash("password123")
	require.NoError(t, err)

	ok, err := current.Verify("password123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, current.NeedsRehash(hash))
	assert.False(t, legacy.NeedsRehash(hash))
}

func TestMultiHasher_NeedsRehash_StaleParameters(t *testing.T) {
	old := newTestHasher(t, config.HashAlgorithmArgon2id)
	cfg := testHasherConfig(config.HashAlgorithmArgon2id)
	cfg.Argon2Iterations = 2
	upgraded, err := NewPasswordHasher(cfg)
	require.NoError(t, err)

	hash, err := old.Hash("password123")
	require.NoError(t, err)

	assert.False(t, old.NeedsRehash(hash))
	assert.True(t, upgraded.NeedsRehash(hash))
}

func TestMultiHasher_VerifyMalformedHash(t *testing.T) {
	h := newTestHasher(t, config.HashAlgorithmArgon2id)

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "garbage", hash: "not-a-valid-hash"},
		{name: "wrong argon2 variant", hash: "$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "bad version", hash: "$argon2id$vXX$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "bad params", hash: "$argon2id$v=19$m=x,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "zero parallelism", hash: "$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", hash: "$argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA"},
		{name: "bad key encoding", hash: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$!!!"},
		{name: "truncated bcrypt", hash: "$2a$04$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("password", tt.hash)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}
