package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
//
// Encoded hashes are self-describing (algorithm, parameters, salt and digest
// in a single string), so a hash produced with old parameters stays
// verifiable after the configuration changes.
type PasswordHasher interface {
	// Hash returns a freshly salted encoding of password. Two calls with the
	// same password never return the same string.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash.
	// Returns (true, nil) on match, (false, nil) on mismatch and
	// ErrMalformedHash when encodedHash cannot be parsed.
	Verify(password, encodedHash string) (bool, error)

	// NeedsRehash reports whether encodedHash was produced by another
	// algorithm or with parameters different from the current ones.
	NeedsRehash(encodedHash string) bool
}
