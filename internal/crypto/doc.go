// Package crypto implements credential hashing for the login server:
// argon2id and bcrypt hashers behind the PasswordHasher interface, plus a
// MultiHasher that verifies hashes of either algorithm.
//
// Plaintext passwords are never logged or stored by this package.
package crypto
