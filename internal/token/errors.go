package token

import "errors"

// Validation failures reported by [Issuer.Validate]. Every rejected token
// maps to exactly one of them.
var (
	// ErrTokenMalformed is returned when the token cannot be decoded.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenExpired is returned when exp lies in the past beyond the
	// allowed clock skew.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenInvalidSignature is returned for a bad signature or a signing
	// algorithm other than the configured one.
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	// ErrTokenInvalidClaims is returned when a required claim is missing or
	// has an unexpected value (issuer, subject, jti, not-before).
	ErrTokenInvalidClaims = errors.New("token claims are invalid")
)

// ErrInvalidIssuerParams is returned by [NewIssuer] and [Issuer.Issue] for
// unusable parameters (empty sign key, non-positive ttl).
var ErrInvalidIssuerParams = errors.New("invalid token issuer params")
