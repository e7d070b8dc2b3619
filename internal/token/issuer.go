// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and validates signed session tokens (HS256 JWT) and
// keeps the list of tokens revoked by logout.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-login-server/internal/config"
	"github.com/MKhiriev/go-login-server/models"
)

// IDGenerator produces unique token identifiers (jti).
type IDGenerator interface {
	Generate() string
}

// Issuer mints and validates session tokens.
//
// Tokens carry only the subject (user id) and standard time claims; the
// signing key is read-only configuration shared by every goroutine.
type Issuer struct {
	signKey   []byte
	issuer    string
	clockSkew time.Duration
	ids       IDGenerator
	now       func() time.Time
	parser    *jwt.Parser
}

// NewIssuer constructs an Issuer from the application config.
// Returns ErrInvalidIssuerParams when the sign key or issuer is empty.
func NewIssuer(cfg config.App, ids IDGenerator) (*Issuer, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" {
		return nil, fmt.Errorf("%w: sign key and issuer are required", ErrInvalidIssuerParams)
	}

	i := &Issuer{
		signKey:   []byte(cfg.TokenSignKey),
		issuer:    cfg.TokenIssuer,
		clockSkew: cfg.TokenClockSkew,
		ids:       ids,
		now:       time.Now,
	}
	i.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithLeeway(i.clockSkew),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return i.now() }),
	)

	return i, nil
}

// ClockSkew returns the tolerance applied to time-based claims.
func (i *Issuer) ClockSkew() time.Duration {
	return i.clockSkew
}

// Issue creates a signed token for userID that expires after ttl.
func (i *Issuer) Issue(userID int64, ttl time.Duration) (models.SessionToken, error) {
	if ttl <= 0 {
		return models.SessionToken{}, fmt.Errorf("%w: ttl must be positive", ErrInvalidIssuerParams)
	}

	// NumericDate has second precision, truncate so the returned times match
	// what Validate decodes later.
	now := i.now().Truncate(time.Second)
	token := models.SessionToken{
		ID:        i.ids.Generate(),
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    i.issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(token.ExpiresAt),
		IssuedAt:  jwt.NewNumericDate(token.IssuedAt),
		ID:        token.ID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}
	token.SignedString = signed

	return token, nil
}

// Validate checks signature, algorithm, issuer and expiry (with clock-skew
// leeway) of raw and returns the decoded token. It never panics on
// malformed input.
func (i *Issuer) Validate(raw string) (models.SessionToken, error) {
	claims := &jwt.RegisteredClaims{}
	if _, err := i.parser.ParseWithClaims(raw, claims, i.keyFunc); err != nil {
		return models.SessionToken{}, mapJWTError(err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return models.SessionToken{}, fmt.Errorf("%w: bad subject", ErrTokenInvalidClaims)
	}
	if claims.ID == "" {
		return models.SessionToken{}, fmt.Errorf("%w: missing jti", ErrTokenInvalidClaims)
	}

	token := models.SessionToken{
		ID:           claims.ID,
		UserID:       userID,
		ExpiresAt:    claims.ExpiresAt.Time,
		SignedString: raw,
	}
	if claims.IssuedAt != nil {
		token.IssuedAt = claims.IssuedAt.Time
	}

	return token, nil
}

func (i *Issuer) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrTokenInvalidSignature
	}
	return i.signKey, nil
}

// mapJWTError maps JWT library errors to the package sentinels.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, ErrTokenInvalidSignature):
		return ErrTokenInvalidSignature
	case errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUsedBeforeIssued),
		errors.Is(err, jwt.ErrTokenInvalidClaims):
		return ErrTokenInvalidClaims
	default:
		return ErrTokenMalformed
	}
}
