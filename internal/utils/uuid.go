package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUIDv7 strings. It falls back to a
// random UUIDv4 if the v7 generator fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// IsCanonicalUUID reports whether s is a UUID in the 36-character hyphenated
// form.
func IsCanonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
