// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"sync"
	"time"
)

// RevocationList remembers the ids of tokens ended by logout until they would
// have expired on their own. It is safe for concurrent use.
//
// The list lives in process memory: revocations are lost on restart and are
// not shared between replicas.
type RevocationList struct {
	entries sync.Map // jti -> time.Time (expiry)
	grace   time.Duration
}

// NewRevocationList creates an empty list. Entries are kept for grace past
// their expiry, which must cover the clock skew tolerated by validation.
func NewRevocationList(grace time.Duration) *RevocationList {
	return &RevocationList{grace: grace}
}

// Revoke marks jti as revoked until expiresAt. Revoking twice is a no-op.
func (l *RevocationList) Revoke(jti string, expiresAt time.Time) {
	l.entries.LoadOrStore(jti, expiresAt)
}

// IsRevoked reports whether jti has been revoked.
func (l *RevocationList) IsRevoked(jti string) bool {
	_, ok := l.entries.Load(jti)
	return ok
}

// Purge drops entries whose token can no longer pass validation at now and
// returns how many were removed.
func (l *RevocationList) Purge(now time.Time) int {
	purged := 0
	l.entries.Range(func(key, value any) bool {
		if now.After(value.(time.Time).Add(l.grace)) && l.entries.CompareAndDelete(key, value) {
			purged++
		}
		return true
	})
	return purged
}

// Len returns the number of revoked tokens currently remembered.
func (l *RevocationList) Len() int {
	n := 0
	l.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
