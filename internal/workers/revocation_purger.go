// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-login-server/internal/logger"
)

// Purger drops expired entries and reports how many were removed.
type Purger interface {
	Purge(now time.Time) int
}

// RevocationPurger periodically removes revoked tokens that have expired on
// their own, keeping the revocation list bounded.
type RevocationPurger struct {
	purger   Purger
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewRevocationPurger(purger Purger, interval time.Duration, logger *logger.Logger) *RevocationPurger {
	return &RevocationPurger{
		purger:   purger,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run purges once per interval until ctx is cancelled.
func (p *RevocationPurger) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().Str("func", "RevocationPurger.Run").Dur("interval", p.interval).Msg("revocation purger started")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Str("func", "RevocationPurger.Run").Msg("revocation purger stopped")
			return
		case <-ticker.C:
			if purged := p.purger.Purge(p.now()); purged > 0 {
				p.logger.Debug().Str("func", "RevocationPurger.Run").Int("purged", purged).Msg("expired revocations dropped")
			}
		}
	}
}
