// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-login-server/internal/config"
	"github.com/MKhiriev/go-login-server/internal/logger"
)

// Storages aggregates the repositories used by the service layer and owns
// the underlying connection, if any.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

type backend int

const (
	backendMemory backend = iota
	backendPostgres
	backendSQLite
)

// NewStorages builds the user directory selected by cfg.DSN:
//   - "" or "memory" → in-memory repository;
//   - "postgres://…" or "postgresql://…" → PostgreSQL;
//   - "sqlite://…" or "file:…" → SQLite.
//
// SQL backends are migrated to the latest schema before use.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	kind, err := backendFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch kind {
	case backendMemory:
		log.Warn().Str("func", "NewStorages").Msg("no database configured: users are kept in memory only")
		return &Storages{UserRepository: NewMemoryUserRepository(log)}, nil
	case backendPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case backendSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the database connection. It is a no-op for the in-memory
// backend.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func backendFromDSN(dsn string) (backend, error) {
	switch {
	case dsn == "" || dsn == "memory":
		return backendMemory, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return backendPostgres, nil
	case strings.HasPrefix(dsn, sqliteScheme), strings.HasPrefix(dsn, "file:"):
		return backendSQLite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
}

// redactDSN keeps only the scheme of a DSN so credentials never reach logs.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://***"
	}
	return "***"
}
