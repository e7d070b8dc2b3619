// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/migrations"
)

// DB wraps a *sql.DB together with everything that differs between the
// supported SQL dialects: placeholder format, error classification and the
// migration set.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// openPool opens driver, applies configure and pings within ctx. A failed
// ping closes the pool and reports [ErrStorageUnavailable].
func openPool(ctx context.Context, driver, dataSource string, configure func(*sql.DB), log *logger.Logger) (*sql.DB, error) {
	log = log.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("driver", driver)
	})

	conn, err := sql.Open(driver, dataSource)
	if err != nil {
		log.Err(err).Str("func", "openPool").Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", driver, err)
	}
	configure(conn)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openPool").Msg("database did not answer ping")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	log.Info().Str("func", "openPool").Msg("connected to database")
	return conn, nil
}
