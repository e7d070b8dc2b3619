package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-login-server/internal/config"
	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/migrations"
)

const postgresConnMaxIdleTime = 5 * time.Minute

// NewConnectPostgres opens a pgx-backed pool sized by cfg.MaxOpenConns.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := openPool(ctx, "pgx", cfg.DSN, func(pool *sql.DB) {
		pool.SetConnMaxIdleTime(postgresConnMaxIdleTime)
		if cfg.MaxOpenConns > 0 {
			pool.SetMaxOpenConns(cfg.MaxOpenConns)
			pool.SetMaxIdleConns(cfg.MaxOpenConns)
		}
	}, log)
	if err != nil {
		return nil, err
	}
	return newPostgresDB(conn, log), nil
}

func newPostgresDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}
}
