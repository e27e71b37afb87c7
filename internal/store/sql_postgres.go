package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-secure-api/internal/config"
	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/internal/secrets"
)

const (
	maxOpenConns = 10
	maxIdleConns = 4
)

// NewConnectPostgres opens a pgx-backed *sql.DB for cfg.DSN. The password
// is injected from the secret store into the parsed connection config, so
// it never has to appear in the DSN or in any log line.
func NewConnectPostgres(ctx context.Context, cfg config.DB, password secrets.Secret, log *logger.Logger) (*DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		log.Error().Str("func", "NewConnectPostgres").Msg("error parsing database DSN")
		return nil, fmt.Errorf("error parsing database DSN: %w", ErrBackendUnavailable)
	}
	connConfig.Password = password.Reveal()

	// establish connection
	conn := stdlib.OpenDB(*connConfig)

	// setup connections
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", ErrBackendUnavailable)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newPostgresDB(conn, log), nil
}

func newPostgresDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:          conn,
		dialect:     "pgx",
		placeholder: sq.Dollar,
		classify:    classifyPostgresError,
		logger:      log,
	}
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
