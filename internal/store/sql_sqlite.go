package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-secure-api/internal/config"
	"github.com/MKhiriev/go-secure-api/internal/logger"
)

// NewConnectSQLite opens a SQLite database at cfg.DSN (a file path or a
// "file:" URI). SQLite has no credentials, so the database password secret
// is not used.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", ErrBackendUnavailable)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", ErrBackendUnavailable)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newSQLiteDB(conn, log), nil
}

func newSQLiteDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:          conn,
		dialect:     "sqlite3",
		placeholder: sq.Question,
		classify:    classifySQLiteError,
		logger:      log,
	}
}

// classifySQLiteError maps a go-sqlite3 error onto a store sentinel.
// SQLite reports most failures as a generic SQLITE_ERROR, so the message is
// inspected instead of the error code.
func classifySQLiteError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "no such table"), strings.Contains(msg, "no such column"):
		return ErrUndefinedSchema
	case strings.Contains(msg, "unable to open database"), strings.Contains(msg, "file is not a database"):
		return ErrBackendUnavailable
	}

	return ErrExecutingQuery
}
