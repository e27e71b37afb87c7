package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/migrations"
)

// DB is an open SQL connection together with the dialect details the
// repositories need to build queries for it.
type DB struct {
	*sql.DB

	// dialect is the goose dialect name ("pgx" or "sqlite3").
	dialect string

	// placeholder is the bind variable style of the driver.
	placeholder sq.PlaceholderFormat

	// classify maps a driver error onto a store sentinel.
	classify func(err error) error

	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
