package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyPostgresError maps an error from the pgx driver onto a store
// sentinel. See https://www.postgresql.org/docs/current/errcodes-appendix.html
// for the full list of PostgreSQL error codes.
//
//   - Class 08 and 57P03 (connection exceptions, cannot connect now)
//     → [ErrBackendUnavailable]
//   - 42P01, 42703 (undefined table, undefined column) → [ErrUndefinedSchema]
//
// Anything else, including non-driver errors, is [ErrExecutingQuery].
func classifyPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ErrExecutingQuery
	}

	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection:
		return ErrBackendUnavailable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown:
		return ErrBackendUnavailable

	// Class 42: undefined objects
	case pgerrcode.UndefinedTable,
		pgerrcode.UndefinedColumn:
		return ErrUndefinedSchema
	}

	return ErrExecutingQuery
}
