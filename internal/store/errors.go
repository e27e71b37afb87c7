package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// storage driver name.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrNilDB is returned when a SQL repository is built without a
	// connection.
	ErrNilDB = errors.New("db is nil")

	// ErrUndefinedSchema is returned when the users table or one of its
	// columns does not exist, typically because migrations were not applied.
	ErrUndefinedSchema = errors.New("users schema is not defined")

	// ErrBackendUnavailable is returned when the database connection is lost
	// or refused.
	ErrBackendUnavailable = errors.New("user backend is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
