package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It looks users up in the "users" table with parameterized queries.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) (UserRepository, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDB
	}

	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}, nil
}

// FindUserByID retrieves the user whose primary key equals id.
//
// Error handling:
//   - no matching row → (nil, nil).
//   - driver-level error → [ErrBackendUnavailable], [ErrUndefinedSchema] or
//     [ErrExecutingQuery], wrapping the driver error.
//   - scan failure → [ErrScanningRow].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(id, r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// query errors surface on Err, before Scan
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error querying user")
		return nil, fmt.Errorf("%w: %w", r.classify(err), err)
	}

	var user models.User
	if err = row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error scanning user row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &user, nil
}

func (r *userRepository) classify(err error) error {
	if r.db.classify == nil {
		return ErrExecutingQuery
	}
	return r.db.classify(err)
}
