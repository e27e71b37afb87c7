package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-api/internal/config"
	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/internal/secrets"
)

// Storages bundles the backends used by the service layer.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages builds the user backend selected by cfg.Driver. SQL backends
// are connected, pinged and migrated before returning.
func NewStorages(ctx context.Context, cfg config.DB, secretStore *secrets.Store, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverMemory, "":
		log.Info().Str("func", "NewStorages").Msg("using in-memory user backend")
		return &Storages{UserRepository: NewMemoryUserRepository()}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, secretStore.DBPassword(), log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	return newSQLStorages(db, log)
}

func newSQLStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	userRepo, err := NewUserRepository(db, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{UserRepository: userRepo, db: db}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
