package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secure-api/models"
)

// memoryUserRepository is the default [UserRepository]. It holds no rows
// unless seeded, so every lookup answers "no such user".
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]models.User
}

// NewMemoryUserRepository returns an in-memory [UserRepository] holding seed.
func NewMemoryUserRepository(seed ...models.User) UserRepository {
	users := make(map[int64]models.User, len(seed))
	for _, u := range seed {
		users[u.ID] = u
	}
	return &memoryUserRepository{users: users}
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
