package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-api/models"
)

func TestMemoryUserRepository_EmptyByDefault(t *testing.T) {
	repo := NewMemoryUserRepository()

	user, err := repo.FindUserByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestMemoryUserRepository_Seeded(t *testing.T) {
	repo := NewMemoryUserRepository(models.User{ID: 3, Name: "Grace"})

	user, err := repo.FindUserByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Grace", user.Name)

	// returned value is a copy
	user.Name = "changed"
	again, err := repo.FindUserByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Grace", again.Name)
}

func TestMemoryUserRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	user, err := NewMemoryUserRepository().FindUserByID(ctx, 1)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, context.Canceled)
}
