package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/internal/store"
	"github.com/MKhiriev/go-secure-api/models"
)

type userService struct {
	repo   store.UserRepository
	logger *logger.Logger
}

func NewUserService(repo store.UserRepository, logger *logger.Logger) (UserService, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: user repository", ErrNilDependency)
	}

	return &userService{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}
