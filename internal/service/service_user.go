package service

import (
	"context"
	"fmt"

	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/internal/store"
	"github.com/giggi/basesetup/models"
)

// userService is the concrete implementation of UserService. It is a thin
// read layer over the user repository for the protected listing endpoints.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

func (u *userService) FindByID(ctx context.Context, id int64) (models.User, error) {
	user, err := u.userRepository.FindByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}
