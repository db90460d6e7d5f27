package service

import (
	"context"
	"testing"

	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/internal/mock"
	"github.com/giggi/basesetup/internal/store"
	"github.com/giggi/basesetup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)

	return NewUserService(userRepo, logger.Nop()), userRepo
}

func TestUserService_FindAll(t *testing.T) {
	svc, userRepo := newTestUserService(t)

	stored := []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}
	userRepo.EXPECT().FindAll(gomock.Any()).Return(stored, nil)

	users, err := svc.FindAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_FindAll_Empty(t *testing.T) {
	svc, userRepo := newTestUserService(t)

	userRepo.EXPECT().FindAll(gomock.Any()).Return([]models.User{}, nil)

	users, err := svc.FindAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserService_FindByID_NotFound(t *testing.T) {
	svc, userRepo := newTestUserService(t)

	userRepo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.FindByID(context.Background(), 99)

	// The wrapped error must stay matchable for the status mapping.
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
