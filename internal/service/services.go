package service

import (
	"github.com/giggi/basesetup/internal/config"
	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/internal/store"
)

// Services bundles every application service. One instance is created at
// startup and handed to the transport layer.
type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, storages.RoleRepository, cfg, logger),
		UserService: NewUserService(storages.UserRepository, logger),
	}
}
