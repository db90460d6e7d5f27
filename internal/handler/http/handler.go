package http

import (
	"github.com/giggi/basesetup/internal/config"
	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	policy   []accessRule

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		policy:   defaultAccessPolicy(),
		logger:   logger,
	}
}
