package http

import (
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	generator *utils.UUIDGenerator
	logger    *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		generator: utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
