package http

import (
	"time"

	"github.com/MKhiriev/leads-api/internal/config"
	"github.com/MKhiriev/leads-api/internal/logger"
	"github.com/MKhiriev/leads-api/internal/service"
)

type Handler struct {
	services *service.Services

	debug          bool
	corsOrigin     string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Bool("debug", bool(cfg.App.Debug)).Msg("http handler created")
	return &Handler{
		services:       services,
		debug:          bool(cfg.App.Debug),
		corsOrigin:     cfg.CORS.AllowedOrigin,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
