package http

import (
	"github.com/MKhiriev/go-secure-api/internal/config"
	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/internal/service"
	"github.com/MKhiriev/go-secure-api/internal/utils"
	"github.com/MKhiriev/go-secure-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	limiter   *rateLimitStore
	traceIDs  utils.IDGenerator
	cfg       config.Server

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A zero cfg.RateLimitRPS disables rate
// limiting.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:  services,
		validator: validators.NewRequestValidator(cfg.MaxBodySize),
		traceIDs:  utils.NewUUIDGenerator(),
		cfg:       cfg,
		logger:    logger,
	}
	if cfg.RateLimitRPS > 0 {
		h.limiter = newRateLimitStore(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return h
}
