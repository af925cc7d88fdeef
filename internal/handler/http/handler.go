package http

import (
	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *RateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter *RateLimiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		logger:   logger,
	}
}
