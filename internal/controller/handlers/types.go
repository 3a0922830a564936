package handlers

import (
	"go.uber.org/zap"

	"vuorovahti/internal/service"
)

// Handlers holds the dependencies of the command handlers.
type Handlers struct {
	availability *service.AvailabilityService
	logger       *zap.Logger
}

func NewHandlers(availability *service.AvailabilityService, logger *zap.Logger) *Handlers {
	return &Handlers{
		availability: availability,
		logger:       logger,
	}
}
