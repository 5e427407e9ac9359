package handler

import (
	"github.com/MKhiriev/campus-auth/internal/config"
	"github.com/MKhiriev/campus-auth/internal/handler/http"
	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. gatherer backs
// the /metrics endpoint.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, gatherer, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
