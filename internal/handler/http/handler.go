package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/campus-auth/internal/config"
	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	services *service.Services

	allowedOrigins    []string
	resetRouteAliases []string
	requestTimeout    time.Duration

	// development adds stack traces to 500 responses.
	development bool

	metrics http.Handler

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. gatherer backs the /metrics endpoint
// and is normally the registry the service metrics were registered on.
func NewHandler(services *service.Services, cfg config.StructuredConfig, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		allowedOrigins:    cfg.Server.AllowedOrigins,
		resetRouteAliases: cfg.Server.ResetRouteAliases,
		requestTimeout:    cfg.Server.RequestTimeout,
		development:       cfg.App.Development,
		metrics:           promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{EnableOpenMetrics: true}),
		logger:            logger,
	}
}
