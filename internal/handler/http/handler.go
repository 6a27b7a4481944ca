package http

import (
	"path"
	"time"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/config"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/service"
)

type Handler struct {
	services *service.Services

	// prefix is <base-url>/<route-namespace>, always starting with "/".
	prefix         string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, routeNamespace string, logger *logger.Logger) *Handler {
	prefix := path.Join("/", cfg.BaseURL, routeNamespace)

	logger.Info().Str("prefix", prefix).Msg("http handler created")
	return &Handler{
		services:       services,
		prefix:         prefix,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// Prefix returns the path every extension route is mounted under.
func (h *Handler) Prefix() string {
	return h.prefix
}
