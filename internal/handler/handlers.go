package handler

import (
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/config"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/handler/http"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers for every configured address.
// routeNamespace is the URL segment the extension routes live under.
func NewHandlers(services *service.Services, cfg config.Server, routeNamespace string, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if routeNamespace == "" {
		return nil, errEmptyRouteNamespace
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, routeNamespace, logger),
	}, nil
}
