package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/models"
)

// ConfigResolver looks up the extension configuration file on a search path.
// It is satisfied by *resolver.Resolver.
type ConfigResolver interface {
	Resolve(dirs []string, extensionName string) (map[string]any, error)
}

// ConfigService serves the resolved extension configuration.
type ConfigService interface {
	// GetConfig returns the configuration object. The returned map is shared
	// and must not be modified by callers.
	GetConfig(ctx context.Context) (map[string]any, error)

	// OnConfigChanged marks the cached configuration stale. Only the watch
	// load mode acts on it.
	OnConfigChanged(path string)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetExtensionName(ctx context.Context) string
}

type EnvironService interface {
	GetEnviron(ctx context.Context) map[string]string
}

// AuthService checks the credential presented with a request.
// scheme is the lower-cased Authorization scheme ("token" or "bearer");
// credentials taken from the token query parameter use the "token" scheme.
type AuthService interface {
	Authenticate(ctx context.Context, scheme, credential string) (models.Token, error)
}
