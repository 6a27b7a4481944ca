package service

import (
	"fmt"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/config"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
)

type Services struct {
	ConfigService  ConfigService
	AppInfoService AppInfoService
	EnvironService EnvironService
	AuthService    AuthService
}

// NewServices wires every service from the validated configuration.
// dirs is the host-ordered search path and extensionName the resolved
// extension name.
func NewServices(cfg *config.StructuredConfig, resolver ConfigResolver, dirs []string, extensionName string, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, extensionName, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	configService, err := NewConfigService(resolver, dirs, extensionName, cfg.Search.LoadMode, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating config service: %w", err)
	}

	return &Services{
		ConfigService:  configService,
		AppInfoService: appInfoService,
		EnvironService: NewEnvironService(nil),
		AuthService:    NewAuthService(cfg.App, logger),
	}, nil
}
