package service

import (
	"context"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/config"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
)

type appInfoService struct {
	appVersion    string
	extensionName string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, extensionName string, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if extensionName == "" {
		return nil, ErrExtensionNameIsNotSpecified
	}

	return &appInfoService{
		appVersion:    cfg.Version,
		extensionName: extensionName,
		logger:        logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetExtensionName(ctx context.Context) string {
	return s.extensionName
}
