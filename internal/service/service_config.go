package service

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/config"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/resolver"
)

// configService is the concrete implementation of ConfigService.
//
// In the startup and watch load modes the resolved configuration (or the
// error resolving it) is cached and shared read-only between requests. In the
// request mode every call resolves the file again.
type configService struct {
	resolver      ConfigResolver
	dirs          []string
	extensionName string
	mode          string

	mu     sync.RWMutex
	stale  bool
	config map[string]any
	err    error

	logger *logger.Logger
}

// NewConfigService constructs a ConfigService for extensionName searched over
// dirs. In the startup and watch modes the file is resolved immediately; a
// failure other than a missing file is logged and returned by every later
// GetConfig call.
func NewConfigService(resolver ConfigResolver, dirs []string, extensionName, mode string, logger *logger.Logger) (ConfigService, error) {
	if extensionName == "" {
		return nil, ErrExtensionNameIsNotSpecified
	}
	if mode == "" {
		mode = config.LoadOnStartup
	}

	switch mode {
	case config.LoadOnStartup, config.LoadPerRequest, config.LoadOnChange:
	default:
		return nil, ErrUnknownLoadMode
	}

	s := &configService{
		resolver:      resolver,
		dirs:          slices.Clone(dirs),
		extensionName: extensionName,
		mode:          mode,
		logger:        logger,
	}

	if mode != config.LoadPerRequest {
		s.config, s.err = s.resolve()
	}

	return s, nil
}

func (s *configService) GetConfig(ctx context.Context) (map[string]any, error) {
	switch s.mode {
	case config.LoadPerRequest:
		return s.resolve()
	case config.LoadOnChange:
		s.reloadIfStale(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.config, s.err
}

func (s *configService) OnConfigChanged(path string) {
	if s.mode != config.LoadOnChange {
		return
	}

	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()

	s.logger.Debug().Str("path", path).Msg("configuration marked stale")
}

func (s *configService) reloadIfStale(ctx context.Context) {
	s.mu.RLock()
	stale := s.stale
	s.mu.RUnlock()

	if !stale {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another request may have reloaded while the lock was released
	if !s.stale {
		return
	}

	s.config, s.err = s.resolve()
	s.stale = false

	logger.FromContext(ctx).Info().Err(s.err).Msg("configuration reloaded")
}

func (s *configService) resolve() (map[string]any, error) {
	cfg, err := s.resolver.Resolve(s.dirs, s.extensionName)
	if err != nil && !errors.Is(err, resolver.ErrNotFound) {
		s.logger.Err(err).Str("extension", s.extensionName).Msg("error resolving configuration")
	}

	return cfg, err
}
