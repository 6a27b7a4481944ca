// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/resolver"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ExtensionName == "" && cfg.App.PackageJSONPath == "" {
		return fmt.Errorf("%w: extension name or package metadata path is required", ErrInvalidAppConfigs)
	}

	if cfg.App.Token == "" && cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: a server token or a token sign key is required", ErrInvalidAuthConfigs)
	}
	if cfg.App.TokenSignKey != "" && cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is required with a token sign key", ErrInvalidAuthConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if !strings.HasPrefix(cfg.Server.BaseURL, "/") {
		return fmt.Errorf("%w: base url %q must start with /", ErrInvalidServerConfigs, cfg.Server.BaseURL)
	}

	if _, err := resolver.ParseOrder(cfg.Search.Order); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSearchConfigs, err)
	}
	switch cfg.Search.LoadMode {
	case LoadOnStartup, LoadPerRequest, LoadOnChange:
	default:
		return fmt.Errorf("%w: unknown load mode %q", ErrInvalidSearchConfigs, cfg.Search.LoadMode)
	}

	return nil
}
