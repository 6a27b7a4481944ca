// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/extension"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/paths"
)

// Load modes accepted by [Search.LoadMode].
const (
	// LoadOnStartup resolves the configuration file once when the server starts.
	LoadOnStartup = "startup"
	// LoadPerRequest resolves the configuration file on every request.
	LoadPerRequest = "request"
	// LoadOnChange resolves once and again whenever a search directory changes.
	LoadOnChange = "watch"
)

// StructuredConfig is the top-level configuration container for the
// telemetry server extension. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the extension identity, version and credentials.
	App App `envPrefix:"APP_"`

	// Server holds network address, URL and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Search controls how the extension's JSON configuration file is found
	// and how often it is read.
	Search Search `envPrefix:"SEARCH_"`

	// Host holds the notebook host's own environment variables describing
	// its configuration directories. They carry no prefix.
	Host Host

	// JSONFilePath is the optional path to a JSON file with server settings
	// (not to be confused with the extension configuration file).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ExtensionName is the base name of the extension configuration file and
	// of the route namespace. Used only when PackageJSONPath is empty.
	// Env: APP_EXTENSION_NAME
	ExtensionName string `env:"EXTENSION_NAME"`

	// PackageJSONPath points to the front-end package metadata the extension
	// name is read from. Takes precedence over ExtensionName.
	// Env: APP_PACKAGE_JSON
	PackageJSONPath string `env:"PACKAGE_JSON"`

	// Version is the version string exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Token is the static server token accepted in the Authorization header
	// ("token <value>") or the token query parameter.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// TokenSignKey is the secret key used to verify HS256 bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim every bearer token must carry.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8888").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// BaseURL is the URL prefix all routes are mounted under (e.g. "/user/x/").
	// Env: SERVER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Search controls the lookup of the extension configuration file.
type Search struct {
	// ConfigDirs replaces the computed host search path when non-empty.
	// Listed in host order, most specific first.
	// Env: SEARCH_CONFIG_DIRS (comma separated)
	ConfigDirs []string `env:"CONFIG_DIRS"`

	// Prefix adds <Prefix>/etc/jupyter to the computed search path.
	// Env: SEARCH_PREFIX
	Prefix string `env:"PREFIX"`

	// Order is the precedence order, "last-listed-first" or
	// "first-listed-first".
	// Env: SEARCH_ORDER
	Order string `env:"ORDER"`

	// LoadMode is one of "startup", "request" or "watch".
	// Env: SEARCH_LOAD_MODE
	LoadMode string `env:"LOAD_MODE"`
}

// Host mirrors the environment variables the notebook host itself uses to
// build its configuration search path.
type Host struct {
	// ConfigDir overrides the per-user configuration directory.
	// Env: JUPYTER_CONFIG_DIR
	ConfigDir string `env:"JUPYTER_CONFIG_DIR"`

	// ConfigPath holds extra directories in OS path-list form.
	// Env: JUPYTER_CONFIG_PATH
	ConfigPath string `env:"JUPYTER_CONFIG_PATH"`

	// NoConfig limits the search path to the per-user directory.
	// Env: JUPYTER_NO_CONFIG
	NoConfig bool `env:"JUPYTER_NO_CONFIG"`
}

// ConfigDirs returns the directories searched for the extension configuration
// file, in host order. An explicit Search.ConfigDirs list wins over the
// computed host search path.
func (cfg *StructuredConfig) ConfigDirs() ([]string, error) {
	if len(cfg.Search.ConfigDirs) > 0 {
		return paths.Unique(cfg.Search.ConfigDirs), nil
	}

	return paths.ConfigSearchPath(paths.Options{
		UserConfigDir: cfg.Host.ConfigDir,
		ExtraDirs:     filepath.SplitList(cfg.Host.ConfigPath),
		Prefix:        cfg.Search.Prefix,
		UserOnly:      cfg.Host.NoConfig,
	})
}

// ExtensionName returns the extension name. The package metadata file wins
// when configured and a failure to read a name from it is returned as is;
// otherwise App.ExtensionName is used.
func (cfg *StructuredConfig) ExtensionName() (string, error) {
	if cfg.App.PackageJSONPath != "" {
		return extension.NameFromPackageJSON(cfg.App.PackageJSONPath)
	}
	if cfg.App.ExtensionName == "" {
		return "", fmt.Errorf("%w: extension name or package metadata path is required", ErrInvalidAppConfigs)
	}

	return cfg.App.ExtensionName, nil
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
