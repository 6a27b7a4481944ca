package config

import (
	"time"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/resolver"
)

// defaultConfig returns the values used for every field no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:    "127.0.0.1:8888",
			BaseURL:        "/",
			RequestTimeout: 30 * time.Second,
		},
		Search: Search{
			Order:    string(resolver.LastListedFirst),
			LoadMode: LoadOnStartup,
		},
	}
}
