package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates that neither an extension name nor a
	// package metadata path was provided.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates missing or incomplete credentials
	// (no token and no sign key, or a sign key without an issuer).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, empty address or a base URL not starting with "/").
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSearchConfigs indicates an unknown search order or load mode.
	ErrInvalidSearchConfigs = errors.New("invalid search configuration")
)
