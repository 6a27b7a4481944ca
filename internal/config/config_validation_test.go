package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_TableTest(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.App.ExtensionName = "ext"
		cfg.App.Token = "secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:   "package json instead of name",
			mutate: func(cfg *StructuredConfig) { cfg.App.ExtensionName = ""; cfg.App.PackageJSONPath = "/p.json" },
		},
		{
			name:    "no extension identity",
			mutate:  func(cfg *StructuredConfig) { cfg.App.ExtensionName = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "no credentials",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Token = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "sign key without issuer",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "key" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:   "sign key with issuer only",
			mutate: func(cfg *StructuredConfig) { cfg.App.Token = ""; cfg.App.TokenSignKey = "key"; cfg.App.TokenIssuer = "iss" },
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "relative base url",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.BaseURL = "lab/" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown order",
			mutate:  func(cfg *StructuredConfig) { cfg.Search.Order = "random" },
			wantErr: ErrInvalidSearchConfigs,
		},
		{
			name:    "unknown load mode",
			mutate:  func(cfg *StructuredConfig) { cfg.Search.LoadMode = "lazy" },
			wantErr: ErrInvalidSearchConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
