package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig is the on-disk layout of the optional server settings
// file.
type StructuredJSONConfig struct {
	App struct {
		ExtensionName   string `json:"extension_name"`
		PackageJSONPath string `json:"package_json"`
		Version         string `json:"version"`
		LogLevel        string `json:"log_level"`
		Token           string `json:"token"`
		TokenSignKey    string `json:"token_sign_key"`
		TokenIssuer     string `json:"token_issuer"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Search struct {
		ConfigDirs []string `json:"config_dirs"`
		Prefix     string   `json:"prefix"`
		Order      string   `json:"order"`
		LoadMode   string   `json:"load_mode"`
	} `json:"search,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ExtensionName:   jsonCfg.App.ExtensionName,
			PackageJSONPath: jsonCfg.App.PackageJSONPath,
			Version:         jsonCfg.App.Version,
			LogLevel:        jsonCfg.App.LogLevel,
			Token:           jsonCfg.App.Token,
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			BaseURL:        jsonCfg.Server.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Search: Search{
			ConfigDirs: jsonCfg.Search.ConfigDirs,
			Prefix:     jsonCfg.Search.Prefix,
			Order:      jsonCfg.Search.Order,
			LoadMode:   jsonCfg.Search.LoadMode,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
