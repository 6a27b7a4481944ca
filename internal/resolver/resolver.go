// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
)

// fileExtension is appended to the extension name to build the file name.
const fileExtension = ".json"

// Resolver finds the extension configuration file on a directory search path.
type Resolver struct {
	order  Order
	logger *logger.Logger
}

// New returns a Resolver searching directories in the given order.
func New(order Order, logger *logger.Logger) *Resolver {
	return &Resolver{
		order:  order,
		logger: logger,
	}
}

// FileName returns the configuration file name for extensionName.
func FileName(extensionName string) string {
	return extensionName + fileExtension
}

// Order reports the search order used by the resolver.
func (r *Resolver) Order() Order {
	return r.order
}

// Resolve returns the parsed content of the first <dir>/<extensionName>.json
// found in search order.
//
// It returns [ErrNotFound] when no directory holds the file, a *[ParseError]
// when the matched file is not valid JSON, [ErrNotObject] when it holds a
// non-empty value other than an object, and a wrapped error for any other
// failure while inspecting or reading a candidate. A file holding an empty
// value (null, false, 0, "", [] or {}) resolves to an empty configuration.
func (r *Resolver) Resolve(dirs []string, extensionName string) (map[string]any, error) {
	if extensionName == "" {
		return nil, ErrEmptyExtensionName
	}

	fileName := FileName(extensionName)
	searched := r.order.Apply(dirs)

	for _, dir := range searched {
		path := filepath.Join(dir, fileName)

		ok, err := isRegularFile(path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		r.logger.Debug().Str("path", path).Msg("configuration file found")

		cfg, err := load(path)
		if err == nil && len(cfg) == 0 {
			r.logger.Info().Str("path", path).Msgf("the %s configuration file is empty", fileName)
		}

		return cfg, err
	}

	r.logger.Info().
		Strs("dirs", searched).
		Msgf("the %s configuration file is missing in all of the searched directories", fileName)

	return nil, ErrNotFound
}

func isRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("error inspecting configuration candidate %s: %w", path, err)
	}

	return info.Mode().IsRegular(), nil
}

func load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file %s: %w", path, err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if isEmpty(value) {
		return map[string]any{}, nil
	}

	cfg, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("configuration file %s: %w", path, ErrNotObject)
	}

	return cfg, nil
}

// isEmpty reports whether a decoded JSON value carries no configuration.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}

	return false
}
