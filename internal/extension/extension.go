// Package extension derives the extension identity from its packaging
// metadata.
//
// The front-end package.json names the server extension at
// jupyterlab.discovery.server.base.name. That name is also the base name of
// the JSON configuration file the server looks for.
package extension

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

const baseNamePath = "jupyterlab.discovery.server.base.name"

var (
	// ErrInvalidPackageJSON is returned when the metadata file is not valid JSON.
	ErrInvalidPackageJSON = errors.New("package metadata is not valid JSON")

	// ErrNoBaseName is returned when the metadata has no usable base name.
	ErrNoBaseName = errors.New("the base extension name should be at " + baseNamePath + " in package.json")
)

// NameFromPackageJSON reads the extension name from the package metadata
// file at path.
func NameFromPackageJSON(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading package metadata: %w", err)
	}

	return NameFromBytes(data)
}

// NameFromBytes extracts the extension name from raw package metadata.
func NameFromBytes(data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", ErrInvalidPackageJSON
	}

	name := gjson.GetBytes(data, baseNamePath)
	if name.Type != gjson.String || strings.TrimSpace(name.String()) == "" {
		return "", ErrNoBaseName
	}

	return name.String(), nil
}

// RouteNamespace returns the URL path segment the routes are served under:
// the extension name with underscores replaced by hyphens.
func RouteNamespace(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
