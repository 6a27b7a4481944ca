// Package paths computes the notebook host's configuration search path.
//
// The list is ordered most-specific first, the same way the host reports it:
// the per-user config directory, extra directories from the environment, the
// environment prefix and finally the system-wide directories.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// userConfigDirName is the per-user configuration directory below $HOME.
const userConfigDirName = ".jupyter"

// ErrNoHomeDir is returned when neither an explicit user config directory
// nor a home directory is available.
var ErrNoHomeDir = errors.New("unable to determine the user configuration directory")

// Options describes the inputs of the search path.
type Options struct {
	// UserConfigDir overrides ~/.jupyter.
	UserConfigDir string

	// ExtraDirs are inserted right after the user directory.
	ExtraDirs []string

	// Prefix is the environment prefix; <Prefix>/etc/jupyter is searched
	// after the extra directories when set.
	Prefix string

	// UserOnly restricts the path to the user directory.
	UserOnly bool

	// SystemDirs replaces the platform defaults when non-nil.
	SystemDirs []string
}

// ConfigSearchPath returns the ordered, de-duplicated list of directories.
func ConfigSearchPath(opts Options) ([]string, error) {
	userDir, err := userConfigDir(opts.UserConfigDir)
	if err != nil {
		return nil, err
	}

	dirs := []string{userDir}
	if opts.UserOnly {
		return dirs, nil
	}

	dirs = append(dirs, opts.ExtraDirs...)
	if opts.Prefix != "" {
		dirs = append(dirs, filepath.Join(opts.Prefix, "etc", "jupyter"))
	}

	system := opts.SystemDirs
	if system == nil {
		system = defaultSystemDirs()
	}
	dirs = append(dirs, system...)

	return Unique(dirs), nil
}

// Unique drops blank entries and repeated directories, keeping the first
// occurrence of each.
func Unique(dirs []string) []string {
	seen := make(map[string]struct{}, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		trimmed := strings.TrimSpace(dir)
		if trimmed == "" {
			continue
		}
		cleaned := filepath.Clean(trimmed)
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}

func userConfigDir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}

	return filepath.Join(home, userConfigDirName), nil
}

func defaultSystemDirs() []string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("PROGRAMDATA")
		if programData == "" {
			return nil
		}
		return []string{filepath.Join(programData, "jupyter")}
	}

	return []string{"/usr/local/etc/jupyter", "/etc/jupyter"}
}
