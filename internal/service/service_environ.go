package service

import (
	"context"
	"os"
	"strings"
)

type environService struct {
	environ func() []string
}

// NewEnvironService returns an EnvironService reading variables from environ.
// A nil environ reads the process environment.
func NewEnvironService(environ func() []string) EnvironService {
	if environ == nil {
		environ = os.Environ
	}

	return &environService{environ: environ}
}

// GetEnviron returns a snapshot of the environment taken at call time.
// Entries are split on the first "=", so values may contain "=".
func (s *environService) GetEnviron(ctx context.Context) map[string]string {
	entries := s.environ()
	env := make(map[string]string, len(entries))

	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		// Windows keeps per-drive entries like "=C:=C:\" with an empty name.
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}

	return env
}
