package http

import (
	"errors"
	"net/http"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/resolver"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/service"
)

var errorStatusMap = map[error]int{
	resolver.ErrNotFound: http.StatusNotFound,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTokenIsExpired:     http.StatusUnauthorized,

	ErrNoCredentials:              http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
