package http

import (
	"net/http"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/utils"
)

// getVersion writes the extension version as a JSON string.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteJSON(w, version, http.StatusOK)
}
