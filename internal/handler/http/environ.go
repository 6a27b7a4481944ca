package http

import (
	"net/http"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/utils"
)

func (h *Handler) getEnviron(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.EnvironService.GetEnviron(r.Context()), http.StatusOK)
}
