package http

import (
	"net/http"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/utils"
)

// getConfig writes the resolved extension configuration.
//
// A missing or empty configuration answers 404 with an empty body. Any other
// failure answers with its status and the error message as a JSON string.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cfg, err := h.services.ConfigService.GetConfig(r.Context())
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusNotFound {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		log.Err(err).Msg("error getting extension configuration")
		utils.WriteJSON(w, err.Error(), status)
		return
	}

	if len(cfg) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if _, err = utils.WriteJSON(w, cfg, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing extension configuration")
	}
}
