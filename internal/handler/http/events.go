package http

import (
	"net/http"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/events"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/utils"
)

// getEvents writes which telemetry events are enabled. Without a
// configuration file every event is enabled.
func (h *Handler) getEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cfg, err := h.services.ConfigService.GetConfig(r.Context())
	if err != nil {
		if status := statusFromError(err); status != http.StatusNotFound {
			log.Err(err).Msg("error getting extension configuration")
			utils.WriteJSON(w, err.Error(), status)
			return
		}
		cfg = nil
	}

	utils.WriteJSON(w, events.Toggles(cfg), http.StatusOK)
}
