package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// unsupported methods are hidden behind 404 instead of chi's 405
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	// every extension route requires authentication, unknown ones included
	router.Route(h.prefix, func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/config", h.getConfig)
		r.Get("/version", h.getVersion)
		r.Get("/environ", h.getEnviron)
		r.Get("/events", h.getEvents)

		r.NotFound(notFound)
		r.MethodNotAllowed(notFound)
	})

	return router
}

// notFound answers with 404 and an empty body.
func notFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
