package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// preflight requests must be answered before anything else runs
	if h.debug {
		router.Use(h.withCORS())
	}

	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(compressionLevel))

	router.Get("/", h.root)
	router.Route("/api", func(r chi.Router) {
		r.Get("/db-version", h.getDBVersion)
	})

	return router
}
