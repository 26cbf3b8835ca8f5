package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Group(func(r chi.Router) {
		r.Get("/api/profile/", h.getProfile)
		r.Put("/api/profile/", h.saveProfile)

		r.Get("/api/measurements/", h.listMeasurements)
		r.Post("/api/measurements/", h.recordMeasurement)
		r.Get("/api/measurements/latest", h.latestMeasurement)
		r.Get("/api/measurements/{measurementID}", h.getMeasurement)

		r.Get("/api/dashboard/", h.dashboard)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
