package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts every route on a chi router
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Routes
	r.Get("/health", h.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/document", h.HandleDocument)
		r.Get("/sections", h.HandleSections)
		r.Get("/sections/{id}", h.HandleSection)
		r.Post("/search", h.HandleSearch)
		r.Get("/progress", h.HandleProgress)
		r.Post("/progress/toggle", h.HandleToggle)
		r.Delete("/progress", h.HandleReset)
		r.Get("/guide/{step}", h.HandleGuideStep)
	})

	return r
}
