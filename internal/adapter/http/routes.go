package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ich-youness/Financial-Services-OS/internal/middleware"
)

// MountRoutes registers all API routes on the given chi router. runLimiter
// may be nil to leave the run endpoint unthrottled (tests do this).
func MountRoutes(r chi.Router, h *Handlers, runLimiter *middleware.RateLimiter) {
	r.Route("/api/v1", func(r chi.Router) {
		// Version
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"version":"0.1.0"}`))
		})

		// Catalog
		r.Get("/modules", h.ListModules)
		r.Get("/modules/{moduleID}", h.GetModule)
		r.Get("/modules/{moduleID}/{agentID}", h.GetAgentView)
		r.Get("/modules/{moduleID}/{agentID}/form", h.GetForm)

		// Agent runs
		if runLimiter != nil {
			r.With(runLimiter.Handler).Post("/modules/{moduleID}/{agentID}/run", h.RunAgent)
		} else {
			r.Post("/modules/{moduleID}/{agentID}/run", h.RunAgent)
		}
		r.Post("/modules/{moduleID}/{agentID}/reset", h.ResetSession)

		// Navigation
		r.Get("/nav", h.GetNav)

		// UI preferences
		r.Get("/prefs/sidebar-width", h.GetSidebarWidth)
		r.Put("/prefs/sidebar-width", h.PutSidebarWidth)
	})
}
