// Package http is the inbound HTTP adapter: board and health routes, and the
// server that hosts them.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

// NewRouter mounts the health checks at /health and the board API under
// /api/v1/boards. middlewares wrap every route, outermost first. Unknown
// paths answer a not_found problem document.
func NewRouter(boards *handlers.BoardHandler, health *handlers.HealthHandler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", health.Liveness)
		r.Get("/ready", health.Readiness)
	})

	r.Route("/api/v1/boards", func(r chi.Router) {
		r.Post("/", boards.Mount)
		r.Route("/{boardId}", func(r chi.Router) {
			r.Get("/", boards.GetBoard)
			r.Delete("/", boards.Unmount)
			r.Get("/columns/{stage}", boards.GetColumn)
			r.Post("/moves", boards.Drop)
			r.Get("/moves/{moveId}", boards.GetMove)
			r.Post("/refresh", boards.Refresh)
			r.Post("/reload", boards.Reload)
			r.Get("/notices", boards.ListNotices)
			r.Get("/reference", boards.GetReference)
		})
	})

	return r
}
