// internal/app/features/clock/routes.go
package clock

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the mission clock endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeTime)
	return r
}
