// internal/app/features/version/routes.go
package version

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the version endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeVersion)
	return r
}
