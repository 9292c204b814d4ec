// internal/app/features/missions/routes.go
package missions

import "github.com/go-chi/chi/v5"

// Routes returns the router for the mission/role API. It is mounted under
// /api in the app router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/users", h.ServeUsers)
	r.Get("/users/current-role", h.ServeCurrentRole)
	r.Get("/users/allowed-roles", h.ServeAllowedRoles)
	r.Get("/users/current-roles", h.ServeUsersCurrentRoles)

	r.Post("/users/mission", h.ServeAssign)
	r.Put("/users/current-role", h.ServeSetCurrentRole)
	r.Put("/users/allowed-roles", h.ServeSetAllowedRoles)

	r.Get("/roles", h.ServeRoles)

	return r
}
