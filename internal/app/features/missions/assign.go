// internal/app/features/missions/assign.go
package missions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Outlyer-Space/quantum/internal/app/system/httpjson"
	"github.com/Outlyer-Space/quantum/internal/app/system/normalize"
	"github.com/Outlyer-Space/quantum/internal/app/system/timeouts"
	"github.com/Outlyer-Space/quantum/internal/domain/models"
	"go.uber.org/zap"
)

// ServeAssign handles POST /api/users/mission with body {email, mission}.
//
// Assignment rule:
//   - If no user anywhere carries the mission yet, the caller becomes its
//     first member: Mission Director, allowed roles [Observer, MD].
//   - If the mission has members and the caller has no entry for it, the
//     caller joins as Observer with allowed roles [Observer].
//   - If the caller already has an entry, the entry is kept; a currentRole
//     that is no longer part of the allowed set is repaired back to
//     Observer.
//
// The membership count is read at assignment time, so two concurrent first
// assignments can both become Mission Director. That bootstrap is
// eventually consistent by design.
//
// Responds 200 with the created or updated mission entry on every success
// path, and an explicit 4xx/5xx on every failure path.
func (h *Handler) ServeAssign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w, "request body must be JSON with email and mission")
		return
	}

	email := normalize.Email(req.Email)
	mission := normalize.MissionName(req.Mission)
	if email == "" || mission == "" {
		h.Log.Warn("mission assignment missing required parameters")
		httpjson.BadRequest(w, "email and mission are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entry, err := h.assign(ctx, email, mission)
	if err != nil {
		h.Log.Error("mission assignment failed",
			zap.String("email", email),
			zap.String("mission", mission),
			zap.Error(err))
		httpjson.Internal(w, err, h.DevMode)
		return
	}

	httpjson.Write(w, http.StatusOK, entry)
}

// assign applies the assignment rule and persists the result, returning
// the mission entry that was created or updated.
func (h *Handler) assign(ctx context.Context, email, mission string) (*models.Mission, error) {
	count, err := h.Store.CountMissionMembers(ctx, mission)
	if err != nil {
		return nil, err
	}

	// A previously unseen email gets a record on first assignment.
	user, err := h.Store.EnsureByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	defaultRole := h.Catalog.DefaultRole()

	if count == 0 {
		// First member anywhere for this mission becomes Mission Director.
		entry := models.Mission{
			Name:         mission,
			CurrentRole:  h.Catalog.DirectorRole(),
			AllowedRoles: []models.RoleDef{defaultRole, h.Catalog.DirectorRole()},
		}
		if err := h.Store.AppendMission(ctx, email, entry); err != nil {
			return nil, err
		}
		h.Log.Info("assigned mission director",
			zap.String("email", email),
			zap.String("mission", mission))
		return &entry, nil
	}

	if existing := user.FindMission(mission); existing != nil {
		if models.InRoleSet(existing.CurrentRole, existing.AllowedRoles) {
			return existing, nil
		}
		// The stored current role fell out of the allowed set; put the
		// user back on the default role and keep the set as-is.
		updated, err := h.Store.SetMissionCurrentRole(ctx, email, mission, defaultRole)
		if err != nil {
			return nil, err
		}
		h.Log.Info("repaired current role to default",
			zap.String("email", email),
			zap.String("mission", mission))
		return updated.FindMission(mission), nil
	}

	// Mission already has members elsewhere; this user joins as Observer.
	entry := models.Mission{
		Name:         mission,
		CurrentRole:  defaultRole,
		AllowedRoles: []models.RoleDef{defaultRole},
	}
	if err := h.Store.AppendMission(ctx, email, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
