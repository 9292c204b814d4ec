// internal/app/features/missions/mutations.go
package missions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	userstore "github.com/Outlyer-Space/quantum/internal/app/store/users"
	"github.com/Outlyer-Space/quantum/internal/app/system/httpjson"
	"github.com/Outlyer-Space/quantum/internal/app/system/normalize"
	"github.com/Outlyer-Space/quantum/internal/app/system/timeouts"
	"github.com/Outlyer-Space/quantum/internal/domain/models"
	"go.uber.org/zap"
)

// ServeSetCurrentRole handles PUT /api/users/current-role with body
// {email, mission, role}. The user must already carry the mission;
// currentRole is overwritten with the supplied value as-is. The value is
// not cross-checked against the role catalog or the allowed set; operator
// consoles send catalog roles, and the next assignment repairs strays.
// Responds 200 with the updated user.
func (h *Handler) ServeSetCurrentRole(w http.ResponseWriter, r *http.Request) {
	var req setCurrentRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w, "request body must be JSON with email, mission and role")
		return
	}

	email := normalize.Email(req.Email)
	mission := normalize.MissionName(req.Mission)
	if email == "" || mission == "" || req.Role == (models.RoleDef{}) {
		h.Log.Warn("set current role missing required parameters")
		httpjson.BadRequest(w, "email, mission and role are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Store.SetMissionCurrentRole(ctx, email, mission, req.Role)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.NotFound(w, "user or mission not found")
			return
		}
		h.Log.Error("set current role failed",
			zap.String("email", email),
			zap.String("mission", mission),
			zap.Error(err))
		httpjson.Internal(w, err, h.DevMode)
		return
	}

	httpjson.Write(w, http.StatusOK, user)
}

// ServeSetAllowedRoles handles PUT /api/users/allowed-roles with body
// {email, mission, roles}. The user must already carry the mission;
// allowedRoles is overwritten wholesale with the supplied sequence, order
// preserved. Responds 200 with the updated user.
func (h *Handler) ServeSetAllowedRoles(w http.ResponseWriter, r *http.Request) {
	var req setAllowedRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w, "request body must be JSON with email, mission and roles")
		return
	}

	email := normalize.Email(req.Email)
	mission := normalize.MissionName(req.Mission)
	if email == "" || mission == "" || len(req.Roles) == 0 {
		h.Log.Warn("set allowed roles missing required parameters")
		httpjson.BadRequest(w, "email, mission and roles are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Store.SetMissionAllowedRoles(ctx, email, mission, req.Roles)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.NotFound(w, "user or mission not found")
			return
		}
		h.Log.Error("set allowed roles failed",
			zap.String("email", email),
			zap.String("mission", mission),
			zap.Error(err))
		httpjson.Internal(w, err, h.DevMode)
		return
	}

	httpjson.Write(w, http.StatusOK, user)
}
