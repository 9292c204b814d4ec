// internal/app/features/missions/queries.go
package missions

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/Outlyer-Space/quantum/internal/app/store/users"
	"github.com/Outlyer-Space/quantum/internal/app/system/httpjson"
	"github.com/Outlyer-Space/quantum/internal/app/system/normalize"
	"github.com/Outlyer-Space/quantum/internal/app/system/timeouts"
	"github.com/Outlyer-Space/quantum/internal/domain/models"
	"go.uber.org/zap"
)

// ServeCurrentRole handles GET /api/users/current-role?email=&mission=.
// Responds 200 with the user's current role for the mission.
func (h *Handler) ServeCurrentRole(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(r.URL.Query().Get("email"))
	mission := normalize.MissionName(r.URL.Query().Get("mission"))
	if email == "" || mission == "" {
		h.Log.Warn("current-role query missing required parameters")
		httpjson.BadRequest(w, "email and mission parameters are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Store.GetWithMission(ctx, email, mission)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			h.Log.Warn("user has no entry for mission",
				zap.String("email", email),
				zap.String("mission", mission))
			httpjson.NotFound(w, "user or mission not found")
			return
		}
		h.Log.Error("current-role lookup failed",
			zap.String("email", email),
			zap.String("mission", mission),
			zap.Error(err))
		httpjson.Internal(w, err, h.DevMode)
		return
	}

	entry := user.FindMission(mission)
	if entry == nil {
		httpjson.NotFound(w, "user or mission not found")
		return
	}
	httpjson.Write(w, http.StatusOK, entry.CurrentRole)
}

// ServeAllowedRoles handles GET /api/users/allowed-roles?email=&mission=.
// Responds 200 with the allowed-role sequence for the mission, in stored
// order.
func (h *Handler) ServeAllowedRoles(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(r.URL.Query().Get("email"))
	mission := normalize.MissionName(r.URL.Query().Get("mission"))
	if email == "" || mission == "" {
		h.Log.Warn("allowed-roles query missing required parameters")
		httpjson.BadRequest(w, "email and mission parameters are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Store.GetWithMission(ctx, email, mission)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			h.Log.Warn("user has no entry for mission",
				zap.String("email", email),
				zap.String("mission", mission))
			httpjson.NotFound(w, "user or mission not found")
			return
		}
		h.Log.Error("allowed-roles lookup failed",
			zap.String("email", email),
			zap.String("mission", mission),
			zap.Error(err))
		httpjson.Internal(w, err, h.DevMode)
		return
	}

	entry := user.FindMission(mission)
	if entry == nil {
		httpjson.NotFound(w, "user or mission not found")
		return
	}
	httpjson.Write(w, http.StatusOK, entry.AllowedRoles)
}

// ServeUsers handles GET /api/users?mission=.
// Lists every user on the mission with their current role and an
// allowed-role presence map. Users with a malformed mission entry are
// skipped with a warning, never failed.
func (h *Handler) ServeUsers(w http.ResponseWriter, r *http.Request) {
	mission := normalize.MissionName(r.URL.Query().Get("mission"))
	if mission == "" {
		h.Log.Warn("user listing missing mission parameter")
		httpjson.BadRequest(w, "mission parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Store.FindByMission(ctx, mission)
	if err != nil {
		h.Log.Error("user listing failed",
			zap.String("mission", mission),
			zap.Error(err))
		httpjson.Internal(w, err, h.DevMode)
		return
	}
	if len(users) == 0 {
		httpjson.NotFound(w, "no users found for mission")
		return
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		entry := u.FindMission(mission)
		if entry == nil {
			h.Log.Warn("user matched mission filter but has no entry",
				zap.String("email", u.Auth.Email),
				zap.String("mission", mission))
			continue
		}

		aRoles := make(map[string]int, len(entry.AllowedRoles))
		for _, role := range entry.AllowedRoles {
			if role.Callsign == "" {
				h.Log.Warn("skipping malformed allowed role",
					zap.String("email", u.Auth.Email),
					zap.String("mission", mission),
					zap.String("role_name", role.Name))
				continue
			}
			aRoles[role.Callsign] = 1
		}

		summaries = append(summaries, UserSummary{
			Auth:         u.Auth,
			CurrentRole:  entry.CurrentRole,
			AllowedRoles: aRoles,
		})
	}

	httpjson.Write(w, http.StatusOK, summaries)
}

// ServeUsersCurrentRoles handles GET /api/users/current-roles?mission=.
// Like ServeUsers but returns each user's identity with only the matching
// mission entry, for consoles that want the raw entry rather than the
// projected summary.
func (h *Handler) ServeUsersCurrentRoles(w http.ResponseWriter, r *http.Request) {
	mission := normalize.MissionName(r.URL.Query().Get("mission"))
	if mission == "" {
		h.Log.Warn("current-roles listing missing mission parameter")
		httpjson.BadRequest(w, "mission parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Store.FindByMission(ctx, mission)
	if err != nil {
		h.Log.Error("current-roles listing failed",
			zap.String("mission", mission),
			zap.Error(err))
		httpjson.Internal(w, err, h.DevMode)
		return
	}
	if len(users) == 0 {
		httpjson.NotFound(w, "no users found for mission")
		return
	}

	views := make([]UserMissionView, 0, len(users))
	for _, u := range users {
		entry := u.FindMission(mission)
		if entry == nil {
			h.Log.Warn("user matched mission filter but has no entry",
				zap.String("email", u.Auth.Email),
				zap.String("mission", mission))
			continue
		}
		views = append(views, UserMissionView{
			Auth:     u.Auth,
			Missions: []models.Mission{*entry},
		})
	}

	httpjson.Write(w, http.StatusOK, views)
}

// ServeRoles handles GET /api/roles. Returns the static role catalog keyed
// by callsign, the shape the operator console consumes.
func (h *Handler) ServeRoles(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, map[string]any{"roles": h.Catalog.ByCallsign()})
}
