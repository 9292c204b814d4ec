// internal/app/features/missions/types.go
package missions

import "github.com/Outlyer-Space/quantum/internal/domain/models"

// assignRequest is the body for POST /api/users/mission.
type assignRequest struct {
	Email   string `json:"email"`
	Mission string `json:"mission"`
}

// setCurrentRoleRequest is the body for PUT /api/users/current-role.
type setCurrentRoleRequest struct {
	Email   string         `json:"email"`
	Mission string         `json:"mission"`
	Role    models.RoleDef `json:"role"`
}

// setAllowedRolesRequest is the body for PUT /api/users/allowed-roles.
type setAllowedRolesRequest struct {
	Email   string           `json:"email"`
	Mission string           `json:"mission"`
	Roles   []models.RoleDef `json:"roles"`
}

// UserSummary is one row of the per-mission user listing. AllowedRoles is
// projected into a presence map keyed by callsign; ordering is discarded.
type UserSummary struct {
	Auth         models.Auth    `json:"auth"`
	CurrentRole  models.RoleDef `json:"currentRole"`
	AllowedRoles map[string]int `json:"allowedRoles"`
}

// UserMissionView is one row of the per-mission current-role listing: the
// user's identity plus only the mission entry that was asked about.
type UserMissionView struct {
	Auth     models.Auth      `json:"auth"`
	Missions []models.Mission `json:"missions"`
}
