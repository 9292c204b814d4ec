// internal/domain/models/role.go
package models

// RoleDef is one role from the static role catalog: a display name plus a
// short callsign (e.g. "Mission Director" / "MD").
type RoleDef struct {
	Name     string `bson:"name" json:"name"`
	Callsign string `bson:"callsign" json:"callsign"`
}

// Equivalent reports whether two roles match field by field. Role equality
// is an explicit comparison over the RoleDef shape, not a generic
// reflection over arbitrary properties.
func (r RoleDef) Equivalent(other RoleDef) bool {
	return r.Name == other.Name && r.Callsign == other.Callsign
}

// InRoleSet reports whether role is equivalent to any entry in set.
func InRoleSet(role RoleDef, set []RoleDef) bool {
	for _, s := range set {
		if role.Equivalent(s) {
			return true
		}
	}
	return false
}
