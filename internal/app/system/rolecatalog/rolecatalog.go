// Package rolecatalog holds the static role catalog: the fixed set of role
// definitions (name + callsign) users can hold on a mission.
//
// The catalog is loaded once at process start (built-in defaults or a JSON
// file override) and published with Use. It is never mutated after load,
// so any number of in-flight requests may read it without synchronization.
package rolecatalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Outlyer-Space/quantum/internal/domain/models"
)

// DefaultCallsign is the callsign of the role assigned to users joining a
// mission that already has members, and the role current-role repairs fall
// back to.
const DefaultCallsign = "VIP"

// MDCallsign is the callsign assigned to a mission's first member.
const MDCallsign = "MD"

// Catalog is an immutable set of role definitions keyed by callsign.
// Declaration order is preserved for listing.
type Catalog struct {
	roles []models.RoleDef
	byCS  map[string]models.RoleDef
}

// New builds a catalog from the given roles. Callsigns must be unique and
// non-empty.
func New(roles []models.RoleDef) (*Catalog, error) {
	c := &Catalog{
		roles: make([]models.RoleDef, 0, len(roles)),
		byCS:  make(map[string]models.RoleDef, len(roles)),
	}
	for _, r := range roles {
		if r.Callsign == "" {
			return nil, fmt.Errorf("role %q has empty callsign", r.Name)
		}
		if _, dup := c.byCS[r.Callsign]; dup {
			return nil, fmt.Errorf("duplicate callsign %q in role catalog", r.Callsign)
		}
		c.roles = append(c.roles, r)
		c.byCS[r.Callsign] = r
	}
	return c, nil
}

// Default returns the built-in role catalog.
func Default() *Catalog {
	c, err := New([]models.RoleDef{
		{Name: "Mission Director", Callsign: "MD"},
		{Name: "Observer", Callsign: "VIP"},
		{Name: "Systems Engineer", Callsign: "SYS"},
		{Name: "Crew Communicator", Callsign: "CC"},
		{Name: "IT Support", Callsign: "IT"},
		{Name: "Proxy Operator", Callsign: "PROXY"},
	})
	if err != nil {
		// The built-in set is a compile-time constant; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

// Load reads a role catalog from a JSON file of the form
//
//	{ "roles": [ {"name": "...", "callsign": "..."}, ... ] }
//
// An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role catalog: %w", err)
	}
	var file struct {
		Roles []models.RoleDef `json:"roles"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse role catalog %s: %w", path, err)
	}
	if len(file.Roles) == 0 {
		return nil, fmt.Errorf("role catalog %s defines no roles", path)
	}
	c, err := New(file.Roles)
	if err != nil {
		return nil, err
	}
	// Mission assignment cannot work without the default and director roles.
	for _, cs := range []string{DefaultCallsign, MDCallsign} {
		if _, ok := c.Get(cs); !ok {
			return nil, fmt.Errorf("role catalog %s is missing required callsign %q", path, cs)
		}
	}
	return c, nil
}

// Get returns the role for a callsign.
func (c *Catalog) Get(callsign string) (models.RoleDef, bool) {
	r, ok := c.byCS[callsign]
	return r, ok
}

// Roles returns the catalog entries in declaration order. The returned
// slice is a copy; callers may not reach the catalog's own storage.
func (c *Catalog) Roles() []models.RoleDef {
	out := make([]models.RoleDef, len(c.roles))
	copy(out, c.roles)
	return out
}

// ByCallsign returns the catalog as a callsign-keyed map. The returned map
// is a copy.
func (c *Catalog) ByCallsign() map[string]models.RoleDef {
	out := make(map[string]models.RoleDef, len(c.byCS))
	for cs, r := range c.byCS {
		out[cs] = r
	}
	return out
}

// DefaultRole returns the role joiners receive (Observer/VIP).
func (c *Catalog) DefaultRole() models.RoleDef {
	return c.byCS[DefaultCallsign]
}

// DirectorRole returns the role a mission's first member receives.
func (c *Catalog) DirectorRole() models.RoleDef {
	return c.byCS[MDCallsign]
}

// Len returns the number of roles in the catalog.
func (c *Catalog) Len() int { return len(c.roles) }

// current is the process-wide catalog published by Use at startup.
var current = Default()

// Use publishes cat as the process-wide catalog. Called once during
// startup, before the HTTP handler is built.
func Use(cat *Catalog) {
	if cat != nil {
		current = cat
	}
}

// Current returns the process-wide catalog.
func Current() *Catalog { return current }
