package rolecatalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Outlyer-Space/quantum/internal/domain/models"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Len() != 6 {
		t.Fatalf("Len: got %d, want 6", c.Len())
	}

	wantCallsigns := []string{"MD", "VIP", "SYS", "CC", "IT", "PROXY"}
	roles := c.Roles()
	for i, cs := range wantCallsigns {
		if roles[i].Callsign != cs {
			t.Errorf("Roles()[%d].Callsign: got %q, want %q", i, roles[i].Callsign, cs)
		}
	}

	md, ok := c.Get("MD")
	if !ok {
		t.Fatal("Get(MD): not found")
	}
	if md.Name != "Mission Director" {
		t.Errorf("MD name: got %q, want %q", md.Name, "Mission Director")
	}

	if _, ok := c.Get("NOPE"); ok {
		t.Error("Get(NOPE): expected not found")
	}

	if got := c.DefaultRole().Callsign; got != "VIP" {
		t.Errorf("DefaultRole callsign: got %q, want VIP", got)
	}
	if got := c.DirectorRole().Callsign; got != "MD" {
		t.Errorf("DirectorRole callsign: got %q, want MD", got)
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]models.RoleDef{
		{Name: "One", Callsign: "X"},
		{Name: "Two", Callsign: "X"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate callsign")
	}
}

func TestNewRejectsEmptyCallsign(t *testing.T) {
	_, err := New([]models.RoleDef{{Name: "Nameless"}})
	if err == nil {
		t.Fatal("expected error for empty callsign")
	}
}

func TestRolesReturnsCopy(t *testing.T) {
	c := Default()
	roles := c.Roles()
	roles[0] = models.RoleDef{Name: "Mutated", Callsign: "MUT"}

	if got := c.Roles()[0].Callsign; got != "MD" {
		t.Errorf("catalog mutated through Roles() copy: got %q", got)
	}
}

func TestByCallsignReturnsCopy(t *testing.T) {
	c := Default()
	m := c.ByCallsign()
	m["MD"] = models.RoleDef{Name: "Mutated", Callsign: "MD"}

	if got, _ := c.Get("MD"); got.Name != "Mission Director" {
		t.Errorf("catalog mutated through ByCallsign() copy: got %q", got.Name)
	}
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != Default().Len() {
		t.Errorf("Len: got %d, want %d", c.Len(), Default().Len())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	body := `{"roles":[
		{"name":"Observer","callsign":"VIP"},
		{"name":"Mission Director","callsign":"MD"},
		{"name":"Ground Control","callsign":"GC"}
	]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len: got %d, want 3", c.Len())
	}
	gc, ok := c.Get("GC")
	if !ok || gc.Name != "Ground Control" {
		t.Errorf("Get(GC): got %+v, ok=%v", gc, ok)
	}
}

func TestLoadRejectsMissingRequiredRoles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	body := `{"roles":[{"name":"Ground Control","callsign":"GC"}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for catalog without VIP/MD")
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "roles.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestUseAndCurrent(t *testing.T) {
	orig := Current()
	defer Use(orig)

	c, err := New([]models.RoleDef{
		{Name: "Observer", Callsign: "VIP"},
		{Name: "Mission Director", Callsign: "MD"},
	})
	if err != nil {
		t.Fatal(err)
	}

	Use(c)
	if Current().Len() != 2 {
		t.Errorf("Current().Len(): got %d, want 2", Current().Len())
	}

	// nil is ignored
	Use(nil)
	if Current() != c {
		t.Error("Use(nil) must keep the current catalog")
	}
}
