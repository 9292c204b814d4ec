package missions_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Outlyer-Space/quantum/internal/domain/models"
	"github.com/Outlyer-Space/quantum/internal/testutil"
)

func putJSON(t *testing.T, fn http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("PUT", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func TestSetCurrentRole(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vip := testutil.Role("Observer", "VIP")
	md := testutil.Role("Mission Director", "MD")
	fixtures.CreateUser(ctx, "a@x.com", "A", testutil.MissionEntry("AZero", vip, vip, md))

	rec := putJSON(t, h.ServeSetCurrentRole, "/api/users/current-role",
		`{"email":"a@x.com","mission":"AZero","role":{"name":"Mission Director","callsign":"MD"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var u models.User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatal(err)
	}
	entry := u.FindMission("AZero")
	if entry == nil || entry.CurrentRole.Callsign != "MD" {
		t.Errorf("currentRole: got %+v, want MD", entry)
	}
}

func TestSetCurrentRole_NoCatalogValidation(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vip := testutil.Role("Observer", "VIP")
	fixtures.CreateUser(ctx, "a@x.com", "A", testutil.MissionEntry("AZero", vip, vip))

	// A role outside the catalog and outside allowedRoles is accepted
	// as-is; the next assignment pass repairs it.
	rec := putJSON(t, h.ServeSetCurrentRole, "/api/users/current-role",
		`{"email":"a@x.com","mission":"AZero","role":{"name":"Freelancer","callsign":"FREE"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var u models.User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatal(err)
	}
	if got := u.FindMission("AZero").CurrentRole.Callsign; got != "FREE" {
		t.Errorf("currentRole: got %q, want FREE", got)
	}
}

func TestSetCurrentRole_Errors(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vip := testutil.Role("Observer", "VIP")
	fixtures.CreateUser(ctx, "a@x.com", "A", testutil.MissionEntry("AZero", vip, vip))

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing role", `{"email":"a@x.com","mission":"AZero"}`, http.StatusBadRequest},
		{"missing email", `{"mission":"AZero","role":{"name":"Observer","callsign":"VIP"}}`, http.StatusBadRequest},
		{"not json", `role=VIP`, http.StatusBadRequest},
		{"unknown user", `{"email":"ghost@x.com","mission":"AZero","role":{"name":"Observer","callsign":"VIP"}}`, http.StatusNotFound},
		{"unknown mission", `{"email":"a@x.com","mission":"Nope","role":{"name":"Observer","callsign":"VIP"}}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := putJSON(t, h.ServeSetCurrentRole, "/api/users/current-role", tt.body)
			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestSetAllowedRoles_RoundTrip(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vip := testutil.Role("Observer", "VIP")
	fixtures.CreateUser(ctx, "c@x.com", "C", testutil.MissionEntry("AZero", vip, vip))

	rec := putJSON(t, h.ServeSetAllowedRoles, "/api/users/allowed-roles",
		`{"email":"c@x.com","mission":"AZero","roles":[
			{"name":"Systems Engineer","callsign":"SYS"},
			{"name":"IT Support","callsign":"IT"},
			{"name":"Proxy Operator","callsign":"PROXY"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	// Read back through the query endpoint: same entries, same order.
	req := httptest.NewRequest("GET", "/api/users/allowed-roles?email=c@x.com&mission=AZero", nil)
	getRec := httptest.NewRecorder()
	h.ServeAllowedRoles(getRec, req)
	if getRec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", getRec.Code)
	}

	var roles []models.RoleDef
	if err := json.Unmarshal(getRec.Body.Bytes(), &roles); err != nil {
		t.Fatal(err)
	}
	want := []string{"SYS", "IT", "PROXY"}
	if len(roles) != len(want) {
		t.Fatalf("roles: got %d, want %d", len(roles), len(want))
	}
	for i, cs := range want {
		if roles[i].Callsign != cs {
			t.Errorf("roles[%d]: got %q, want %q", i, roles[i].Callsign, cs)
		}
	}
}

func TestSetAllowedRoles_Errors(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vip := testutil.Role("Observer", "VIP")
	fixtures.CreateUser(ctx, "a@x.com", "A", testutil.MissionEntry("AZero", vip, vip))

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing roles", `{"email":"a@x.com","mission":"AZero"}`, http.StatusBadRequest},
		{"empty roles", `{"email":"a@x.com","mission":"AZero","roles":[]}`, http.StatusBadRequest},
		{"unknown user", `{"email":"ghost@x.com","mission":"AZero","roles":[{"name":"Observer","callsign":"VIP"}]}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := putJSON(t, h.ServeSetAllowedRoles, "/api/users/allowed-roles", tt.body)
			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
