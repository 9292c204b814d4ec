package clock_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/Outlyer-Space/quantum/internal/app/features/clock"
	"github.com/Outlyer-Space/quantum/internal/app/system/missionclock"
	"go.uber.org/zap"
)

func TestServeTime(t *testing.T) {
	h := clock.NewHandler(zap.NewNop())

	req := httptest.NewRequest("GET", "/api/time", nil)
	rec := httptest.NewRecorder()
	h.ServeTime(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var reading missionclock.Reading
	if err := json.Unmarshal(rec.Body.Bytes(), &reading); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	clockRe := regexp.MustCompile(`^\d{3}\.\d{2}:\d{2}:\d{2} UTC$`)
	if !clockRe.MatchString(reading.UTC) {
		t.Errorf("utc: got %q, want DDD.HH:MM:SS UTC", reading.UTC)
	}
	if reading.Year < 2026 {
		t.Errorf("year: got %d", reading.Year)
	}
}
