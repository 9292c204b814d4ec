// internal/app/features/clock/handler.go
package clock

import (
	"net/http"

	"github.com/Outlyer-Space/quantum/internal/app/system/httpjson"
	"github.com/Outlyer-Space/quantum/internal/app/system/missionclock"
	"go.uber.org/zap"
)

// Handler serves the mission clock used by the console's UTC display.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeTime handles GET /api/time.
//
// Response:
//
//	{ "today": "...", "year": 2026, "days": "241", "hours": "09",
//	  "minutes": "03", "seconds": "07", "utc": "241.09:03:07 UTC" }
func (h *Handler) ServeTime(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, missionclock.Now())
}
