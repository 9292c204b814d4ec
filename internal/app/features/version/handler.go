// internal/app/features/version/handler.go
package version

import (
	"net/http"
	"runtime/debug"

	"github.com/Outlyer-Space/quantum/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Info is the build/version metadata served to the about dialog.
type Info struct {
	Version string `json:"version"`
	Branch  string `json:"branch"`
	Commit  string `json:"commit"`
}

// Handler serves version metadata. The values are fixed at startup.
type Handler struct {
	Info Info
	Log  *zap.Logger
}

// NewHandler constructs a version Handler. Empty fields fall back to the
// binary's embedded VCS info where available, else "unknown".
func NewHandler(info Info, logger *zap.Logger) *Handler {
	if info.Commit == "" {
		info.Commit = vcsRevision()
	}
	if info.Version == "" {
		info.Version = "unknown"
	}
	if info.Branch == "" {
		info.Branch = "unknown"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return &Handler{Info: info, Log: logger}
}

// ServeVersion handles GET /api/version.
//
// Response: { "version": "...", "branch": "...", "commit": "..." }
func (h *Handler) ServeVersion(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.Info)
}

// vcsRevision returns the vcs.revision build setting stamped into the
// binary, if any.
func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
