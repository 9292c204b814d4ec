// Package httpjson writes JSON API responses with the service's error
// contract: 4xx responses carry a short machine-readable reason, 5xx
// responses carry a generic message plus an optional diagnostic detail
// that is only populated in development mode.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// BadRequest reports a missing or malformed request parameter.
func BadRequest(w http.ResponseWriter, reason string) {
	Write(w, http.StatusBadRequest, ErrorBody{Error: reason})
}

// NotFound reports an absent user or mission entry.
func NotFound(w http.ResponseWriter, reason string) {
	Write(w, http.StatusNotFound, ErrorBody{Error: reason})
}

// Internal reports a data-store or other internal failure. The underlying
// error text is included only when devMode is true; production callers get
// an opaque message.
func Internal(w http.ResponseWriter, err error, devMode bool) {
	body := ErrorBody{Error: "internal server error"}
	if devMode && err != nil {
		body.Details = err.Error()
	}
	Write(w, http.StatusInternalServerError, body)
}
