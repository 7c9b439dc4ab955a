// Package response renders the API's JSON responses, including the
// structured error shape shared by every endpoint.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error body returned by every failing endpoint.
// Details is optional context: a validation field map, an underlying
// error string, or nil.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status code. A nil
// data value writes only the status, which is what 204 responses need.
// Encoding errors are logged, not surfaced: the status line is already
// on the wire.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes an ErrorResponse with the given status code.
func RespondError(w http.ResponseWriter, status int, message string, details any) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
