package middleware

import (
	"net/http"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/response"
	"github.com/gayaldassanayake/portfolio-manager/internal/validation"
	"github.com/go-chi/chi/v5"
)

// ValidateUUIDMiddleware validates that the uuid URL parameter is present
// and well formed before the handler runs. Returns 400 Bad Request
// otherwise, so handlers can assume a parseable ID.
func ValidateUUIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "uuid")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "valid UUID is required", "")
			return
		}

		if err := validation.ValidateUUID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
