// Package handlers contains the HTTP layer adapters: each handler
// parses a request, delegates to its service, and renders the result.
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// parseJSON decodes a request body into the given request type,
// rejecting unknown fields so typos surface as 400s instead of silently
// dropped values.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}
	return req, nil
}

// parseDateRangeParams reads the optional startDate and endDate query
// parameters as YYYY-MM-DD. Absent parameters come back as zero times.
func parseDateRangeParams(r *http.Request) (startDate, endDate time.Time, err error) {
	if raw := r.URL.Query().Get("startDate"); raw != "" {
		if startDate, err = time.Parse("2006-01-02", raw); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid startDate: %w", err)
		}
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		if endDate, err = time.Parse("2006-01-02", raw); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid endDate: %w", err)
		}
	}
	return startDate, endDate, nil
}

// parseDaysParam reads the days query parameter, clamping it to
// [1, maxDays] and falling back to defaultDays when absent or invalid.
func parseDaysParam(r *http.Request, defaultDays, maxDays int) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return defaultDays
	}
	if days > maxDays {
		return maxDays
	}
	return days
}
