package handlers

import (
	"net/http"

	"github.com/gayaldassanayake/portfolio-manager/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// VersionResponse represents the version check response
type VersionResponse struct {
	AppVersion string `json:"appVersion"`
}

// Health checks the health of the system and database connectivity
//
// Endpoint: GET /api/system/health
// Response: 200 OK when healthy, 503 Service Unavailable otherwise
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// Version handles GET requests to retrieve the application version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionResponse
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, VersionResponse{
		AppVersion: h.systemService.CheckVersion(),
	})
}
