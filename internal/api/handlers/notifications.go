package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/api/response"
	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/service"
	"github.com/go-chi/chi/v5"
)

// NotificationHandler handles HTTP requests for maturity notifications
// and notification settings.
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler with the provided service dependency.
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// Notifications handles GET requests to list notifications, newest
// first, optionally filtered by status. Pending notifications returned
// by this endpoint are marked displayed.
//
// Endpoint: GET /api/notification?status=pending
// Response: 200 OK with array of NotificationWithDeposit
// Error: 500 Internal Server Error if retrieval fails
func (h *NotificationHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	notifications, err := h.notificationService.GetNotifications(status)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveNotifications.Error(), err.Error())
		return
	}

	if err := h.notificationService.MarkDisplayed(); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveNotifications.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, notifications)
}

// GenerateNotifications handles POST requests to run a notification
// generation pass immediately, outside the scheduled run.
//
// Endpoint: POST /api/notification/generate
// Response: 200 OK with the number of notifications created
// Error: 500 Internal Server Error if generation fails
func (h *NotificationHandler) GenerateNotifications(w http.ResponseWriter, _ *http.Request) {
	created, err := h.notificationService.GenerateNotifications(time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to generate notifications", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]int{"created": created})
}

// DismissNotification handles PUT requests to dismiss a notification
// so it no longer appears in pending or displayed listings.
//
// Endpoint: PUT /api/notification/{uuid}/dismiss
// Response: 200 OK
// Error: 404 Not Found if the notification does not exist
func (h *NotificationHandler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	if err := h.notificationService.DismissNotification(id); err != nil {
		if errors.Is(err, apperrors.ErrNotificationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrNotificationNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to dismiss notification", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "dismissed"})
}

// GetSettings handles GET requests for the notification settings.
// Defaults are created on first access.
//
// Endpoint: GET /api/notification/settings
// Response: 200 OK with NotificationSetting
// Error: 500 Internal Server Error if retrieval fails
func (h *NotificationHandler) GetSettings(w http.ResponseWriter, _ *http.Request) {
	settings, err := h.notificationService.GetSettings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve notification settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT requests to change notification settings.
// Only the fields present in the body are changed.
//
// Endpoint: PUT /api/notification/settings
// Request Body: UpdateNotificationSettingsRequest (all fields optional)
// Response: 200 OK with the updated NotificationSetting
// Error: 400 Bad Request if the body cannot be parsed
func (h *NotificationHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateNotificationSettingsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	settings, err := h.notificationService.UpdateSettings(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update notification settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, settings)
}
