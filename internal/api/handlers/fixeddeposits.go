package handlers

import (
	"errors"
	"net/http"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/api/response"
	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/service"
	"github.com/gayaldassanayake/portfolio-manager/internal/validation"
	"github.com/go-chi/chi/v5"
)

// FixedDepositHandler handles HTTP requests for fixed deposit endpoints.
type FixedDepositHandler struct {
	fixedDepositService *service.FixedDepositService
}

// NewFixedDepositHandler creates a new FixedDepositHandler with the provided service dependency.
func NewFixedDepositHandler(fixedDepositService *service.FixedDepositService) *FixedDepositHandler {
	return &FixedDepositHandler{
		fixedDepositService: fixedDepositService,
	}
}

// FixedDeposits handles GET requests to retrieve fixed deposits, each
// enriched with its current value and accrued interest, optionally
// filtered by maturity status and institution substring.
//
// Endpoint: GET /api/fixed-deposit?status=all|active|matured&institution=
// Response: 200 OK with array of FixedDepositWithValue ordered by maturity date
// Error: 400 Bad Request if the status value is unknown
// Error: 500 Internal Server Error if retrieval fails
func (h *FixedDepositHandler) FixedDeposits(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch status {
	case "", service.DepositStatusAll, service.DepositStatusActive, service.DepositStatusMatured:
	default:
		response.RespondError(w, http.StatusBadRequest, "invalid status filter", status)
		return
	}

	deposits, err := h.fixedDepositService.GetFixedDeposits(status, r.URL.Query().Get("institution"))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFixedDeposits.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, deposits)
}

// GetFixedDeposit handles GET requests to retrieve a single fixed deposit by ID.
//
// Endpoint: GET /api/fixed-deposit/{uuid}
// Response: 200 OK with FixedDepositWithValue
// Error: 404 Not Found if the fixed deposit does not exist
func (h *FixedDepositHandler) GetFixedDeposit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	deposit, err := h.fixedDepositService.GetFixedDeposit(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFixedDepositNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFixedDepositNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFixedDeposits.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, deposit)
}

// CreateFixedDeposit handles POST requests to record a new fixed deposit.
//
// Endpoint: POST /api/fixed-deposit
// Request Body: CreateFixedDepositRequest
// Response: 201 Created with FixedDepositWithValue
// Error: 400 Bad Request if validation fails
func (h *FixedDepositHandler) CreateFixedDeposit(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateFixedDepositRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateFixedDeposit(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	deposit, err := h.fixedDepositService.CreateFixedDeposit(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create fixed deposit", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, deposit)
}

// UpdateFixedDeposit handles PUT requests to update an existing fixed
// deposit. When either date changes, the pair is re-checked so the
// maturity date stays after the start date.
//
// Endpoint: PUT /api/fixed-deposit/{uuid}
// Request Body: UpdateFixedDepositRequest (all fields optional)
// Response: 200 OK with the updated FixedDepositWithValue
// Error: 400 Bad Request if validation fails or the dates are out of order
// Error: 404 Not Found if the fixed deposit does not exist
func (h *FixedDepositHandler) UpdateFixedDeposit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateFixedDepositRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateFixedDeposit(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	deposit, err := h.fixedDepositService.UpdateFixedDeposit(id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrFixedDepositNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFixedDepositNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrInvalidDateRange):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), "maturityDate must be after startDate")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update fixed deposit", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, deposit)
}

// DeleteFixedDeposit handles DELETE requests to remove a fixed deposit.
// Notifications generated for it are removed with it.
//
// Endpoint: DELETE /api/fixed-deposit/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the fixed deposit does not exist
func (h *FixedDepositHandler) DeleteFixedDeposit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	if err := h.fixedDepositService.DeleteFixedDeposit(id); err != nil {
		if errors.Is(err, apperrors.ErrFixedDepositNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFixedDepositNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete fixed deposit", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// PreviewInterest handles POST requests to compute interest for a
// hypothetical deposit without persisting anything.
//
// Endpoint: POST /api/fixed-deposit/interest-preview
// Request Body: InterestPreviewRequest
// Response: 200 OK with InterestPreview
// Error: 400 Bad Request if validation fails
func (h *FixedDepositHandler) PreviewInterest(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.InterestPreviewRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateInterestPreview(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	preview, err := h.fixedDepositService.PreviewInterest(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to compute interest preview", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, preview)
}
