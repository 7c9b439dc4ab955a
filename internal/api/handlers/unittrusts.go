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

// UnitTrustHandler handles HTTP requests for unit trust endpoints.
type UnitTrustHandler struct {
	unitTrustService *service.UnitTrustService
}

// NewUnitTrustHandler creates a new UnitTrustHandler with the provided service dependency.
func NewUnitTrustHandler(unitTrustService *service.UnitTrustService) *UnitTrustHandler {
	return &UnitTrustHandler{
		unitTrustService: unitTrustService,
	}
}

// UnitTrusts handles GET requests to retrieve all unit trusts with
// derived holding statistics.
//
// Endpoint: GET /api/unit-trust
// Response: 200 OK with array of UnitTrustStats
// Error: 500 Internal Server Error if retrieval fails
func (h *UnitTrustHandler) UnitTrusts(w http.ResponseWriter, _ *http.Request) {
	trusts, err := h.unitTrustService.GetUnitTrusts()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveUnitTrusts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trusts)
}

// GetUnitTrust handles GET requests to retrieve a single unit trust by ID.
//
// Endpoint: GET /api/unit-trust/{uuid}
// Response: 200 OK with UnitTrust
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the unit trust does not exist
func (h *UnitTrustHandler) GetUnitTrust(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	ut, err := h.unitTrustService.GetUnitTrust(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnitTrustNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUnitTrustNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveUnitTrusts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, ut)
}

// CreateUnitTrust handles POST requests to create a new unit trust.
//
// Endpoint: POST /api/unit-trust
// Request Body: CreateUnitTrustRequest (name, symbol, description, provider)
// Response: 201 Created with UnitTrust
// Error: 400 Bad Request if validation fails
// Error: 409 Conflict if the symbol is already in use
func (h *UnitTrustHandler) CreateUnitTrust(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateUnitTrustRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateUnitTrust(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	ut, err := h.unitTrustService.CreateUnitTrust(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateSymbol) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateSymbol.Error(), req.Symbol)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create unit trust", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, ut)
}

// UpdateUnitTrust handles PUT requests to update an existing unit trust.
//
// Endpoint: PUT /api/unit-trust/{uuid}
// Request Body: UpdateUnitTrustRequest (all fields optional)
// Response: 200 OK with the updated UnitTrust
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the unit trust does not exist
// Error: 409 Conflict if the new symbol is already in use
func (h *UnitTrustHandler) UpdateUnitTrust(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateUnitTrustRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateUnitTrust(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	ut, err := h.unitTrustService.UpdateUnitTrust(id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnitTrustNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUnitTrustNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrDuplicateSymbol):
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateSymbol.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update unit trust", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, ut)
}

// DeleteUnitTrust handles DELETE requests to remove a unit trust and
// its dependent prices and transactions.
//
// Endpoint: DELETE /api/unit-trust/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the unit trust does not exist
func (h *UnitTrustHandler) DeleteUnitTrust(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	if err := h.unitTrustService.DeleteUnitTrust(id); err != nil {
		if errors.Is(err, apperrors.ErrUnitTrustNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUnitTrustNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete unit trust", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
