package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/api/response"
	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/service"
	"github.com/gayaldassanayake/portfolio-manager/internal/validation"
	"github.com/go-chi/chi/v5"
)

// PriceHandler handles HTTP requests for price endpoints.
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependency.
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// PricesPerTrust handles GET requests to retrieve a unit trust's price
// history, optionally bounded by startDate/endDate query parameters.
//
// Endpoint: GET /api/price/unit-trust/{uuid}?startDate=&endDate=
// Response: 200 OK with array of PriceResponse, oldest first
// Error: 400 Bad Request if a date parameter is malformed
// Error: 404 Not Found if the unit trust does not exist
func (h *PriceHandler) PricesPerTrust(w http.ResponseWriter, r *http.Request) {
	unitTrustID := chi.URLParam(r, "uuid")

	startDate, endDate, err := parseDateRangeParams(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date parameter", err.Error())
		return
	}

	prices, err := h.priceService.GetPrices(unitTrustID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnitTrustNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUnitTrustNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrInvalidDateRange):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePrices.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, prices)
}

// CreatePrice handles POST requests to record a manually entered price.
//
// Endpoint: POST /api/price
// Request Body: CreatePriceRequest (unitTrustId, date, price)
// Response: 201 Created with PriceResponse
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the unit trust does not exist
// Error: 409 Conflict if a price already exists for that date
func (h *PriceHandler) CreatePrice(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePriceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePrice(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	price, err := h.priceService.CreatePrice(req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnitTrustNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUnitTrustNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrDuplicatePrice):
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicatePrice.Error(), req.Date)
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create price", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, price)
}

// BulkCreatePrices handles POST requests to import a batch of prices
// for one unit trust. Dates already recorded are skipped.
//
// Endpoint: POST /api/price/bulk
// Request Body: BulkCreatePricesRequest (unitTrustId, prices)
// Response: 200 OK with BulkCreateResult (received, inserted)
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the unit trust does not exist
func (h *PriceHandler) BulkCreatePrices(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.BulkCreatePricesRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateBulkCreatePrices(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.priceService.BulkCreatePrices(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnitTrustNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUnitTrustNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to import prices", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// UpdatePrice handles PUT requests to correct an existing price record.
//
// Endpoint: PUT /api/price/{uuid}
// Request Body: UpdatePriceRequest (price)
// Response: 200 OK with the updated PriceResponse
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the price record does not exist
func (h *PriceHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePriceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdatePrice(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	price, err := h.priceService.UpdatePrice(id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPriceNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPriceNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update price", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, price)
}

// DeletePrice handles DELETE requests to remove a price record.
//
// Endpoint: DELETE /api/price/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the price record does not exist
func (h *PriceHandler) DeletePrice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	if err := h.priceService.DeletePrice(id); err != nil {
		if errors.Is(err, apperrors.ErrPriceNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPriceNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete price", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// FetchPrices handles POST requests to pull historical prices for one
// unit trust from its configured provider.
//
// Endpoint: POST /api/price/fetch/{uuid}
// Request Body: FetchPricesRequest (startDate, endDate)
// Response: 200 OK with FetchResult
// Error: 400 Bad Request if validation fails or the trust has no provider
// Error: 404 Not Found if the unit trust does not exist
// Error: 502 Bad Gateway if the provider fetch fails
func (h *PriceHandler) FetchPrices(w http.ResponseWriter, r *http.Request) {
	unitTrustID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.FetchPricesRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateFetchPrices(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	result, err := h.priceService.FetchPrices(r.Context(), unitTrustID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnitTrustNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUnitTrustNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrProviderNotFound):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrProviderNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrFailedToFetchPrices):
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToFetchPrices.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to fetch prices", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// RefreshPrices handles POST requests to refresh the trailing week of
// prices for every provider-backed unit trust.
//
// Endpoint: POST /api/price/refresh
// Response: 200 OK with array of FetchResult, one per trust
// Error: 500 Internal Server Error if the batch cannot run at all
func (h *PriceHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	results, err := h.priceService.RefreshAllPrices(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh prices", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, results)
}
