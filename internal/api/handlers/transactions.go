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

// TransactionHandler handles HTTP requests for transaction endpoints.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// AllTransactions handles GET requests to retrieve all transactions
// across every unit trust, optionally bounded by startDate/endDate
// query parameters.
//
// Endpoint: GET /api/transaction?startDate=&endDate=
// Response: 200 OK with array of TransactionResponse in replay order
// Error: 400 Bad Request if a date parameter is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) AllTransactions(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, err := parseDateRangeParams(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date parameter", err.Error())
		return
	}

	transactions, err := h.transactionService.GetTransactions("", startDate, endDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// TransactionsPerTrust handles GET requests to retrieve all transactions
// for one unit trust.
//
// Endpoint: GET /api/transaction/unit-trust/{uuid}?startDate=&endDate=
// Response: 200 OK with array of TransactionResponse in replay order
// Error: 400 Bad Request if a date parameter is malformed
// Error: 404 Not Found if the unit trust does not exist
func (h *TransactionHandler) TransactionsPerTrust(w http.ResponseWriter, r *http.Request) {
	unitTrustID := chi.URLParam(r, "uuid")

	startDate, endDate, err := parseDateRangeParams(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date parameter", err.Error())
		return
	}

	transactions, err := h.transactionService.GetTransactions(unitTrustID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnitTrustNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUnitTrustNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrInvalidDateRange):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /api/transaction/{uuid}
// Response: 200 OK with TransactionResponse
// Error: 404 Not Found if the transaction does not exist
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to record a buy or sell.
//
// Endpoint: POST /api/transaction
// Request Body: CreateTransactionRequest (unitTrustId, type, units, pricePerUnit, date, notes)
// Response: 201 Created with TransactionResponse
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the unit trust does not exist
// Error: 409 Conflict if a sell exceeds the units held
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnitTrustNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUnitTrustNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrInsufficientUnits):
			response.RespondError(w, http.StatusConflict, apperrors.ErrInsufficientUnits.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// UpdateTransaction handles PUT requests to update an existing
// transaction. The whole ledger is re-validated with the modified
// record in place.
//
// Endpoint: PUT /api/transaction/{uuid}
// Request Body: UpdateTransactionRequest (all fields optional)
// Response: 200 OK with the updated TransactionResponse
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the transaction does not exist
// Error: 409 Conflict if the change would drive the position negative
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTransactionNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrInsufficientUnits):
			response.RespondError(w, http.StatusConflict, apperrors.ErrInsufficientUnits.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update transaction", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
//
// Endpoint: DELETE /api/transaction/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the transaction does not exist
// Error: 409 Conflict if removal would leave the remaining ledger oversold
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTransactionNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrInsufficientUnits):
			response.RespondError(w, http.StatusConflict, apperrors.ErrInsufficientUnits.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
