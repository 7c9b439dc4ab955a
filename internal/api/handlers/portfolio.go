package handlers

import (
	"net/http"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/response"
	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/service"
)

// PortfolioHandler handles HTTP requests for the computed portfolio
// views: summary, history, metrics, and the combined performance bundle.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Summary handles GET requests for the headline portfolio figures over
// the full recorded history.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with PortfolioSummary
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	summary, err := h.portfolioService.GetSummary()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetPortfolioSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// History handles GET requests for the daily portfolio value series.
// The days query parameter bounds the trailing window (default 365,
// maximum 3650); out-of-range values fall back to the default.
//
// Endpoint: GET /api/portfolio/history?days=365
// Response: 200 OK with array of PortfolioHistoryPoint
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) History(w http.ResponseWriter, r *http.Request) {
	days := parseDaysParam(r, service.DefaultHistoryDays, service.MaxHistoryDays)

	history, err := h.portfolioService.GetHistory(days)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetPortfolioHistory.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}

// Metrics handles GET requests for the portfolio metric set over the
// trailing window. Metrics that cannot be computed from the available
// data are null rather than zero.
//
// Endpoint: GET /api/portfolio/metrics?days=365
// Response: 200 OK with PerformanceMetrics
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	days := parseDaysParam(r, service.DefaultHistoryDays, service.MaxHistoryDays)

	metrics, err := h.portfolioService.GetMetrics(days)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetPortfolioMetrics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, metrics)
}

// Performance handles GET requests for the combined bundle: summary,
// metric set, and value history in one response.
//
// Endpoint: GET /api/portfolio/performance?days=365
// Response: 200 OK with PortfolioPerformance
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) Performance(w http.ResponseWriter, r *http.Request) {
	days := parseDaysParam(r, service.DefaultHistoryDays, service.MaxHistoryDays)

	perf, err := h.portfolioService.GetPerformance(days)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetPortfolioPerformance.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, perf)
}
