package service

import (
	"fmt"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/model"
	"github.com/gayaldassanayake/portfolio-manager/internal/performance"
	"github.com/gayaldassanayake/portfolio-manager/internal/repository"
)

// History window bounds for the days query parameter.
const (
	DefaultHistoryDays = 365
	MaxHistoryDays     = 3650
)

// PortfolioService loads transaction and price snapshots and runs the
// performance engine over them. All aggregation is computed on demand;
// nothing derived is persisted.
type PortfolioService struct {
	transactionRepo *repository.TransactionRepository
	priceRepo       *repository.PriceRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependencies.
func NewPortfolioService(
	transactionRepo *repository.TransactionRepository,
	priceRepo *repository.PriceRepository,
) *PortfolioService {
	return &PortfolioService{
		transactionRepo: transactionRepo,
		priceRepo:       priceRepo,
	}
}

// GetPerformance computes the full performance bundle over the trailing
// window of days: summary, metric set, and daily value history.
func (s *PortfolioService) GetPerformance(days int) (model.PortfolioPerformance, error) {
	txnsByTrust, err := s.transactionRepo.GetTransactionsByTrust()
	if err != nil {
		return model.PortfolioPerformance{}, err
	}
	pricesByTrust, err := s.priceRepo.GetPricesByTrust()
	if err != nil {
		return model.PortfolioPerformance{}, err
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	perf, err := performance.ComputePerformance(txnsByTrust, pricesByTrust, start, end, end)
	if err != nil {
		return model.PortfolioPerformance{}, fmt.Errorf("failed to compute performance: %w", err)
	}
	roundSummary(&perf.Summary)
	return perf, nil
}

// GetSummary computes the headline portfolio figures over the full
// recorded history.
func (s *PortfolioService) GetSummary() (model.PortfolioSummary, error) {
	perf, err := s.GetPerformance(MaxHistoryDays)
	if err != nil {
		return model.PortfolioSummary{}, err
	}
	return perf.Summary, nil
}

// GetHistory computes the daily value series over the trailing window.
func (s *PortfolioService) GetHistory(days int) ([]model.PortfolioHistoryPoint, error) {
	perf, err := s.GetPerformance(days)
	if err != nil {
		return nil, err
	}
	return perf.History, nil
}

// GetMetrics computes the metric set over the trailing window.
func (s *PortfolioService) GetMetrics(days int) (model.PerformanceMetrics, error) {
	perf, err := s.GetPerformance(days)
	if err != nil {
		return model.PerformanceMetrics{}, err
	}
	return perf.Metrics, nil
}

// roundSummary rounds monetary summary figures for presentation. Metric
// ratios stay at full precision.
func roundSummary(s *model.PortfolioSummary) {
	s.TotalInvested = round(s.TotalInvested)
	s.TotalWithdrawn = round(s.TotalWithdrawn)
	s.CurrentValue = round(s.CurrentValue)
	s.TotalGainLoss = round(s.TotalGainLoss)
}
