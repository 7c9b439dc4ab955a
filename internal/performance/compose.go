package performance

import (
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// ComposeSummary folds holdings, the value series, and the full
// transaction list into the headline portfolio figures.
func ComposeSummary(holdings map[string]Holding, series []model.PortfolioHistoryPoint, transactions []model.Transaction) model.PortfolioSummary {
	var s model.PortfolioSummary
	s.TotalInvested, s.TotalWithdrawn = cashTotals(transactions)
	if len(series) > 0 {
		s.CurrentValue = series[len(series)-1].Value
	}
	s.TotalGainLoss = s.CurrentValue + s.TotalWithdrawn - s.TotalInvested
	if s.TotalInvested > 0 {
		roi := s.TotalGainLoss / s.TotalInvested * 100
		s.RoiPercentage = &roi
	}
	for _, h := range holdings {
		if h.UnitsHeld > unitEpsilon {
			s.TotalUnits += h.UnitsHeld
			s.HoldingCount++
		}
	}
	return s
}

// ComputePerformance runs the full pipeline: per-trust holdings, the
// daily value series clipped to [start, end], the summary, and the
// metric set. It is the single entry point the portfolio service uses.
func ComputePerformance(txnsByTrust map[string][]model.Transaction, pricesByTrust map[string][]model.Price, start, end, asOf time.Time) (model.PortfolioPerformance, error) {
	holdings := make(map[string]Holding, len(txnsByTrust))
	all := make([]model.Transaction, 0)
	for id, txns := range txnsByTrust {
		h, err := ComputeHolding(txns, asOf)
		if err != nil {
			return model.PortfolioPerformance{}, err
		}
		holdings[id] = h
		all = append(all, txns...)
	}

	series, err := BuildValueSeries(txnsByTrust, pricesByTrust, start, end)
	if err != nil {
		return model.PortfolioPerformance{}, err
	}

	return model.PortfolioPerformance{
		Summary: ComposeSummary(holdings, series, all),
		Metrics: ComputeMetrics(series, all, holdings),
		History: series,
	}, nil
}
