package model

// PortfolioSummary represents the aggregate state of the portfolio: cash
// contributed, cash taken out, the current market value and the net result.
// RoiPercentage is nil when no capital has been invested.
type PortfolioSummary struct {
	TotalInvested  float64  `json:"totalInvested"`
	TotalWithdrawn float64  `json:"totalWithdrawn"`
	CurrentValue   float64  `json:"currentValue"`
	TotalGainLoss  float64  `json:"totalGainLoss"`
	RoiPercentage  *float64 `json:"roiPercentage"`
	TotalUnits     float64  `json:"totalUnits"`
	HoldingCount   int      `json:"holdingCount"`
}

// PerformanceMetrics represents risk and return metrics derived from the
// portfolio value series and its cash flows. All ratio metrics are decimal
// fractions (0.06 = 6%). A nil field means the metric could not be computed
// from the available data; one missing metric never suppresses the others.
type PerformanceMetrics struct {
	DailyReturn   *float64 `json:"dailyReturn"`
	Volatility    *float64 `json:"volatility"`
	MaxDrawdown   float64  `json:"maxDrawdown"`
	SharpeRatio   *float64 `json:"sharpeRatio"`
	NetReturn     *float64 `json:"netReturn"`
	UnrealizedRoi *float64 `json:"unrealizedRoi"`
	TwrAnnualized *float64 `json:"twrAnnualized"`
	MwrAnnualized *float64 `json:"mwrAnnualized"`
	BestDay       *float64 `json:"bestDay"`
	WorstDay      *float64 `json:"worstDay"`
}

// PortfolioHistoryPoint is the total portfolio value for a single date.
type PortfolioHistoryPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// PortfolioPerformance bundles summary, metrics and the value series into
// the single response shape served by /api/portfolio/performance.
type PortfolioPerformance struct {
	Summary PortfolioSummary        `json:"summary"`
	Metrics PerformanceMetrics      `json:"metrics"`
	History []PortfolioHistoryPoint `json:"history"`
}
