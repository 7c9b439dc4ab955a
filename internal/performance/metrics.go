package performance

import (
	"math"
	"sort"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// tradingDaysPerYear annualizes daily return statistics.
const tradingDaysPerYear = 252

// ComputeMetrics derives the full metric set from a daily value series,
// the complete transaction list, and the per-trust holdings. Metrics
// whose inputs are insufficient come back nil rather than zero or NaN:
// a nil volatility means "not computable", a zero would mean "riskless".
func ComputeMetrics(series []model.PortfolioHistoryPoint, transactions []model.Transaction, holdings map[string]Holding) model.PerformanceMetrics {
	var m model.PerformanceMetrics

	totalInvested, totalWithdrawn := cashTotals(transactions)
	currentValue := 0.0
	if len(series) > 0 {
		currentValue = series[len(series)-1].Value
	}

	if totalInvested > 0 {
		net := (currentValue + totalWithdrawn - totalInvested) / totalInvested
		m.NetReturn = &net
	}

	costBasis := 0.0
	for _, h := range holdings {
		costBasis += h.TotalCost
	}
	if costBasis > 0 {
		roi := (currentValue - costBasis) / costBasis
		m.UnrealizedRoi = &roi
	}

	returns := dailyReturns(series)
	if len(returns) > 0 {
		mean := meanOf(returns)
		m.DailyReturn = &mean

		best, worst := returns[0], returns[0]
		for _, r := range returns[1:] {
			if r > best {
				best = r
			}
			if r < worst {
				worst = r
			}
		}
		m.BestDay = &best
		m.WorstDay = &worst

		if len(returns) >= 2 {
			sd := stdevOf(returns, mean)
			vol := sd * math.Sqrt(tradingDaysPerYear)
			m.Volatility = &vol
			if sd > 1e-12 {
				sharpe := mean / sd * math.Sqrt(tradingDaysPerYear)
				m.SharpeRatio = &sharpe
			}
		}
	}

	m.MaxDrawdown = maxDrawdown(series)
	m.TwrAnnualized = timeWeightedReturn(series, transactions)
	m.MwrAnnualized = moneyWeightedReturn(series, transactions, currentValue)
	return m
}

func cashTotals(transactions []model.Transaction) (invested, withdrawn float64) {
	for _, tx := range transactions {
		amount := tx.Units * tx.PricePerUnit
		switch tx.Type {
		case model.TransactionBuy:
			invested += amount
		case model.TransactionSell:
			withdrawn += amount
		}
	}
	return invested, withdrawn
}

// dailyReturns computes simple returns between consecutive series points,
// skipping any pair whose opening value is zero.
func dailyReturns(series []model.PortfolioHistoryPoint) []float64 {
	returns := make([]float64, 0, len(series))
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Value
		if prev <= 0 {
			continue
		}
		returns = append(returns, (series[i].Value-prev)/prev)
	}
	return returns
}

func meanOf(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdevOf is the sample standard deviation (n-1 denominator).
func stdevOf(xs []float64, mean float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// maxDrawdown is the largest peak-to-trough decline over the series,
// expressed as a non-positive fraction. Zero when the series never
// declines or holds fewer than two points.
func maxDrawdown(series []model.PortfolioHistoryPoint) float64 {
	peak := 0.0
	worst := 0.0
	for _, p := range series {
		if p.Value > peak {
			peak = p.Value
		}
		if peak > 0 {
			dd := (p.Value - peak) / peak
			if dd < worst {
				worst = dd
			}
		}
	}
	return worst
}

// timeWeightedReturn links sub-period growth ratios between external cash
// flow dates, then annualizes over the series span. External flows reset
// the measurement so deposits and withdrawals do not distort the result.
func timeWeightedReturn(series []model.PortfolioHistoryPoint, transactions []model.Transaction) *float64 {
	if len(series) < 2 {
		return nil
	}

	valueByDate := make(map[string]float64, len(series))
	for _, p := range series {
		valueByDate[p.Date] = p.Value
	}

	flowByDate := make(map[string]float64)
	for _, tx := range transactions {
		date := tx.Date.Format("2006-01-02")
		amount := tx.Units * tx.PricePerUnit
		if tx.Type == model.TransactionSell {
			amount = -amount
		}
		flowByDate[date] += amount
	}
	flowDates := make([]string, 0, len(flowByDate))
	for date := range flowByDate {
		if _, ok := valueByDate[date]; ok && date > series[0].Date && date <= series[len(series)-1].Date {
			flowDates = append(flowDates, date)
		}
	}
	sort.Strings(flowDates)

	// Boundaries are the series endpoints plus every in-range flow date.
	boundaries := append([]string{series[0].Date}, flowDates...)
	boundaries = append(boundaries, series[len(series)-1].Date)

	growth := 1.0
	linked := false
	for i := 1; i < len(boundaries); i++ {
		startDate, endDate := boundaries[i-1], boundaries[i]
		if startDate >= endDate {
			continue
		}
		// A series value already includes any flow dated that day, so
		// the sub-period opens at V(start) and closes at the value just
		// before the closing flow lands.
		opening := valueByDate[startDate]
		closing := valueByDate[endDate] - flowByDate[endDate]
		if opening <= 0 {
			continue
		}
		growth *= closing / opening
		linked = true
	}
	if !linked {
		return nil
	}

	first, err1 := time.Parse("2006-01-02", series[0].Date)
	last, err2 := time.Parse("2006-01-02", series[len(series)-1].Date)
	if err1 != nil || err2 != nil {
		return nil
	}
	days := last.Sub(first).Hours() / 24
	if days <= 0 {
		return nil
	}
	annualized := math.Pow(growth, 365/days) - 1
	return &annualized
}

// moneyWeightedReturn is the annualized internal rate of return over all
// dated cash flows plus the terminal market value. A liquidated portfolio
// has no terminal flow: the IRR is solved from the buys and sells alone.
// Nil when the solver cannot bracket a root, which happens for degenerate
// flow patterns.
func moneyWeightedReturn(series []model.PortfolioHistoryPoint, transactions []model.Transaction, currentValue float64) *float64 {
	flows := make([]CashFlow, 0, len(transactions)+1)
	for _, tx := range transactions {
		amount := tx.Units * tx.PricePerUnit
		if tx.Type == model.TransactionBuy {
			amount = -amount
		}
		flows = append(flows, CashFlow{Date: midnight(tx.Date), Amount: amount})
	}
	if len(flows) == 0 || len(series) == 0 {
		return nil
	}

	if currentValue > 0 {
		terminal, err := time.Parse("2006-01-02", series[len(series)-1].Date)
		if err != nil {
			return nil
		}
		for _, cf := range flows {
			if !cf.Date.Before(terminal) {
				terminal = cf.Date.AddDate(0, 0, 1)
			}
		}
		flows = append(flows, CashFlow{Date: terminal, Amount: currentValue})
	}

	// Bisection needs both money in and money out to bracket a root.
	hasOutflow, hasInflow := false, false
	for _, cf := range flows {
		if cf.Amount < 0 {
			hasOutflow = true
		}
		if cf.Amount > 0 {
			hasInflow = true
		}
	}
	if !hasOutflow || !hasInflow {
		return nil
	}

	rate, err := SolveRate(flows)
	if err != nil {
		return nil
	}
	return &rate
}
