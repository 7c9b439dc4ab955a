package performance

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
)

// CashFlow is a dated money movement from the investor's point of view:
// negative for money paid in, positive for money received.
type CashFlow struct {
	Date   time.Time
	Amount float64
}

const (
	irrLowerBound   = -0.99
	irrUpperBound   = 10.0
	irrBracketLimit = 1e6
	irrTolerance    = 1e-7
	irrMaxIter      = 200
)

// SolveRate finds the annualized rate r for which the net present value
// of flows is zero, using bisection over [irrLowerBound, irrUpperBound].
// Flows are discounted on an actual/365 day count from the earliest flow
// date. apperrors.ErrNoConvergence is returned when no root is bracketed
// or the iteration cap is reached.
func SolveRate(flows []CashFlow) (float64, error) {
	if len(flows) < 2 {
		return 0, fmt.Errorf("need at least two cash flows: %w", apperrors.ErrNoConvergence)
	}
	ordered := make([]CashFlow, len(flows))
	copy(ordered, flows)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	lo, hi := irrLowerBound, irrUpperBound
	npvLo := netPresentValue(ordered, lo)
	npvHi := netPresentValue(ordered, hi)
	// Short holding periods annualize to enormous rates, so widen the
	// upper bound until a root is bracketed or the limit is hit.
	for npvLo*npvHi > 0 && hi < irrBracketLimit {
		hi *= 2
		npvHi = netPresentValue(ordered, hi)
	}
	if npvLo*npvHi > 0 {
		return 0, fmt.Errorf("no sign change over rate bracket [%.2f, %.2f]: %w",
			lo, hi, apperrors.ErrNoConvergence)
	}

	for i := 0; i < irrMaxIter; i++ {
		mid := (lo + hi) / 2
		npvMid := netPresentValue(ordered, mid)
		if math.Abs(npvMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid, nil
		}
		if npvLo*npvMid < 0 {
			hi = mid
		} else {
			lo = mid
			npvLo = npvMid
		}
	}
	return 0, fmt.Errorf("bisection hit iteration cap: %w", apperrors.ErrNoConvergence)
}

func netPresentValue(flows []CashFlow, rate float64) float64 {
	t0 := flows[0].Date
	npv := 0.0
	for _, cf := range flows {
		years := cf.Date.Sub(t0).Hours() / 24 / 365
		npv += cf.Amount / math.Pow(1+rate, years)
	}
	return npv
}
