package service

import (
	"math"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// compoundingPeriods maps payout frequencies to compounding periods per
// year. At-maturity deposits compound once over the whole term.
var compoundingPeriods = map[string]float64{
	model.PayoutMonthly:    12,
	model.PayoutQuarterly:  4,
	model.PayoutAnnually:   1,
	model.PayoutAtMaturity: 1,
}

// CalculateInterest computes the interest earned on a deposit over the
// given number of days. The rate is an annual percentage. Simple
// interest accrues linearly; compound interest follows the payout
// frequency's compounding schedule.
func CalculateInterest(principal, annualRate float64, days int, frequency, method string) float64 {
	if days <= 0 || principal <= 0 || annualRate <= 0 {
		return 0
	}
	rate := annualRate / 100
	years := float64(days) / 365

	var interest float64
	if method == model.CalculationCompound {
		n := compoundingPeriods[frequency]
		if n == 0 {
			n = 1
		}
		interest = principal*math.Pow(1+rate/n, n*years) - principal
	} else {
		interest = principal * rate * years
	}
	return round(interest)
}

// PreviewInterest computes the full interest picture for deposit terms:
// the maturity figures over the whole term plus accrual as of the given
// date. Accrual is floored at the start date and capped at maturity.
func PreviewInterest(principal, annualRate float64, startDate, maturityDate time.Time, frequency, method string, asOf time.Time) model.InterestPreview {
	termDays := daysBetween(startDate, maturityDate)

	elapsed := daysBetween(startDate, asOf)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > termDays {
		elapsed = termDays
	}

	totalInterest := CalculateInterest(principal, annualRate, termDays, frequency, method)
	currentInterest := CalculateInterest(principal, annualRate, elapsed, frequency, method)

	return model.InterestPreview{
		TotalInterest:   totalInterest,
		MaturityValue:   round(principal + totalInterest),
		TermDays:        termDays,
		CurrentInterest: currentInterest,
		CurrentValue:    round(principal + currentInterest),
		DaysElapsed:     elapsed,
		DaysRemaining:   termDays - elapsed,
	}
}

func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
