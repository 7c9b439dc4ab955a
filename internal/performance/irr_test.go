package performance

import (
	"errors"
	"math"
	"testing"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
)

// WHY: the bisection solver backs the money-weighted return; known
// closed-form cases pin its accuracy, and degenerate flow patterns must
// fail loudly instead of returning a junk rate.
func TestSolveRate(t *testing.T) {
	t.Run("exact one year doubling", func(t *testing.T) {
		flows := []CashFlow{
			{Date: day(0), Amount: -1000},
			{Date: day(365), Amount: 2000},
		}

		rate, err := SolveRate(flows)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(rate-1.0) > 1e-5 {
			t.Errorf("rate = %v, want 1.0", rate)
		}
	})

	t.Run("zero rate for break-even flows", func(t *testing.T) {
		flows := []CashFlow{
			{Date: day(0), Amount: -1000},
			{Date: day(182), Amount: -1000},
			{Date: day(365), Amount: 2000},
		}

		rate, err := SolveRate(flows)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(rate) > 1e-5 {
			t.Errorf("rate = %v, want 0", rate)
		}
	})

	t.Run("negative rate for a losing position", func(t *testing.T) {
		flows := []CashFlow{
			{Date: day(0), Amount: -1000},
			{Date: day(365), Amount: 800},
		}

		rate, err := SolveRate(flows)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(rate-(-0.2)) > 1e-5 {
			t.Errorf("rate = %v, want -0.2", rate)
		}
	})

	t.Run("short periods bracket beyond the initial bound", func(t *testing.T) {
		// 10% in ten days is roughly 3100% annualized.
		flows := []CashFlow{
			{Date: day(0), Amount: -1000},
			{Date: day(10), Amount: 1100},
		}

		rate, err := SolveRate(flows)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := math.Pow(1.1, 365.0/10) - 1
		if math.Abs(rate-want)/want > 1e-3 {
			t.Errorf("rate = %v, want %v", rate, want)
		}
	})

	t.Run("unsorted flows are ordered by date", func(t *testing.T) {
		flows := []CashFlow{
			{Date: day(365), Amount: 2000},
			{Date: day(0), Amount: -1000},
		}

		rate, err := SolveRate(flows)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(rate-1.0) > 1e-5 {
			t.Errorf("rate = %v, want 1.0", rate)
		}
	})

	t.Run("single flow cannot converge", func(t *testing.T) {
		_, err := SolveRate([]CashFlow{{Date: day(0), Amount: -1000}})
		if !errors.Is(err, apperrors.ErrNoConvergence) {
			t.Errorf("error = %v, want ErrNoConvergence", err)
		}
	})

	t.Run("same-signed flows cannot converge", func(t *testing.T) {
		flows := []CashFlow{
			{Date: day(0), Amount: -1000},
			{Date: day(365), Amount: -1000},
		}

		_, err := SolveRate(flows)

		if !errors.Is(err, apperrors.ErrNoConvergence) {
			t.Errorf("error = %v, want ErrNoConvergence", err)
		}
	})
}
