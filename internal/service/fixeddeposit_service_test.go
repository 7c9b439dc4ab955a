package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
	"github.com/gayaldassanayake/portfolio-manager/internal/service"
	"github.com/gayaldassanayake/portfolio-manager/internal/testutil"
)

// TestFixedDepositService_GetFixedDeposits tests listing with the
// derived value enrichment.
func TestFixedDepositService_GetFixedDeposits(t *testing.T) {
	t.Run("enriches deposits with accrued interest", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFixedDepositService(t, db)

		// Active: started 100 days ago, matures in 265 days.
		testutil.NewFixedDeposit().
			WithStartDate(daysAgo(100)).
			WithMaturityDate(daysAgo(-265)).
			Build(t, db)

		deposits, err := svc.GetFixedDeposits("", "")
		if err != nil {
			t.Fatalf("GetFixedDeposits() returned unexpected error: %v", err)
		}

		if len(deposits) != 1 {
			t.Fatalf("Expected 1 deposit, got %d", len(deposits))
		}
		fd := deposits[0]
		if fd.IsMatured {
			t.Error("Expected deposit to still be active")
		}
		if fd.AccruedInterest <= 0 {
			t.Errorf("Expected positive accrued interest, got %v", fd.AccruedInterest)
		}
		if fd.CurrentValue != fd.PrincipalAmount+fd.AccruedInterest {
			t.Errorf("Expected current value %v, got %v",
				fd.PrincipalAmount+fd.AccruedInterest, fd.CurrentValue)
		}
		if fd.TermDays != 365 {
			t.Errorf("Expected 365 term days, got %d", fd.TermDays)
		}
	})

	t.Run("matured deposit is flagged and capped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFixedDepositService(t, db)

		testutil.NewFixedDeposit().
			WithStartDate(daysAgo(500)).
			WithMaturityDate(daysAgo(135)).
			Build(t, db)

		deposits, err := svc.GetFixedDeposits("", "")
		if err != nil {
			t.Fatalf("GetFixedDeposits() returned unexpected error: %v", err)
		}

		fd := deposits[0]
		if !fd.IsMatured {
			t.Error("Expected deposit to be matured")
		}
		if fd.DaysToMaturity > 0 {
			t.Errorf("Expected non-positive days to maturity, got %d", fd.DaysToMaturity)
		}

		// Interest stops accruing at maturity: 100000 at 10% over 365 days.
		if fd.AccruedInterest != 10000 {
			t.Errorf("Expected accrued interest capped at 10000, got %v", fd.AccruedInterest)
		}
	})

	t.Run("filters by maturity status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFixedDepositService(t, db)

		testutil.NewFixedDeposit().
			WithStartDate(daysAgo(100)).
			WithMaturityDate(daysAgo(-265)).
			Build(t, db)
		matured := testutil.NewFixedDeposit().
			WithStartDate(daysAgo(500)).
			WithMaturityDate(daysAgo(135)).
			Build(t, db)

		active, err := svc.GetFixedDeposits(service.DepositStatusActive, "")
		if err != nil {
			t.Fatalf("GetFixedDeposits() returned unexpected error: %v", err)
		}
		if len(active) != 1 || active[0].IsMatured {
			t.Errorf("Expected 1 active deposit, got %d", len(active))
		}

		maturedOnly, err := svc.GetFixedDeposits(service.DepositStatusMatured, "")
		if err != nil {
			t.Fatalf("GetFixedDeposits() returned unexpected error: %v", err)
		}
		if len(maturedOnly) != 1 || maturedOnly[0].ID != matured.ID {
			t.Errorf("Expected only the matured deposit, got %d", len(maturedOnly))
		}
	})

	t.Run("filters by institution substring", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFixedDepositService(t, db)

		testutil.NewFixedDeposit().WithInstitution("Commercial Bank").Build(t, db)
		testutil.NewFixedDeposit().WithInstitution("Sampath Bank").Build(t, db)

		deposits, err := svc.GetFixedDeposits("", "commercial")
		if err != nil {
			t.Fatalf("GetFixedDeposits() returned unexpected error: %v", err)
		}
		if len(deposits) != 1 {
			t.Fatalf("Expected 1 matching deposit, got %d", len(deposits))
		}
		if deposits[0].InstitutionName != "Commercial Bank" {
			t.Errorf("Expected Commercial Bank, got %q", deposits[0].InstitutionName)
		}
	})
}

// TestFixedDepositService_CreateFixedDeposit tests deposit creation.
func TestFixedDepositService_CreateFixedDeposit(t *testing.T) {
	t.Run("creates a deposit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFixedDepositService(t, db)

		fd, err := svc.CreateFixedDeposit(request.CreateFixedDepositRequest{
			InstitutionName:   "Commercial Bank",
			AccountNumber:     "FD-2201",
			PrincipalAmount:   250000,
			InterestRate:      12.5,
			StartDate:         "2025-01-01",
			MaturityDate:      "2026-01-01",
			PayoutFrequency:   model.PayoutAtMaturity,
			CalculationMethod: model.CalculationSimple,
		})
		if err != nil {
			t.Fatalf("CreateFixedDeposit() returned unexpected error: %v", err)
		}

		if fd.ID == "" {
			t.Error("Expected generated ID")
		}
		if fd.InstitutionName != "Commercial Bank" {
			t.Errorf("Expected institution name, got %q", fd.InstitutionName)
		}
		if fd.TermDays != 365 {
			t.Errorf("Expected 365 term days, got %d", fd.TermDays)
		}
	})
}

// TestFixedDepositService_UpdateFixedDeposit tests partial updates and
// the date-order check against the stored record.
func TestFixedDepositService_UpdateFixedDeposit(t *testing.T) {
	t.Run("applies a rate change", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFixedDepositService(t, db)
		fd := testutil.NewFixedDeposit().Build(t, db)

		updated, err := svc.UpdateFixedDeposit(fd.ID, request.UpdateFixedDepositRequest{
			InterestRate: float64Ptr(11.5),
		})
		if err != nil {
			t.Fatalf("UpdateFixedDeposit() returned unexpected error: %v", err)
		}

		if updated.InterestRate != 11.5 {
			t.Errorf("Expected rate 11.5, got %v", updated.InterestRate)
		}
		if updated.PrincipalAmount != fd.PrincipalAmount {
			t.Errorf("Expected principal untouched, got %v", updated.PrincipalAmount)
		}
	})

	t.Run("rejects a maturity date on or before the stored start", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFixedDepositService(t, db)
		fd := testutil.NewFixedDeposit().
			WithStartDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
			WithMaturityDate(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)

		_, err := svc.UpdateFixedDeposit(fd.ID, request.UpdateFixedDepositRequest{
			MaturityDate: strPtr("2025-06-01"),
		})

		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("returns not found for an unknown deposit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFixedDepositService(t, db)

		_, err := svc.UpdateFixedDeposit(testutil.MakeID(), request.UpdateFixedDepositRequest{
			InterestRate: float64Ptr(5),
		})

		if !errors.Is(err, apperrors.ErrFixedDepositNotFound) {
			t.Errorf("Expected ErrFixedDepositNotFound, got %v", err)
		}
	})
}

// TestFixedDepositService_PreviewInterest tests the stateless preview
// endpoint path with an explicit as-of date.
func TestFixedDepositService_PreviewInterest(t *testing.T) {
	t.Run("previews with an explicit as-of date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFixedDepositService(t, db)

		preview, err := svc.PreviewInterest(request.InterestPreviewRequest{
			PrincipalAmount:   100000,
			InterestRate:      10,
			StartDate:         "2025-01-01",
			MaturityDate:      "2026-01-01",
			PayoutFrequency:   model.PayoutAtMaturity,
			CalculationMethod: model.CalculationSimple,
			AsOfDate:          "2025-07-02",
		})
		if err != nil {
			t.Fatalf("PreviewInterest() returned unexpected error: %v", err)
		}

		if preview.TotalInterest != 10000 {
			t.Errorf("Expected 10000 total interest, got %v", preview.TotalInterest)
		}
		if preview.DaysElapsed != 182 {
			t.Errorf("Expected 182 days elapsed, got %d", preview.DaysElapsed)
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFixedDepositService(t, db)

		_, err := svc.PreviewInterest(request.InterestPreviewRequest{
			PrincipalAmount:   100000,
			InterestRate:      10,
			StartDate:         "01/01/2025",
			MaturityDate:      "2026-01-01",
			PayoutFrequency:   model.PayoutAtMaturity,
			CalculationMethod: model.CalculationSimple,
		})

		if err == nil {
			t.Error("Expected error for malformed start date, got nil")
		}
	})
}
