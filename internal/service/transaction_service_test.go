package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
	"github.com/gayaldassanayake/portfolio-manager/internal/testutil"
)

func float64Ptr(f float64) *float64 { return &f }

// TestTransactionService_CreateTransaction tests transaction recording
// including the ledger replay that guards against overselling.
//
// WHY: The transaction ledger is the source of truth for every derived
// figure. A sell that exceeds the position at any point in the replay
// must be rejected outright, never clamped or partially applied.
func TestTransactionService_CreateTransaction(t *testing.T) {
	t.Run("records a buy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		tx, err := svc.CreateTransaction(request.CreateTransactionRequest{
			UnitTrustID:  trust.ID,
			Type:         model.TransactionBuy,
			Units:        100,
			PricePerUnit: 25.50,
			Date:         "2025-01-15",
		})
		if err != nil {
			t.Fatalf("CreateTransaction() returned unexpected error: %v", err)
		}

		if tx.Units != 100 {
			t.Errorf("Expected 100 units, got %v", tx.Units)
		}
		if tx.UnitTrustName != trust.Name {
			t.Errorf("Expected trust name %q, got %q", trust.Name, tx.UnitTrustName)
		}
		if tx.Date != "2025-01-15" {
			t.Errorf("Expected date 2025-01-15, got %q", tx.Date)
		}
	})

	t.Run("allows a sell covered by prior buys", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		testutil.NewTransaction(trust.ID).WithUnits(100).Build(t, db)

		_, err := svc.CreateTransaction(request.CreateTransactionRequest{
			UnitTrustID:  trust.ID,
			Type:         model.TransactionSell,
			Units:        40,
			PricePerUnit: 110,
			Date:         "2025-03-01",
		})
		if err != nil {
			t.Fatalf("Expected covered sell to succeed, got error: %v", err)
		}
	})

	t.Run("rejects a sell exceeding the position", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		testutil.NewTransaction(trust.ID).WithUnits(50).Build(t, db)

		_, err := svc.CreateTransaction(request.CreateTransactionRequest{
			UnitTrustID:  trust.ID,
			Type:         model.TransactionSell,
			Units:        51,
			PricePerUnit: 110,
			Date:         "2025-03-01",
		})

		if !errors.Is(err, apperrors.ErrInsufficientUnits) {
			t.Errorf("Expected ErrInsufficientUnits, got %v", err)
		}
	})

	t.Run("rejects a sell dated before the covering buy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		testutil.NewTransaction(trust.ID).
			WithUnits(100).
			WithDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)

		_, err := svc.CreateTransaction(request.CreateTransactionRequest{
			UnitTrustID:  trust.ID,
			Type:         model.TransactionSell,
			Units:        10,
			PricePerUnit: 110,
			Date:         "2025-01-01",
		})

		if !errors.Is(err, apperrors.ErrInsufficientUnits) {
			t.Errorf("Expected ErrInsufficientUnits for sell before the buy, got %v", err)
		}
	})

	t.Run("returns not found for an unknown unit trust", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.CreateTransaction(request.CreateTransactionRequest{
			UnitTrustID:  testutil.MakeID(),
			Type:         model.TransactionBuy,
			Units:        10,
			PricePerUnit: 100,
			Date:         "2025-01-01",
		})

		if !errors.Is(err, apperrors.ErrUnitTrustNotFound) {
			t.Errorf("Expected ErrUnitTrustNotFound, got %v", err)
		}
	})
}

// TestTransactionService_UpdateTransaction tests that edits re-validate
// the whole ledger with the modified record in place.
func TestTransactionService_UpdateTransaction(t *testing.T) {
	t.Run("rejects an edit that would oversell downstream", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		buy := testutil.NewTransaction(trust.ID).
			WithUnits(100).
			WithDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)
		testutil.NewTransaction(trust.ID).
			AsSell().
			WithUnits(80).
			WithDate(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)

		// Shrinking the buy to 50 leaves the later sell of 80 uncovered.
		_, err := svc.UpdateTransaction(buy.ID, request.UpdateTransactionRequest{
			Units: float64Ptr(50),
		})

		if !errors.Is(err, apperrors.ErrInsufficientUnits) {
			t.Errorf("Expected ErrInsufficientUnits, got %v", err)
		}
	})

	t.Run("applies a valid partial update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		buy := testutil.NewTransaction(trust.ID).WithUnits(100).Build(t, db)

		updated, err := svc.UpdateTransaction(buy.ID, request.UpdateTransactionRequest{
			Units: float64Ptr(150),
		})
		if err != nil {
			t.Fatalf("UpdateTransaction() returned unexpected error: %v", err)
		}

		if updated.Units != 150 {
			t.Errorf("Expected 150 units, got %v", updated.Units)
		}
		if updated.PricePerUnit != buy.PricePerUnit {
			t.Errorf("Expected price %v untouched, got %v", buy.PricePerUnit, updated.PricePerUnit)
		}
	})

	t.Run("returns not found for an unknown transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.UpdateTransaction(testutil.MakeID(), request.UpdateTransactionRequest{
			Units: float64Ptr(10),
		})

		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})
}

// TestTransactionService_DeleteTransaction tests that removals replay
// the remaining ledger the way creates and updates do.
//
// WHY: Deleting a buy that a later sell depends on would leave the
// stored ledger permanently oversold, breaking every derived figure
// until the data is repaired by hand.
func TestTransactionService_DeleteTransaction(t *testing.T) {
	t.Run("rejects deleting a buy that later sells depend on", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		buy := testutil.NewTransaction(trust.ID).
			WithUnits(10).
			WithDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)
		testutil.NewTransaction(trust.ID).
			AsSell().
			WithUnits(5).
			WithDate(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)

		err := svc.DeleteTransaction(buy.ID)
		if !errors.Is(err, apperrors.ErrInsufficientUnits) {
			t.Fatalf("Expected ErrInsufficientUnits, got %v", err)
		}

		// The rejected delete must leave the row in place.
		if _, err := svc.GetTransaction(buy.ID); err != nil {
			t.Errorf("Expected the buy to survive the rejected delete, got %v", err)
		}
	})

	t.Run("deletes when the remaining ledger stays valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		testutil.NewTransaction(trust.ID).
			WithUnits(10).
			WithDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)
		sale := testutil.NewTransaction(trust.ID).
			AsSell().
			WithUnits(5).
			WithDate(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)

		if err := svc.DeleteTransaction(sale.ID); err != nil {
			t.Fatalf("DeleteTransaction() returned unexpected error: %v", err)
		}

		if _, err := svc.GetTransaction(sale.ID); !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected the sell to be gone, got %v", err)
		}
	})

	t.Run("returns not found for an unknown transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		err := svc.DeleteTransaction(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})
}

// TestTransactionService_GetTransactions tests retrieval with the unit
// trust enrichment and per-trust filtering.
func TestTransactionService_GetTransactions(t *testing.T) {
	t.Run("filters by unit trust", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		trustA := testutil.NewUnitTrust().Build(t, db)
		trustB := testutil.NewUnitTrust().Build(t, db)
		testutil.NewTransaction(trustA.ID).Build(t, db)
		testutil.NewTransaction(trustA.ID).Build(t, db)
		testutil.NewTransaction(trustB.ID).Build(t, db)

		forA, err := svc.GetTransactions(trustA.ID, time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}

		if len(forA) != 2 {
			t.Errorf("Expected 2 transactions for trust A, got %d", len(forA))
		}
		for _, tx := range forA {
			if tx.UnitTrustID != trustA.ID {
				t.Errorf("Expected only trust A transactions, found %s", tx.UnitTrustID)
			}
			if tx.UnitTrustSymbol != trustA.Symbol {
				t.Errorf("Expected symbol %q, got %q", trustA.Symbol, tx.UnitTrustSymbol)
			}
		}
	})

	t.Run("returns transactions in date order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		testutil.NewTransaction(trust.ID).
			WithDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)
		testutil.NewTransaction(trust.ID).
			WithDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)

		txns, err := svc.GetTransactions(trust.ID, time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}

		if len(txns) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(txns))
		}
		if txns[0].Date > txns[1].Date {
			t.Errorf("Expected ascending date order, got %q before %q", txns[0].Date, txns[1].Date)
		}
	})

	t.Run("filters by date range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		testutil.NewTransaction(trust.ID).
			WithDate(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)).
			Build(t, db)
		testutil.NewTransaction(trust.ID).
			WithDate(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)).
			Build(t, db)

		txns, err := svc.GetTransactions(trust.ID,
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}

		if len(txns) != 1 {
			t.Fatalf("Expected 1 transaction in range, got %d", len(txns))
		}
		if txns[0].Date != "2025-04-15" {
			t.Errorf("Expected the April transaction, got %q", txns[0].Date)
		}
	})

	t.Run("rejects reversed date range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		trust := testutil.NewUnitTrust().Build(t, db)

		_, err := svc.GetTransactions(trust.ID,
			time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange, got %v", err)
		}
	})
}
