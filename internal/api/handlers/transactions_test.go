package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
	"github.com/gayaldassanayake/portfolio-manager/internal/testutil"
)

func setupTransactionHandler(t *testing.T) (*TransactionHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestTransactionService(t, db)
	return NewTransactionHandler(svc), db
}

func TestTransactionHandler_AllTransactions(t *testing.T) {
	t.Run("returns empty array when no transactions exist", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		w := httptest.NewRecorder()

		handler.AllTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.TransactionResponse
		testutil.DecodeJSONResponse(t, w, &response)

		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d transactions", len(response))
		}
	})

	t.Run("returns transactions across trusts", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)

		trustA := testutil.NewUnitTrust().Build(t, db)
		trustB := testutil.NewUnitTrust().Build(t, db)
		testutil.NewTransaction(trustA.ID).Build(t, db)
		testutil.NewTransaction(trustB.ID).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		w := httptest.NewRecorder()

		handler.AllTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.TransactionResponse
		testutil.DecodeJSONResponse(t, w, &response)

		if len(response) != 2 {
			t.Errorf("Expected 2 transactions, got %d", len(response))
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("creates a buy", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		trust := testutil.NewUnitTrust().Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", request.CreateTransactionRequest{
			UnitTrustID:  trust.ID,
			Type:         model.TransactionBuy,
			Units:        50,
			PricePerUnit: 20,
			Date:         "2025-02-01",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.TransactionResponse
		testutil.DecodeJSONResponse(t, w, &response)

		if response.Units != 50 {
			t.Errorf("Expected 50 units, got %v", response.Units)
		}
		if response.UnitTrustSymbol != trust.Symbol {
			t.Errorf("Expected symbol %q, got %q", trust.Symbol, response.UnitTrustSymbol)
		}
	})

	t.Run("returns 409 when a sell exceeds the position", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		trust := testutil.NewUnitTrust().Build(t, db)
		testutil.NewTransaction(trust.ID).WithUnits(10).Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", request.CreateTransactionRequest{
			UnitTrustID:  trust.ID,
			Type:         model.TransactionSell,
			Units:        11,
			PricePerUnit: 105,
			Date:         "2025-02-01",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for an unknown unit trust", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", request.CreateTransactionRequest{
			UnitTrustID:  testutil.MakeID(),
			Type:         model.TransactionBuy,
			Units:        10,
			PricePerUnit: 100,
			Date:         "2025-02-01",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for an invalid type", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		trust := testutil.NewUnitTrust().Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", request.CreateTransactionRequest{
			UnitTrustID:  trust.ID,
			Type:         "transfer",
			Units:        10,
			PricePerUnit: 100,
			Date:         "2025-02-01",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for an unknown body field", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/transaction",
			strings.NewReader(`{"unitTrustId":"x","quantity":10}`))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("returns 409 when the edit breaks the ledger", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		trust := testutil.NewUnitTrust().Build(t, db)

		buy := testutil.NewTransaction(trust.ID).WithUnits(100).Build(t, db)
		testutil.NewTransaction(trust.ID).AsSell().WithUnits(80).Build(t, db)

		units := 50.0
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/transaction/"+buy.ID,
			request.UpdateTransactionRequest{Units: &units},
			map[string]string{"uuid": buy.ID})
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for an unknown transaction", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		id := testutil.MakeID()
		units := 10.0
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/transaction/"+id,
			request.UpdateTransactionRequest{Units: &units},
			map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("deletes an existing transaction", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		trust := testutil.NewUnitTrust().Build(t, db)
		tx := testutil.NewTransaction(trust.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/transaction/"+tx.ID,
			map[string]string{"uuid": tx.ID})
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 409 when later sells depend on the transaction", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
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

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/transaction/"+buy.ID,
			map[string]string{"uuid": buy.ID})
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})
}
