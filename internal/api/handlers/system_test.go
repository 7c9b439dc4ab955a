package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gayaldassanayake/portfolio-manager/internal/service"
	"github.com/gayaldassanayake/portfolio-manager/internal/testutil"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("returns healthy with a live database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response HealthResponse
		testutil.DecodeJSONResponse(t, w, &response)

		if response.Status != "healthy" {
			t.Errorf("Expected healthy status, got %q", response.Status)
		}
		if response.Database != "connected" {
			t.Errorf("Expected connected database, got %q", response.Database)
		}
	})

	t.Run("returns 503 when the database is gone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewSystemHandler(service.NewSystemService(db))
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSystemHandler_Version(t *testing.T) {
	t.Run("returns the application version", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
		w := httptest.NewRecorder()

		handler.Version(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response VersionResponse
		testutil.DecodeJSONResponse(t, w, &response)

		if response.AppVersion == "" {
			t.Error("Expected a non-empty version")
		}
	})
}
