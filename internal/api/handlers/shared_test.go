package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseDaysParam(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want int
	}{
		{"absent falls back to default", "/api/portfolio/history", 365},
		{"valid value is used", "/api/portfolio/history?days=90", 90},
		{"zero falls back to default", "/api/portfolio/history?days=0", 365},
		{"negative falls back to default", "/api/portfolio/history?days=-5", 365},
		{"non-numeric falls back to default", "/api/portfolio/history?days=abc", 365},
		{"above the cap clamps to the cap", "/api/portfolio/history?days=99999", 3650},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)

			got := parseDaysParam(req, 365, 3650)

			if got != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("decodes a valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"growth"}`))

		got, err := parseJSON[payload](req)
		if err != nil {
			t.Fatalf("parseJSON() returned unexpected error: %v", err)
		}

		if got.Name != "growth" {
			t.Errorf("Expected name %q, got %q", "growth", got.Name)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"growth","nmae":"typo"}`))

		if _, err := parseJSON[payload](req); err == nil {
			t.Error("Expected error for unknown field, got nil")
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		if _, err := parseJSON[payload](req); err == nil {
			t.Error("Expected error for malformed JSON, got nil")
		}
	})
}
