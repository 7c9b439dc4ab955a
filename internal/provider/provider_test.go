package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
)

func chartJSON(timestamps []int64, closes []string) string {
	ts := ""
	for i, t := range timestamps {
		if i > 0 {
			ts += ","
		}
		ts += fmt.Sprintf("%d", t)
	}
	cl := ""
	for i, c := range closes {
		if i > 0 {
			cl += ","
		}
		cl += c
	}
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"symbol":"TEST","currency":"USD"},
        "timestamp":[%s],
        "indicators":{"quote":[{"close":[%s]}]}}],"error":null}}`, ts, cl)
}

// WHY: the Yahoo chart payload is the one wire format we do not control;
// null closes and API-level errors must map cleanly instead of panicking
// mid-scan.
func TestYahooProvider(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("parses daily closes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, chartJSON(
				[]int64{start.Unix(), start.AddDate(0, 0, 1).Unix()},
				[]string{"101.5", "102.25"},
			))
		}))
		defer server.Close()
		p := NewYahooProviderWithBaseURL(server.URL)

		prices, err := p.FetchPrices(context.Background(), "TEST", start, start.AddDate(0, 0, 1))

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(prices) != 2 {
			t.Fatalf("got %d prices, want 2", len(prices))
		}
		if prices[0].Price != 101.5 || !prices[0].Date.Equal(start) {
			t.Errorf("first price = %+v, want 101.5 on %s", prices[0], start)
		}
	})

	t.Run("skips null closes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, chartJSON(
				[]int64{start.Unix(), start.AddDate(0, 0, 1).Unix()},
				[]string{"101.5", "null"},
			))
		}))
		defer server.Close()
		p := NewYahooProviderWithBaseURL(server.URL)

		prices, err := p.FetchPrices(context.Background(), "TEST", start, start.AddDate(0, 0, 1))

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(prices) != 1 {
			t.Errorf("got %d prices, want 1 (null close skipped)", len(prices))
		}
	})

	t.Run("surfaces API errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"chart":{"result":[],"error":"Not Found"}}`)
		}))
		defer server.Close()
		p := NewYahooProviderWithBaseURL(server.URL)

		_, err := p.FetchPrices(context.Background(), "NOPE", start, start)

		if err == nil {
			t.Fatal("expected an error for an API-level failure")
		}
	})

	t.Run("empty result set is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
		}))
		defer server.Close()
		p := NewYahooProviderWithBaseURL(server.URL)

		_, err := p.FetchPrices(context.Background(), "TEST", start, start)

		if err == nil {
			t.Fatal("expected an error for an empty result set")
		}
	})
}

// WHY: the placeholder source has to stay inside its documented price
// band and agree with itself across fetches, or refreshed history would
// rewrite old prices.
func TestCalProvider(t *testing.T) {
	p := NewCalProvider()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 9)

	prices, err := p.FetchPrices(context.Background(), "CALFUND", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prices) != 10 {
		t.Fatalf("got %d prices, want 10", len(prices))
	}
	for _, fp := range prices {
		if fp.Price < 1.0 || fp.Price > 10.0 {
			t.Errorf("price %v on %s outside [1, 10]", fp.Price, fp.Date)
		}
	}

	again, err := p.FetchPrices(context.Background(), "CALFUND", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range prices {
		if prices[i] != again[i] {
			t.Errorf("price %d not deterministic: %+v vs %+v", i, prices[i], again[i])
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	t.Run("resolves built-in providers", func(t *testing.T) {
		for _, name := range []string{"yahoo", "cal"} {
			p, err := r.Get(name)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", name, err)
			}
			if p.Name() != name {
				t.Errorf("provider name = %q, want %q", p.Name(), name)
			}
		}
	})

	t.Run("unknown name returns ErrProviderNotFound", func(t *testing.T) {
		_, err := r.Get("bloomberg")
		if !errors.Is(err, apperrors.ErrProviderNotFound) {
			t.Errorf("error = %v, want ErrProviderNotFound", err)
		}
	})
}
