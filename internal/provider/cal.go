package provider

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"
)

// CalProvider is a placeholder for Capital Alliance unit trust data,
// which has no public API yet. It produces deterministic pseudo-random
// prices between 1.0 and 10.0 so the rest of the pipeline can be
// exercised end to end.
type CalProvider struct{}

// NewCalProvider creates the placeholder provider.
func NewCalProvider() *CalProvider {
	return &CalProvider{}
}

// Name returns the registry key unit trusts reference.
func (p *CalProvider) Name() string {
	return "cal"
}

// FetchPrices generates one price per day over the inclusive range.
// Prices are seeded from the symbol and date so repeated fetches for the
// same day agree.
func (p *CalProvider) FetchPrices(_ context.Context, symbol string, startDate, endDate time.Time) ([]FetchedPrice, error) {
	prices := []FetchedPrice{}
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		prices = append(prices, FetchedPrice{
			Date:  day,
			Price: pseudoPrice(symbol, day),
		})
	}
	return prices, nil
}

func pseudoPrice(symbol string, day time.Time) float64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	h.Write([]byte(day.Format("2006-01-02")))
	//#nosec G404 -- Placeholder data, not security-sensitive
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return 1.0 + rng.Float64()*9.0
}
