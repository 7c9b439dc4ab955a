// Package provider fetches unit trust prices from external market data
// sources. Each source implements the Provider interface and registers
// under a short name that unit trusts reference.
package provider

import (
	"context"
	"time"
)

// FetchedPrice is a single daily closing price returned by a provider.
type FetchedPrice struct {
	Date  time.Time
	Price float64
}

// Provider fetches daily closing prices for a symbol over an inclusive
// date range.
type Provider interface {
	Name() string
	FetchPrices(ctx context.Context, symbol string, startDate, endDate time.Time) ([]FetchedPrice, error)
}
