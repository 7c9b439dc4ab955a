package testutil

import (
	"context"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/provider"
)

// MockProvider is a mock implementation of provider.Provider for testing.
// It returns predefined prices instead of calling external APIs.
type MockProvider struct {
	// ProviderName is the name the mock registers under.
	ProviderName string
	// MockPrices is returned from FetchPrices.
	MockPrices []provider.FetchedPrice
	// MockError is returned from FetchPrices when set.
	MockError error
	// FetchCount tracks how many times FetchPrices was called.
	FetchCount int
}

// NewMockProvider creates a mock registered under "yahoo" with a small
// default data set.
func NewMockProvider() *MockProvider {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &MockProvider{
		ProviderName: "yahoo",
		MockPrices: []provider.FetchedPrice{
			{Date: base, Price: 100.0},
			{Date: base.AddDate(0, 0, 1), Price: 101.5},
			{Date: base.AddDate(0, 0, 2), Price: 99.75},
		},
	}
}

// Name returns the configured provider name.
func (m *MockProvider) Name() string {
	return m.ProviderName
}

// FetchPrices returns the configured prices or error.
func (m *MockProvider) FetchPrices(_ context.Context, _ string, _, _ time.Time) ([]provider.FetchedPrice, error) {
	m.FetchCount++
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.MockPrices, nil
}

// WithPrices configures the mock to return the given prices.
func (m *MockProvider) WithPrices(prices []provider.FetchedPrice) *MockProvider {
	m.MockPrices = prices
	return m
}

// WithError configures the mock to return the given error.
func (m *MockProvider) WithError(err error) *MockProvider {
	m.MockError = err
	return m
}

// NewMockRegistry creates a provider registry containing only the mock.
func NewMockRegistry(m *MockProvider) *provider.Registry {
	r := provider.NewRegistry()
	r.Register(m)
	return r
}
