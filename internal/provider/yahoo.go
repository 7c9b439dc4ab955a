package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// YahooProvider fetches daily closing prices from the Yahoo Finance v8
// chart API.
type YahooProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewYahooProvider creates a Yahoo Finance provider with default HTTP settings.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    yahooChartURL,
	}
}

// NewYahooProviderWithBaseURL creates a provider pointed at an alternate
// endpoint. Tests use this against httptest servers.
func NewYahooProviderWithBaseURL(baseURL string) *YahooProvider {
	p := NewYahooProvider()
	p.baseURL = baseURL
	return p
}

// Name returns the registry key unit trusts reference.
func (p *YahooProvider) Name() string {
	return "yahoo"
}

// FetchPrices retrieves daily closing prices for the symbol over the
// inclusive date range. Days Yahoo reports with a null close are skipped.
func (p *YahooProvider) FetchPrices(ctx context.Context, symbol string, startDate, endDate time.Time) ([]FetchedPrice, error) {
	// period2 is exclusive on the Yahoo side, so push it past endDate.
	url := fmt.Sprintf("%s/%s?interval=1d&period1=%d&period2=%d",
		p.baseURL, symbol, startDate.Unix(), endDate.AddDate(0, 0, 1).Unix())

	response, err := p.query(ctx, url)
	if err != nil {
		return nil, err
	}
	if len(response.Chart.Result) == 0 {
		return nil, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	result := response.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data returned for symbol %s", symbol)
	}
	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return nil, fmt.Errorf("mismatched data lengths for symbol %s", symbol)
	}

	prices := make([]FetchedPrice, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if closes[i] == nil {
			continue
		}
		day := time.Unix(ts, 0).UTC()
		prices = append(prices, FetchedPrice{
			Date:  time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Price: *closes[i],
		})
	}
	return prices, nil
}

func (p *YahooProvider) query(ctx context.Context, url string) (YahooResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return YahooResponse{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return YahooResponse{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return YahooResponse{}, err
	}

	var response YahooResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return YahooResponse{}, err
	}
	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}
	return response, nil
}
