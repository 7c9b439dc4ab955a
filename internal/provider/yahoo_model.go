package provider

// YahooResponse is the raw envelope returned by the Yahoo Finance v8
// chart endpoint.
type YahooResponse struct {
	Chart YahooChart `json:"chart"`
}

// YahooChart holds the result list and the API-level error string.
type YahooChart struct {
	Result []YahooResult `json:"result"`
	Error  *string       `json:"error"`
}

// YahooResult is one symbol's chart data.
type YahooResult struct {
	Meta       YahooMeta                `json:"meta"`
	Timestamp  []int64                  `json:"timestamp"`
	Indicators YahooIndicatorsContainer `json:"indicators"`
}

// YahooMeta carries symbol metadata alongside the price arrays.
type YahooMeta struct {
	Symbol           string `json:"symbol"`
	Currency         string `json:"currency"`
	ExchangeName     string `json:"exchangeName"`
	FullExchangeName string `json:"fullExchangeName"`
	LongName         string `json:"longName"`
	Shortname        string `json:"shortName"`
}

// YahooIndicatorsContainer wraps the quote array.
type YahooIndicatorsContainer struct {
	Quote []YahooQuote `json:"quote"`
}

// YahooQuote holds parallel OHLCV arrays. Entries are pointers because
// Yahoo returns null for days without trades.
type YahooQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
