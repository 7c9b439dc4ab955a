package request

type CreatePriceRequest struct {
	UnitTrustID string  `json:"unitTrustId"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
}

type UpdatePriceRequest struct {
	Price *float64 `json:"price,omitempty"`
}

// FetchPricesRequest asks the configured provider for historical prices
// over an inclusive date range.
type FetchPricesRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// BulkPriceEntry is one date/price pair in a bulk import.
type BulkPriceEntry struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// BulkCreatePricesRequest imports a batch of prices for one unit trust.
// Dates already recorded for the trust are skipped, not overwritten.
type BulkCreatePricesRequest struct {
	UnitTrustID string           `json:"unitTrustId"`
	Prices      []BulkPriceEntry `json:"prices"`
}
