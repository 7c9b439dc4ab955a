package model

import "time"

// Transaction type values.
const (
	TransactionBuy  = "buy"
	TransactionSell = "sell"
)

// Transaction represents a buy or sell of unit trust units.
// Used internally for calculations and data processing.
type Transaction struct {
	ID           string    `json:"id"`
	UnitTrustID  string    `json:"unitTrustId"`
	Type         string    `json:"type"`
	Units        float64   `json:"units"`
	PricePerUnit float64   `json:"pricePerUnit"`
	Date         time.Time `json:"-"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"-"`
}

// TransactionResponse represents a transaction enriched with unit trust
// details for API responses.
type TransactionResponse struct {
	ID              string  `json:"id"`
	UnitTrustID     string  `json:"unitTrustId"`
	UnitTrustName   string  `json:"unitTrustName"`
	UnitTrustSymbol string  `json:"unitTrustSymbol"`
	Type            string  `json:"type"`
	Units           float64 `json:"units"`
	PricePerUnit    float64 `json:"pricePerUnit"`
	Date            string  `json:"date"`
	Notes           string  `json:"notes,omitempty"`
}
