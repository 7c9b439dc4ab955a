package model

import "time"

// UnitTrust represents a unit trust fund from the database.
// Provider names the market-data source used to refresh prices
// ("yahoo", "cal"); empty means prices are entered manually.
type UnitTrust struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Symbol      string    `json:"symbol"`
	Description string    `json:"description,omitempty"`
	Provider    string    `json:"provider,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// UnitTrustStats represents a unit trust enriched with holding statistics
// derived from its transactions and latest price.
type UnitTrustStats struct {
	UnitTrust
	UnitsHeld      float64  `json:"unitsHeld"`
	AvgCostPerUnit float64  `json:"avgCostPerUnit"`
	LatestPrice    *float64 `json:"latestPrice"`
	CurrentValue   float64  `json:"currentValue"`
}
