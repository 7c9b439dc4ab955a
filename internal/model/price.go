package model

import "time"

// Price represents a historical unit trust price. One price per unit trust
// per date; the (unit_trust_id, date) pair is enforced unique in the schema.
type Price struct {
	ID          string    `json:"id"`
	UnitTrustID string    `json:"unitTrustId"`
	Date        time.Time `json:"-"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"-"`
}

// PriceResponse is the API shape for a price record with the date rendered
// as a YYYY-MM-DD string.
type PriceResponse struct {
	ID          string  `json:"id"`
	UnitTrustID string  `json:"unitTrustId"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
}

// ToResponse converts a Price to its API representation.
func (p Price) ToResponse() PriceResponse {
	return PriceResponse{
		ID:          p.ID,
		UnitTrustID: p.UnitTrustID,
		Date:        p.Date.Format("2006-01-02"),
		Price:       p.Price,
	}
}
