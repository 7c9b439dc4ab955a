package request

type CreateTransactionRequest struct {
	UnitTrustID  string  `json:"unitTrustId"`
	Type         string  `json:"type"`
	Units        float64 `json:"units"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Date         string  `json:"date"`
	Notes        string  `json:"notes"`
}

type UpdateTransactionRequest struct {
	Type         *string  `json:"type,omitempty"`
	Units        *float64 `json:"units,omitempty"`
	PricePerUnit *float64 `json:"pricePerUnit,omitempty"`
	Date         *string  `json:"date,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}
