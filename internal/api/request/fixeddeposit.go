package request

type CreateFixedDepositRequest struct {
	InstitutionName   string  `json:"institutionName"`
	AccountNumber     string  `json:"accountNumber"`
	PrincipalAmount   float64 `json:"principalAmount"`
	InterestRate      float64 `json:"interestRate"`
	StartDate         string  `json:"startDate"`
	MaturityDate      string  `json:"maturityDate"`
	PayoutFrequency   string  `json:"payoutFrequency"`
	CalculationMethod string  `json:"calculationMethod"`
	Notes             string  `json:"notes"`
}

type UpdateFixedDepositRequest struct {
	InstitutionName   *string  `json:"institutionName,omitempty"`
	AccountNumber     *string  `json:"accountNumber,omitempty"`
	PrincipalAmount   *float64 `json:"principalAmount,omitempty"`
	InterestRate      *float64 `json:"interestRate,omitempty"`
	StartDate         *string  `json:"startDate,omitempty"`
	MaturityDate      *string  `json:"maturityDate,omitempty"`
	PayoutFrequency   *string  `json:"payoutFrequency,omitempty"`
	CalculationMethod *string  `json:"calculationMethod,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

// InterestPreviewRequest calculates interest figures for deposit terms
// without persisting anything.
type InterestPreviewRequest struct {
	PrincipalAmount   float64 `json:"principalAmount"`
	InterestRate      float64 `json:"interestRate"`
	StartDate         string  `json:"startDate"`
	MaturityDate      string  `json:"maturityDate"`
	PayoutFrequency   string  `json:"payoutFrequency"`
	CalculationMethod string  `json:"calculationMethod"`
	AsOfDate          string  `json:"asOfDate,omitempty"`
}
