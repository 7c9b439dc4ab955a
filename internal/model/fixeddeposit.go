package model

import "time"

// Interest payout frequency values for fixed deposits.
const (
	PayoutMonthly    = "monthly"
	PayoutQuarterly  = "quarterly"
	PayoutAnnually   = "annually"
	PayoutAtMaturity = "at_maturity"
)

// Interest calculation type values for fixed deposits.
const (
	CalculationSimple   = "simple"
	CalculationCompound = "compound"
)

// FixedDeposit represents a fixed deposit investment with its interest terms
// and maturity tracking.
type FixedDeposit struct {
	ID                string    `json:"id"`
	PrincipalAmount   float64   `json:"principalAmount"`
	InterestRate      float64   `json:"interestRate"` // annual, percentage
	StartDate         time.Time `json:"-"`
	MaturityDate      time.Time `json:"-"`
	InstitutionName   string    `json:"institutionName"`
	AccountNumber     string    `json:"accountNumber"`
	PayoutFrequency   string    `json:"payoutFrequency"`
	CalculationMethod string    `json:"calculationMethod"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

// FixedDepositResponse is the API shape for a fixed deposit with dates
// rendered as YYYY-MM-DD strings.
type FixedDepositResponse struct {
	ID                string  `json:"id"`
	PrincipalAmount   float64 `json:"principalAmount"`
	InterestRate      float64 `json:"interestRate"`
	StartDate         string  `json:"startDate"`
	MaturityDate      string  `json:"maturityDate"`
	InstitutionName   string  `json:"institutionName"`
	AccountNumber     string  `json:"accountNumber"`
	PayoutFrequency   string  `json:"payoutFrequency"`
	CalculationMethod string  `json:"calculationMethod"`
	Notes             string  `json:"notes,omitempty"`
}

// FixedDepositWithValue is a fixed deposit enriched with its computed
// current value and maturity status.
type FixedDepositWithValue struct {
	FixedDepositResponse
	CurrentValue    float64 `json:"currentValue"`
	AccruedInterest float64 `json:"accruedInterest"`
	DaysToMaturity  int     `json:"daysToMaturity"`
	IsMatured       bool    `json:"isMatured"`
	TermDays        int     `json:"termDays"`
}

// ToResponse converts a FixedDeposit to its API representation.
func (fd FixedDeposit) ToResponse() FixedDepositResponse {
	return FixedDepositResponse{
		ID:                fd.ID,
		PrincipalAmount:   fd.PrincipalAmount,
		InterestRate:      fd.InterestRate,
		StartDate:         fd.StartDate.Format("2006-01-02"),
		MaturityDate:      fd.MaturityDate.Format("2006-01-02"),
		InstitutionName:   fd.InstitutionName,
		AccountNumber:     fd.AccountNumber,
		PayoutFrequency:   fd.PayoutFrequency,
		CalculationMethod: fd.CalculationMethod,
		Notes:             fd.Notes,
	}
}

// InterestPreview holds the result of a stateless interest calculation for
// the calculate-interest endpoint.
type InterestPreview struct {
	TotalInterest   float64 `json:"totalInterest"`
	MaturityValue   float64 `json:"maturityValue"`
	TermDays        int     `json:"termDays"`
	CurrentInterest float64 `json:"currentInterest"`
	CurrentValue    float64 `json:"currentValue"`
	DaysElapsed     int     `json:"daysElapsed"`
	DaysRemaining   int     `json:"daysRemaining"`
}
