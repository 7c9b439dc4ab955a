package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// ValidPayoutFrequencies lists the accepted payout frequency values.
var ValidPayoutFrequencies = map[string]bool{
	model.PayoutMonthly: true, model.PayoutQuarterly: true,
	model.PayoutAnnually: true, model.PayoutAtMaturity: true,
}

// ValidCalculationMethods lists the accepted interest calculation methods.
var ValidCalculationMethods = map[string]bool{
	model.CalculationSimple: true, model.CalculationCompound: true,
}

//nolint:gocyclo // Comprehensive validation of deposit terms, cannot be split well.
func validateDepositTerms(principal, rate float64, startDate, maturityDate, frequency, method string) map[string]string {
	errors := make(map[string]string)

	if principal <= 0 {
		errors["principalAmount"] = "principalAmount must be positive"
	}

	if rate <= 0 {
		errors["interestRate"] = "interestRate must be positive"
	}

	var start, maturity time.Time
	var err error

	if strings.TrimSpace(startDate) == "" {
		errors["startDate"] = "date is required"
	} else if start, err = time.Parse("2006-01-02", startDate); err != nil {
		errors["startDate"] = err.Error()
	}

	if strings.TrimSpace(maturityDate) == "" {
		errors["maturityDate"] = "date is required"
	} else if maturity, err = time.Parse("2006-01-02", maturityDate); err != nil {
		errors["maturityDate"] = err.Error()
	}

	if !start.IsZero() && !maturity.IsZero() && !maturity.After(start) {
		errors["maturityDate"] = "maturityDate must be after startDate"
	}

	if !ValidPayoutFrequencies[frequency] {
		errors["payoutFrequency"] = fmt.Sprintf("invalid payoutFrequency: %s", frequency)
	}

	if !ValidCalculationMethods[method] {
		errors["calculationMethod"] = fmt.Sprintf("invalid calculationMethod: %s", method)
	}

	return errors
}

// ValidateCreateFixedDeposit validates a fixed deposit creation request.
// Institution name is required, amounts must be positive, dates must be
// YYYY-MM-DD with maturity strictly after start, and frequency/method
// must be known values.
func ValidateCreateFixedDeposit(req request.CreateFixedDepositRequest) error {
	errors := validateDepositTerms(req.PrincipalAmount, req.InterestRate,
		req.StartDate, req.MaturityDate, req.PayoutFrequency, req.CalculationMethod)

	if strings.TrimSpace(req.InstitutionName) == "" {
		errors["institutionName"] = "institutionName is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateFixedDeposit validates a fixed deposit update request.
// All fields are optional; cross-field date ordering is checked by the
// service against the stored record.
func ValidateUpdateFixedDeposit(req request.UpdateFixedDepositRequest) error {
	errors := make(map[string]string)

	if req.InstitutionName != nil && strings.TrimSpace(*req.InstitutionName) == "" {
		errors["institutionName"] = "institutionName cannot be empty"
	}

	if req.PrincipalAmount != nil && *req.PrincipalAmount <= 0 {
		errors["principalAmount"] = "principalAmount must be positive"
	}

	if req.InterestRate != nil && *req.InterestRate <= 0 {
		errors["interestRate"] = "interestRate must be positive"
	}

	if req.StartDate != nil {
		if _, err := time.Parse("2006-01-02", *req.StartDate); err != nil {
			errors["startDate"] = err.Error()
		}
	}

	if req.MaturityDate != nil {
		if _, err := time.Parse("2006-01-02", *req.MaturityDate); err != nil {
			errors["maturityDate"] = err.Error()
		}
	}

	if req.PayoutFrequency != nil && !ValidPayoutFrequencies[*req.PayoutFrequency] {
		errors["payoutFrequency"] = fmt.Sprintf("invalid payoutFrequency: %s", *req.PayoutFrequency)
	}

	if req.CalculationMethod != nil && !ValidCalculationMethods[*req.CalculationMethod] {
		errors["calculationMethod"] = fmt.Sprintf("invalid calculationMethod: %s", *req.CalculationMethod)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateInterestPreview validates an interest preview request. The same
// term rules apply as for creation; asOfDate is optional.
func ValidateInterestPreview(req request.InterestPreviewRequest) error {
	errors := validateDepositTerms(req.PrincipalAmount, req.InterestRate,
		req.StartDate, req.MaturityDate, req.PayoutFrequency, req.CalculationMethod)

	if req.AsOfDate != "" {
		if _, err := time.Parse("2006-01-02", req.AsOfDate); err != nil {
			errors["asOfDate"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
