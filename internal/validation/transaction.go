package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// ValidTransactionTypes lists the accepted transaction type values.
var ValidTransactionTypes = map[string]bool{
	model.TransactionBuy: true, model.TransactionSell: true,
}

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - unitTrustId: Must be a valid UUID
//   - type: Must be "buy" or "sell"
//   - units: Must be positive
//   - pricePerUnit: Must be positive
//   - date: Must be in YYYY-MM-DD format
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	if err := ValidateUUID(req.UnitTrustID); err != nil {
		return err
	}

	errors := make(map[string]string)

	if !ValidTransactionTypes[req.Type] {
		errors["type"] = fmt.Sprintf("type must be buy or sell, got: %s", req.Type)
	}

	if req.Units <= 0 {
		errors["units"] = "units must be positive"
	}

	if req.PricePerUnit <= 0 {
		errors["pricePerUnit"] = "pricePerUnit must be positive"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTransaction validates a transaction update request.
// All fields are optional, but provided values must meet the same
// constraints as create.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.Type != nil && !ValidTransactionTypes[*req.Type] {
		errors["type"] = fmt.Sprintf("type must be buy or sell, got: %s", *req.Type)
	}

	if req.Units != nil && *req.Units <= 0 {
		errors["units"] = "units must be positive"
	}

	if req.PricePerUnit != nil && *req.PricePerUnit <= 0 {
		errors["pricePerUnit"] = "pricePerUnit must be positive"
	}

	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
