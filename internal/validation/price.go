package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
)

// ValidateCreatePrice validates a price creation request.
// The unit trust ID must be a valid UUID, the date must be YYYY-MM-DD,
// and the price must be positive.
func ValidateCreatePrice(req request.CreatePriceRequest) error {
	if err := ValidateUUID(req.UnitTrustID); err != nil {
		return err
	}

	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if req.Price <= 0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdatePrice validates a price update request.
func ValidateUpdatePrice(req request.UpdatePriceRequest) error {
	errors := make(map[string]string)

	if req.Price == nil {
		errors["price"] = "price is required"
	} else if *req.Price <= 0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateBulkCreatePrices validates a bulk price import request. Every
// entry must carry a parseable date and a positive price.
func ValidateBulkCreatePrices(req request.BulkCreatePricesRequest) error {
	if err := ValidateUUID(req.UnitTrustID); err != nil {
		return err
	}

	errors := make(map[string]string)

	if len(req.Prices) == 0 {
		errors["prices"] = "at least one price entry is required"
	}
	for i, entry := range req.Prices {
		field := fmt.Sprintf("prices[%d]", i)
		if strings.TrimSpace(entry.Date) == "" {
			errors[field] = "date is required"
		} else if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
			errors[field] = err.Error()
		} else if entry.Price <= 0 {
			errors[field] = "price must be positive"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateFetchPrices validates a provider fetch request. Both dates are
// required and the range must not be inverted.
func ValidateFetchPrices(req request.FetchPricesRequest) error {
	errors := make(map[string]string)

	var start, end time.Time
	var err error

	if strings.TrimSpace(req.StartDate) == "" {
		errors["startDate"] = "startDate is required"
	} else if start, err = time.Parse("2006-01-02", req.StartDate); err != nil {
		errors["startDate"] = err.Error()
	}

	if strings.TrimSpace(req.EndDate) == "" {
		errors["endDate"] = "endDate is required"
	} else if end, err = time.Parse("2006-01-02", req.EndDate); err != nil {
		errors["endDate"] = err.Error()
	}

	if len(errors) == 0 && start.After(end) {
		errors["startDate"] = "startDate must not be after endDate"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
