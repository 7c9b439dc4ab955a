package validation

import (
	"fmt"
	"strings"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
)

// ValidProviders lists the provider names unit trusts may reference.
// An empty provider means prices are entered manually.
var ValidProviders = map[string]bool{
	"": true, "yahoo": true, "cal": true,
}

// ValidateCreateUnitTrust validates a unit trust creation request.
// Name and symbol are required; provider must be a known source or empty.
func ValidateCreateUnitTrust(req request.CreateUnitTrustRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if !ValidProviders[req.Provider] {
		errors["provider"] = fmt.Sprintf("unknown provider: %s", req.Provider)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateUnitTrust validates a unit trust update request.
// All fields are optional, but provided values must meet the same
// constraints as create.
func ValidateUpdateUnitTrust(req request.UpdateUnitTrustRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	if req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "" {
		errors["symbol"] = "symbol cannot be empty"
	}

	if req.Provider != nil && !ValidProviders[*req.Provider] {
		errors["provider"] = fmt.Sprintf("unknown provider: %s", *req.Provider)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
