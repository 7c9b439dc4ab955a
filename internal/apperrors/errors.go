package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrUnitTrustNotFound indicates that a unit trust with the given ID does not exist.
	ErrUnitTrustNotFound = errors.New("unit trust not found")

	// ErrPriceNotFound indicates that a price record with the given ID does not exist.
	ErrPriceNotFound = errors.New("price not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrFixedDepositNotFound indicates that a fixed deposit with the given ID does not exist.
	ErrFixedDepositNotFound = errors.New("fixed deposit not found")

	// ErrNotificationNotFound indicates that a notification with the given ID does not exist.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrProviderNotFound indicates that no price provider is registered under the requested name.
	ErrProviderNotFound = errors.New("price provider not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInsufficientUnits indicates that a sell cannot be completed because
	// the portfolio does not hold enough units of the unit trust. The engine
	// raises this as a data integrity fault and never clamps silently.
	ErrInsufficientUnits = errors.New("insufficient units for sale")

	// ErrDuplicatePrice indicates a price already exists for the unit trust and date.
	ErrDuplicatePrice = errors.New("price for this date already exists")

	// ErrDuplicateSymbol indicates a unit trust with the same symbol already exists.
	ErrDuplicateSymbol = errors.New("unit trust with this symbol already exists")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")
)

// Numeric computation errors raised by the performance engine.
var (
	// ErrNoConvergence indicates that the IRR root finder failed to converge
	// within its iteration cap. Surfaced as a null metric, never as a failed response.
	ErrNoConvergence = errors.New("rate solver failed to converge")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveUnitTrusts      = errors.New("failed to retrieve unit trusts")
	ErrFailedToRetrievePrices          = errors.New("failed to retrieve prices")
	ErrFailedToRetrieveTransactions    = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveFixedDeposits   = errors.New("failed to retrieve fixed deposits")
	ErrFailedToRetrieveNotifications   = errors.New("failed to retrieve notifications")
	ErrFailedToGetPortfolioSummary     = errors.New("failed to get portfolio summary")
	ErrFailedToGetPortfolioHistory     = errors.New("failed to get portfolio history")
	ErrFailedToGetPortfolioMetrics     = errors.New("failed to get portfolio metrics")
	ErrFailedToGetPortfolioPerformance = errors.New("failed to get portfolio performance")
	ErrFailedToFetchPrices             = errors.New("failed to fetch prices from provider")
)
