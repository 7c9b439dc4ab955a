package testutil

import (
	"database/sql"
	"testing"

	"github.com/gayaldassanayake/portfolio-manager/internal/provider"
	"github.com/gayaldassanayake/portfolio-manager/internal/repository"
	"github.com/gayaldassanayake/portfolio-manager/internal/secrets"
	"github.com/gayaldassanayake/portfolio-manager/internal/service"
)

func NewTestUnitTrustService(t *testing.T, db *sql.DB) *service.UnitTrustService {
	t.Helper()

	return service.NewUnitTrustService(
		repository.NewUnitTrustRepository(db),
		repository.NewPriceRepository(db),
		repository.NewTransactionRepository(db),
	)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		repository.NewTransactionRepository(db),
		repository.NewUnitTrustRepository(db),
	)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		repository.NewTransactionRepository(db),
		repository.NewPriceRepository(db),
	)
}

func NewTestPriceService(t *testing.T, db *sql.DB) *service.PriceService {
	t.Helper()

	return service.NewPriceService(
		repository.NewPriceRepository(db),
		repository.NewUnitTrustRepository(db),
		provider.NewDefaultRegistry(),
	)
}

// NewTestPriceServiceWithProviders creates a PriceService backed by a
// custom provider registry, typically holding a MockProvider.
func NewTestPriceServiceWithProviders(t *testing.T, db *sql.DB, registry *provider.Registry) *service.PriceService {
	t.Helper()

	return service.NewPriceService(
		repository.NewPriceRepository(db),
		repository.NewUnitTrustRepository(db),
		registry,
	)
}

func NewTestFixedDepositService(t *testing.T, db *sql.DB) *service.FixedDepositService {
	t.Helper()

	return service.NewFixedDepositService(
		repository.NewFixedDepositRepository(db),
	)
}

// NewTestNotificationService creates a NotificationService without
// encryption; pass a vault via NewTestNotificationServiceWithVault to
// exercise the encrypted path.
func NewTestNotificationService(t *testing.T, db *sql.DB) *service.NotificationService {
	t.Helper()

	return NewTestNotificationServiceWithVault(t, db, nil)
}

func NewTestNotificationServiceWithVault(t *testing.T, db *sql.DB, vault *secrets.Vault) *service.NotificationService {
	t.Helper()

	return service.NewNotificationService(
		repository.NewNotificationRepository(db),
		repository.NewFixedDepositRepository(db),
		vault,
	)
}
