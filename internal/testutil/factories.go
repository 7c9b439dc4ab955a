package testutil

import (
	"database/sql"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/model"
	"github.com/google/uuid"
)

// MakeID generates a unique UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// MakeSymbol generates a unique-ish symbol so the symbol UNIQUE
// constraint never collides across builders in one test.
func MakeSymbol(prefix string) string {
	//#nosec G404 -- Test data, not security-sensitive
	return fmt.Sprintf("%s%04d", prefix, rand.Intn(10000))
}

// UnitTrustBuilder provides a fluent interface for creating test unit trusts.
//
// Example usage:
//
//	trust := testutil.NewUnitTrust().Build(t, db)
//
//	trust := testutil.NewUnitTrust().
//	    WithName("NDB Growth Fund").
//	    WithProvider("yahoo").
//	    Build(t, db)
type UnitTrustBuilder struct {
	ID          string
	Name        string
	Symbol      string
	Description string
	Provider    string
}

// NewUnitTrust creates a UnitTrustBuilder with sensible defaults.
func NewUnitTrust() *UnitTrustBuilder {
	return &UnitTrustBuilder{
		ID:          MakeID(),
		Name:        "Test Unit Trust",
		Symbol:      MakeSymbol("TUT"),
		Description: "Test description",
	}
}

// WithID sets a custom ID.
func (b *UnitTrustBuilder) WithID(id string) *UnitTrustBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *UnitTrustBuilder) WithName(name string) *UnitTrustBuilder {
	b.Name = name
	return b
}

// WithSymbol sets a custom symbol.
func (b *UnitTrustBuilder) WithSymbol(symbol string) *UnitTrustBuilder {
	b.Symbol = symbol
	return b
}

// WithProvider sets the price provider name.
func (b *UnitTrustBuilder) WithProvider(provider string) *UnitTrustBuilder {
	b.Provider = provider
	return b
}

// Build inserts the unit trust and returns the model.
func (b *UnitTrustBuilder) Build(t *testing.T, db *sql.DB) model.UnitTrust {
	t.Helper()

	ut := model.UnitTrust{
		ID:          b.ID,
		Name:        b.Name,
		Symbol:      b.Symbol,
		Description: b.Description,
		Provider:    b.Provider,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := db.Exec(`
        INSERT INTO unit_trust (id, name, symbol, description, provider, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, ut.ID, ut.Name, ut.Symbol, ut.Description, ut.Provider, ut.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to insert test unit trust: %v", err)
	}
	return ut
}

// PriceBuilder provides a fluent interface for creating test prices.
type PriceBuilder struct {
	ID          string
	UnitTrustID string
	Date        time.Time
	Price       float64
}

// NewPrice creates a PriceBuilder for the given unit trust.
func NewPrice(unitTrustID string) *PriceBuilder {
	return &PriceBuilder{
		ID:          MakeID(),
		UnitTrustID: unitTrustID,
		Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Price:       100.0,
	}
}

// WithDate sets the price date.
func (b *PriceBuilder) WithDate(date time.Time) *PriceBuilder {
	b.Date = date
	return b
}

// WithPrice sets the price value.
func (b *PriceBuilder) WithPrice(price float64) *PriceBuilder {
	b.Price = price
	return b
}

// Build inserts the price and returns the model.
func (b *PriceBuilder) Build(t *testing.T, db *sql.DB) model.Price {
	t.Helper()

	p := model.Price{
		ID:          b.ID,
		UnitTrustID: b.UnitTrustID,
		Date:        b.Date,
		Price:       b.Price,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := db.Exec(`
        INSERT INTO price (id, unit_trust_id, date, price, created_at)
        VALUES (?, ?, ?, ?, ?)
    `, p.ID, p.UnitTrustID, p.Date.Format("2006-01-02"), p.Price, p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to insert test price: %v", err)
	}
	return p
}

// TransactionBuilder provides a fluent interface for creating test transactions.
type TransactionBuilder struct {
	ID           string
	UnitTrustID  string
	Type         string
	Units        float64
	PricePerUnit float64
	Date         time.Time
	Notes        string
}

// NewTransaction creates a TransactionBuilder for the given unit trust,
// defaulting to a buy of 10 units at 100.
func NewTransaction(unitTrustID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:           MakeID(),
		UnitTrustID:  unitTrustID,
		Type:         model.TransactionBuy,
		Units:        10,
		PricePerUnit: 100,
		Date:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AsSell marks the transaction as a sell.
func (b *TransactionBuilder) AsSell() *TransactionBuilder {
	b.Type = model.TransactionSell
	return b
}

// WithUnits sets the unit count.
func (b *TransactionBuilder) WithUnits(units float64) *TransactionBuilder {
	b.Units = units
	return b
}

// WithPricePerUnit sets the per-unit price.
func (b *TransactionBuilder) WithPricePerUnit(price float64) *TransactionBuilder {
	b.PricePerUnit = price
	return b
}

// WithDate sets the transaction date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// Build inserts the transaction and returns the model.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	tx := model.Transaction{
		ID:           b.ID,
		UnitTrustID:  b.UnitTrustID,
		Type:         b.Type,
		Units:        b.Units,
		PricePerUnit: b.PricePerUnit,
		Date:         b.Date,
		Notes:        b.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := db.Exec(`
        INSERT INTO "transaction" (id, unit_trust_id, type, units, price_per_unit, date, notes, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, tx.ID, tx.UnitTrustID, tx.Type, tx.Units, tx.PricePerUnit,
		tx.Date.Format("2006-01-02"), tx.Notes, tx.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to insert test transaction: %v", err)
	}
	return tx
}

// FixedDepositBuilder provides a fluent interface for creating test fixed deposits.
type FixedDepositBuilder struct {
	ID                string
	InstitutionName   string
	AccountNumber     string
	PrincipalAmount   float64
	InterestRate      float64
	StartDate         time.Time
	MaturityDate      time.Time
	PayoutFrequency   string
	CalculationMethod string
}

// NewFixedDeposit creates a FixedDepositBuilder with sensible defaults:
// a one-year simple-interest deposit.
func NewFixedDeposit() *FixedDepositBuilder {
	return &FixedDepositBuilder{
		ID:                MakeID(),
		InstitutionName:   "Test Bank",
		AccountNumber:     "FD-0001",
		PrincipalAmount:   100000,
		InterestRate:      10,
		StartDate:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MaturityDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		PayoutFrequency:   model.PayoutAtMaturity,
		CalculationMethod: model.CalculationSimple,
	}
}

// WithMaturityDate sets the maturity date.
func (b *FixedDepositBuilder) WithMaturityDate(date time.Time) *FixedDepositBuilder {
	b.MaturityDate = date
	return b
}

// WithStartDate sets the start date.
func (b *FixedDepositBuilder) WithStartDate(date time.Time) *FixedDepositBuilder {
	b.StartDate = date
	return b
}

// WithInstitution sets the institution name.
func (b *FixedDepositBuilder) WithInstitution(name string) *FixedDepositBuilder {
	b.InstitutionName = name
	return b
}

// WithPrincipal sets the principal amount.
func (b *FixedDepositBuilder) WithPrincipal(amount float64) *FixedDepositBuilder {
	b.PrincipalAmount = amount
	return b
}

// WithRate sets the annual interest rate percentage.
func (b *FixedDepositBuilder) WithRate(rate float64) *FixedDepositBuilder {
	b.InterestRate = rate
	return b
}

// Compound sets the calculation method to compound with the given
// payout frequency.
func (b *FixedDepositBuilder) Compound(frequency string) *FixedDepositBuilder {
	b.CalculationMethod = model.CalculationCompound
	b.PayoutFrequency = frequency
	return b
}

// Build inserts the fixed deposit and returns the model.
func (b *FixedDepositBuilder) Build(t *testing.T, db *sql.DB) model.FixedDeposit {
	t.Helper()

	now := time.Now().UTC()
	fd := model.FixedDeposit{
		ID:                b.ID,
		InstitutionName:   b.InstitutionName,
		AccountNumber:     b.AccountNumber,
		PrincipalAmount:   b.PrincipalAmount,
		InterestRate:      b.InterestRate,
		StartDate:         b.StartDate,
		MaturityDate:      b.MaturityDate,
		PayoutFrequency:   b.PayoutFrequency,
		CalculationMethod: b.CalculationMethod,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	_, err := db.Exec(`
        INSERT INTO fixed_deposit (id, institution_name, account_number, principal_amount,
            interest_rate, start_date, maturity_date, payout_frequency, calculation_method,
            notes, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, fd.ID, fd.InstitutionName, fd.AccountNumber, fd.PrincipalAmount, fd.InterestRate,
		fd.StartDate.Format("2006-01-02"), fd.MaturityDate.Format("2006-01-02"),
		fd.PayoutFrequency, fd.CalculationMethod, fd.Notes,
		fd.CreatedAt.Format(time.RFC3339), fd.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to insert test fixed deposit: %v", err)
	}
	return fd
}
