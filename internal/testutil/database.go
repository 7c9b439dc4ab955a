package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE unit_trust (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			symbol VARCHAR(20) NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			provider VARCHAR(20) NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);

		CREATE TABLE price (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			unit_trust_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			price FLOAT NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY(unit_trust_id) REFERENCES unit_trust(id) ON DELETE CASCADE,
			CONSTRAINT unique_trust_date UNIQUE (unit_trust_id, date)
		);
		CREATE INDEX idx_price_trust_date ON price(unit_trust_id, date);

		-- Quoted because transaction is a reserved keyword
		CREATE TABLE "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			unit_trust_id VARCHAR(36) NOT NULL,
			type VARCHAR(4) NOT NULL,
			units FLOAT NOT NULL,
			price_per_unit FLOAT NOT NULL,
			date DATE NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			FOREIGN KEY(unit_trust_id) REFERENCES unit_trust(id) ON DELETE CASCADE
		);
		CREATE INDEX idx_transaction_trust_date ON "transaction"(unit_trust_id, date);

		CREATE TABLE fixed_deposit (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			institution_name VARCHAR(100) NOT NULL,
			account_number VARCHAR(50) NOT NULL DEFAULT '',
			principal_amount FLOAT NOT NULL,
			interest_rate FLOAT NOT NULL,
			start_date DATE NOT NULL,
			maturity_date DATE NOT NULL,
			payout_frequency VARCHAR(20) NOT NULL,
			calculation_method VARCHAR(10) NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);
		CREATE INDEX idx_fixed_deposit_maturity ON fixed_deposit(maturity_date);

		CREATE TABLE notification_setting (
			id INTEGER NOT NULL PRIMARY KEY,
			notify_days_before_30 BOOLEAN NOT NULL DEFAULT TRUE,
			notify_days_before_7 BOOLEAN NOT NULL DEFAULT TRUE,
			notify_on_maturity BOOLEAN NOT NULL DEFAULT TRUE,
			email_notifications_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			email_address TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE notification_log (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			fixed_deposit_id VARCHAR(36) NOT NULL,
			notification_type VARCHAR(20) NOT NULL,
			status VARCHAR(10) NOT NULL,
			created_at DATETIME NOT NULL,
			displayed_at DATETIME,
			dismissed_at DATETIME,
			FOREIGN KEY(fixed_deposit_id) REFERENCES fixed_deposit(id) ON DELETE CASCADE
		);
		CREATE INDEX idx_notification_log_deposit ON notification_log(fixed_deposit_id, notification_type);
	`
	_, err := db.Exec(schema)
	return err
}
