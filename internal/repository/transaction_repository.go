package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetTransactions retrieves transactions ordered by date then insertion,
// optionally filtered to one unit trust and an inclusive date range. The
// insertion tiebreak keeps same-day replays deterministic.
func (r *TransactionRepository) GetTransactions(unitTrustID string, startDate, endDate time.Time) ([]model.Transaction, error) {
	if !startDate.IsZero() && !endDate.IsZero() && startDate.After(endDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	query := `
        SELECT id, unit_trust_id, type, units, price_per_unit, date, notes, created_at
        FROM "transaction"
        WHERE 1 = 1
    `
	var args []any
	if unitTrustID != "" {
		query += ` AND unit_trust_id = ?`
		args = append(args, unitTrustID)
	}
	if !startDate.IsZero() {
		query += ` AND date >= ?`
		args = append(args, startDate.Format("2006-01-02"))
	}
	if !endDate.IsZero() {
		query += ` AND date <= ?`
		args = append(args, endDate.Format("2006-01-02"))
	}
	query += ` ORDER BY date ASC, created_at ASC, rowid ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	txns := []model.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}
	return txns, nil
}

// GetTransactionsByTrust retrieves all transactions grouped by unit trust,
// each group in replay order. This is the bulk load the valuation engine
// runs on.
func (r *TransactionRepository) GetTransactionsByTrust() (map[string][]model.Transaction, error) {
	txns, err := r.GetTransactions("", time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	byTrust := make(map[string][]model.Transaction)
	for _, tx := range txns {
		byTrust[tx.UnitTrustID] = append(byTrust[tx.UnitTrustID], tx)
	}
	return byTrust, nil
}

// GetTransaction retrieves a single transaction by ID.
// Returns apperrors.ErrTransactionNotFound when no row matches.
func (r *TransactionRepository) GetTransaction(id string) (model.Transaction, error) {
	row := r.db.QueryRow(`
        SELECT id, unit_trust_id, type, units, price_per_unit, date, notes, created_at
        FROM "transaction"
        WHERE id = ?
    `, id)

	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	return tx, err
}

// CreateTransaction inserts a new transaction row.
func (r *TransactionRepository) CreateTransaction(tx model.Transaction) error {
	_, err := r.db.Exec(`
        INSERT INTO "transaction" (id, unit_trust_id, type, units, price_per_unit, date, notes, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, tx.ID, tx.UnitTrustID, tx.Type, tx.Units, tx.PricePerUnit,
		tx.Date.Format("2006-01-02"), tx.Notes, tx.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert transaction row: %w", err)
	}
	return nil
}

// UpdateTransaction rewrites the mutable columns of an existing transaction.
func (r *TransactionRepository) UpdateTransaction(tx model.Transaction) error {
	result, err := r.db.Exec(`
        UPDATE "transaction"
        SET type = ?, units = ?, price_per_unit = ?, date = ?, notes = ?
        WHERE id = ?
    `, tx.Type, tx.Units, tx.PricePerUnit, tx.Date.Format("2006-01-02"), tx.Notes, tx.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction row.
func (r *TransactionRepository) DeleteTransaction(id string) error {
	result, err := r.db.Exec(`DELETE FROM "transaction" WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var tx model.Transaction
	var dateStr, createdAt string
	err := row.Scan(&tx.ID, &tx.UnitTrustID, &tx.Type, &tx.Units, &tx.PricePerUnit, &dateStr, &tx.Notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to scan transaction row: %w", err)
	}
	if tx.Date, err = ParseTime(dateStr); err != nil {
		return model.Transaction{}, err
	}
	if tx.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}
