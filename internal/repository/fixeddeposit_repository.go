package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// FixedDepositRepository provides data access methods for the fixed_deposit table.
type FixedDepositRepository struct {
	db *sql.DB
}

// NewFixedDepositRepository creates a new FixedDepositRepository with the provided database connection.
func NewFixedDepositRepository(db *sql.DB) *FixedDepositRepository {
	return &FixedDepositRepository{db: db}
}

// GetFixedDeposits retrieves all fixed deposits ordered by maturity date.
func (r *FixedDepositRepository) GetFixedDeposits() ([]model.FixedDeposit, error) {
	rows, err := r.db.Query(`
        SELECT id, institution_name, account_number, principal_amount, interest_rate,
               start_date, maturity_date, payout_frequency, calculation_method, notes,
               created_at, updated_at
        FROM fixed_deposit
        ORDER BY maturity_date ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed_deposit table: %w", err)
	}
	defer rows.Close()

	deposits := []model.FixedDeposit{}
	for rows.Next() {
		fd, err := scanFixedDeposit(rows)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, fd)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed_deposit table: %w", err)
	}
	return deposits, nil
}

// GetFixedDeposit retrieves a single fixed deposit by ID.
// Returns apperrors.ErrFixedDepositNotFound when no row matches.
func (r *FixedDepositRepository) GetFixedDeposit(id string) (model.FixedDeposit, error) {
	row := r.db.QueryRow(`
        SELECT id, institution_name, account_number, principal_amount, interest_rate,
               start_date, maturity_date, payout_frequency, calculation_method, notes,
               created_at, updated_at
        FROM fixed_deposit
        WHERE id = ?
    `, id)

	fd, err := scanFixedDeposit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.FixedDeposit{}, apperrors.ErrFixedDepositNotFound
	}
	return fd, err
}

// GetMaturingBetween retrieves deposits whose maturity date falls inside
// the inclusive range. The notification generator scans with this.
func (r *FixedDepositRepository) GetMaturingBetween(start, end time.Time) ([]model.FixedDeposit, error) {
	rows, err := r.db.Query(`
        SELECT id, institution_name, account_number, principal_amount, interest_rate,
               start_date, maturity_date, payout_frequency, calculation_method, notes,
               created_at, updated_at
        FROM fixed_deposit
        WHERE maturity_date >= ? AND maturity_date <= ?
        ORDER BY maturity_date ASC
    `, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query maturing fixed deposits: %w", err)
	}
	defer rows.Close()

	deposits := []model.FixedDeposit{}
	for rows.Next() {
		fd, err := scanFixedDeposit(rows)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, fd)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed_deposit table: %w", err)
	}
	return deposits, nil
}

// CreateFixedDeposit inserts a new fixed deposit row.
func (r *FixedDepositRepository) CreateFixedDeposit(fd model.FixedDeposit) error {
	_, err := r.db.Exec(`
        INSERT INTO fixed_deposit (id, institution_name, account_number, principal_amount,
            interest_rate, start_date, maturity_date, payout_frequency, calculation_method,
            notes, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, fd.ID, fd.InstitutionName, fd.AccountNumber, fd.PrincipalAmount, fd.InterestRate,
		fd.StartDate.Format("2006-01-02"), fd.MaturityDate.Format("2006-01-02"),
		fd.PayoutFrequency, fd.CalculationMethod, fd.Notes,
		fd.CreatedAt.Format(time.RFC3339), fd.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert fixed_deposit row: %w", err)
	}
	return nil
}

// UpdateFixedDeposit rewrites the mutable columns of an existing deposit.
func (r *FixedDepositRepository) UpdateFixedDeposit(fd model.FixedDeposit) error {
	result, err := r.db.Exec(`
        UPDATE fixed_deposit
        SET institution_name = ?, account_number = ?, principal_amount = ?, interest_rate = ?,
            start_date = ?, maturity_date = ?, payout_frequency = ?, calculation_method = ?,
            notes = ?, updated_at = ?
        WHERE id = ?
    `, fd.InstitutionName, fd.AccountNumber, fd.PrincipalAmount, fd.InterestRate,
		fd.StartDate.Format("2006-01-02"), fd.MaturityDate.Format("2006-01-02"),
		fd.PayoutFrequency, fd.CalculationMethod, fd.Notes,
		fd.UpdatedAt.Format(time.RFC3339), fd.ID)
	if err != nil {
		return fmt.Errorf("failed to update fixed_deposit row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFixedDepositNotFound
	}
	return nil
}

// DeleteFixedDeposit removes a fixed deposit. Notification logs cascade.
func (r *FixedDepositRepository) DeleteFixedDeposit(id string) error {
	result, err := r.db.Exec(`DELETE FROM fixed_deposit WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fixed_deposit row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFixedDepositNotFound
	}
	return nil
}

func scanFixedDeposit(row rowScanner) (model.FixedDeposit, error) {
	var fd model.FixedDeposit
	var startDate, maturityDate, createdAt, updatedAt string
	err := row.Scan(&fd.ID, &fd.InstitutionName, &fd.AccountNumber, &fd.PrincipalAmount,
		&fd.InterestRate, &startDate, &maturityDate, &fd.PayoutFrequency,
		&fd.CalculationMethod, &fd.Notes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FixedDeposit{}, err
		}
		return model.FixedDeposit{}, fmt.Errorf("failed to scan fixed_deposit row: %w", err)
	}
	if fd.StartDate, err = ParseTime(startDate); err != nil {
		return model.FixedDeposit{}, err
	}
	if fd.MaturityDate, err = ParseTime(maturityDate); err != nil {
		return model.FixedDeposit{}, err
	}
	if fd.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.FixedDeposit{}, err
	}
	if fd.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.FixedDeposit{}, err
	}
	return fd, nil
}
