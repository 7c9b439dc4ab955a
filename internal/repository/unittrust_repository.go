package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// UnitTrustRepository provides data access methods for the unit_trust table.
type UnitTrustRepository struct {
	db *sql.DB
}

// NewUnitTrustRepository creates a new UnitTrustRepository with the provided database connection.
func NewUnitTrustRepository(db *sql.DB) *UnitTrustRepository {
	return &UnitTrustRepository{db: db}
}

// GetUnitTrusts retrieves all unit trusts ordered by name.
// Returns an empty slice if none exist.
func (r *UnitTrustRepository) GetUnitTrusts() ([]model.UnitTrust, error) {
	rows, err := r.db.Query(`
        SELECT id, name, symbol, description, provider, created_at
        FROM unit_trust
        ORDER BY name ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit_trust table: %w", err)
	}
	defer rows.Close()

	trusts := []model.UnitTrust{}
	for rows.Next() {
		ut, err := scanUnitTrust(rows)
		if err != nil {
			return nil, err
		}
		trusts = append(trusts, ut)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit_trust table: %w", err)
	}
	return trusts, nil
}

// GetUnitTrust retrieves a single unit trust by ID.
// Returns apperrors.ErrUnitTrustNotFound when no row matches.
func (r *UnitTrustRepository) GetUnitTrust(id string) (model.UnitTrust, error) {
	row := r.db.QueryRow(`
        SELECT id, name, symbol, description, provider, created_at
        FROM unit_trust
        WHERE id = ?
    `, id)

	ut, err := scanUnitTrust(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UnitTrust{}, apperrors.ErrUnitTrustNotFound
	}
	return ut, err
}

// SymbolExists reports whether another unit trust already uses the symbol.
// excludeID lets updates skip the row being edited.
func (r *UnitTrustRepository) SymbolExists(symbol, excludeID string) (bool, error) {
	var count int
	err := r.db.QueryRow(`
        SELECT COUNT(*) FROM unit_trust WHERE symbol = ? AND id != ?
    `, symbol, excludeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check symbol uniqueness: %w", err)
	}
	return count > 0, nil
}

// CreateUnitTrust inserts a new unit trust row.
func (r *UnitTrustRepository) CreateUnitTrust(ut model.UnitTrust) error {
	_, err := r.db.Exec(`
        INSERT INTO unit_trust (id, name, symbol, description, provider, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, ut.ID, ut.Name, ut.Symbol, ut.Description, ut.Provider, ut.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert unit_trust row: %w", err)
	}
	return nil
}

// UpdateUnitTrust rewrites the mutable columns of an existing unit trust.
func (r *UnitTrustRepository) UpdateUnitTrust(ut model.UnitTrust) error {
	result, err := r.db.Exec(`
        UPDATE unit_trust
        SET name = ?, symbol = ?, description = ?, provider = ?
        WHERE id = ?
    `, ut.Name, ut.Symbol, ut.Description, ut.Provider, ut.ID)
	if err != nil {
		return fmt.Errorf("failed to update unit_trust row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUnitTrustNotFound
	}
	return nil
}

// DeleteUnitTrust removes a unit trust. Prices and transactions cascade.
func (r *UnitTrustRepository) DeleteUnitTrust(id string) error {
	result, err := r.db.Exec(`DELETE FROM unit_trust WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete unit_trust row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUnitTrustNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUnitTrust(row rowScanner) (model.UnitTrust, error) {
	var ut model.UnitTrust
	var createdAt string
	err := row.Scan(&ut.ID, &ut.Name, &ut.Symbol, &ut.Description, &ut.Provider, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.UnitTrust{}, err
		}
		return model.UnitTrust{}, fmt.Errorf("failed to scan unit_trust row: %w", err)
	}
	ut.CreatedAt, err = ParseTime(createdAt)
	if err != nil {
		return model.UnitTrust{}, err
	}
	return ut, nil
}
