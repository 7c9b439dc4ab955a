package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// PriceRepository provides data access methods for the price table.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new PriceRepository with the provided database connection.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetPrices retrieves prices for one unit trust within an inclusive date
// range, oldest first. Zero start/end times leave that bound open.
func (r *PriceRepository) GetPrices(unitTrustID string, startDate, endDate time.Time) ([]model.Price, error) {
	if !startDate.IsZero() && !endDate.IsZero() && startDate.After(endDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	query := `
        SELECT id, unit_trust_id, date, price, created_at
        FROM price
        WHERE unit_trust_id = ?
    `
	args := []any{unitTrustID}
	if !startDate.IsZero() {
		query += ` AND date >= ?`
		args = append(args, startDate.Format("2006-01-02"))
	}
	if !endDate.IsZero() {
		query += ` AND date <= ?`
		args = append(args, endDate.Format("2006-01-02"))
	}
	query += ` ORDER BY date ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query price table: %w", err)
	}
	defer rows.Close()

	prices := []model.Price{}
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price table: %w", err)
	}
	return prices, nil
}

// GetPricesByTrust retrieves all prices grouped by unit trust, each group
// sorted oldest first. This is the bulk load the valuation engine runs on.
func (r *PriceRepository) GetPricesByTrust() (map[string][]model.Price, error) {
	rows, err := r.db.Query(`
        SELECT id, unit_trust_id, date, price, created_at
        FROM price
        ORDER BY unit_trust_id ASC, date ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query price table: %w", err)
	}
	defer rows.Close()

	byTrust := make(map[string][]model.Price)
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}
		byTrust[p.UnitTrustID] = append(byTrust[p.UnitTrustID], p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price table: %w", err)
	}
	return byTrust, nil
}

// GetLatestPrices retrieves the most recent price per unit trust.
func (r *PriceRepository) GetLatestPrices() (map[string]model.Price, error) {
	rows, err := r.db.Query(`
        SELECT p.id, p.unit_trust_id, p.date, p.price, p.created_at
        FROM price p
        INNER JOIN (
            SELECT unit_trust_id, MAX(date) AS latest_date
            FROM price
            GROUP BY unit_trust_id
        ) latest ON p.unit_trust_id = latest.unit_trust_id AND p.date = latest.latest_date
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest prices: %w", err)
	}
	defer rows.Close()

	latest := make(map[string]model.Price)
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}
		latest[p.UnitTrustID] = p
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price table: %w", err)
	}
	return latest, nil
}

// GetPrice retrieves a single price row by ID.
// Returns apperrors.ErrPriceNotFound when no row matches.
func (r *PriceRepository) GetPrice(id string) (model.Price, error) {
	row := r.db.QueryRow(`
        SELECT id, unit_trust_id, date, price, created_at
        FROM price
        WHERE id = ?
    `, id)

	p, err := scanPrice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Price{}, apperrors.ErrPriceNotFound
	}
	return p, err
}

// PriceExists reports whether a price is already recorded for the unit
// trust on the given date.
func (r *PriceRepository) PriceExists(unitTrustID string, date time.Time) (bool, error) {
	var count int
	err := r.db.QueryRow(`
        SELECT COUNT(*) FROM price WHERE unit_trust_id = ? AND date = ?
    `, unitTrustID, date.Format("2006-01-02")).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check price existence: %w", err)
	}
	return count > 0, nil
}

// CreatePrice inserts a new price row.
func (r *PriceRepository) CreatePrice(p model.Price) error {
	_, err := r.db.Exec(`
        INSERT INTO price (id, unit_trust_id, date, price, created_at)
        VALUES (?, ?, ?, ?, ?)
    `, p.ID, p.UnitTrustID, p.Date.Format("2006-01-02"), p.Price, p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert price row: %w", err)
	}
	return nil
}

// BulkCreatePrices inserts a batch of prices in one statement, silently
// skipping (unit_trust_id, date) pairs that already exist. Returns the
// number of rows actually inserted.
func (r *PriceRepository) BulkCreatePrices(prices []model.Price) (int, error) {
	if len(prices) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(prices))
	args := make([]any, 0, len(prices)*5)
	for i, p := range prices {
		placeholders[i] = "(?, ?, ?, ?, ?)"
		args = append(args, p.ID, p.UnitTrustID, p.Date.Format("2006-01-02"), p.Price, p.CreatedAt.Format(time.RFC3339))
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
        INSERT OR IGNORE INTO price (id, unit_trust_id, date, price, created_at)
        VALUES ` + strings.Join(placeholders, ", ")

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert price rows: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return int(inserted), nil
}

// UpdatePrice rewrites the price value of an existing row.
func (r *PriceRepository) UpdatePrice(id string, price float64) error {
	result, err := r.db.Exec(`UPDATE price SET price = ? WHERE id = ?`, price, id)
	if err != nil {
		return fmt.Errorf("failed to update price row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPriceNotFound
	}
	return nil
}

// DeletePrice removes a price row.
func (r *PriceRepository) DeletePrice(id string) error {
	result, err := r.db.Exec(`DELETE FROM price WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete price row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPriceNotFound
	}
	return nil
}

func scanPrice(row rowScanner) (model.Price, error) {
	var p model.Price
	var dateStr, createdAt string
	err := row.Scan(&p.ID, &p.UnitTrustID, &dateStr, &p.Price, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Price{}, err
		}
		return model.Price{}, fmt.Errorf("failed to scan price row: %w", err)
	}
	if p.Date, err = ParseTime(dateStr); err != nil {
		return model.Price{}, err
	}
	if p.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Price{}, err
	}
	return p, nil
}
