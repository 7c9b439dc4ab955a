package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
)

// NotificationRepository provides data access methods for the
// notification_setting and notification_log tables.
type NotificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new NotificationRepository with the provided database connection.
func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// GetSettings retrieves the singleton settings row. The row is created
// with defaults on first access, so callers always get a value back.
func (r *NotificationRepository) GetSettings() (model.NotificationSetting, error) {
	var s model.NotificationSetting
	err := r.db.QueryRow(`
        SELECT id, notify_days_before_30, notify_days_before_7, notify_on_maturity,
               email_notifications_enabled, email_address
        FROM notification_setting
        WHERE id = 1
    `).Scan(&s.ID, &s.NotifyDaysBefore30, &s.NotifyDaysBefore7, &s.NotifyOnMaturity,
		&s.EmailNotificationsEnabled, &s.EmailAddress)
	if errors.Is(err, sql.ErrNoRows) {
		defaults := model.NotificationSetting{
			ID:                 1,
			NotifyDaysBefore30: true,
			NotifyDaysBefore7:  true,
			NotifyOnMaturity:   true,
		}
		if err := r.SaveSettings(defaults); err != nil {
			return model.NotificationSetting{}, err
		}
		return defaults, nil
	}
	if err != nil {
		return model.NotificationSetting{}, fmt.Errorf("failed to query notification_setting table: %w", err)
	}
	return s, nil
}

// SaveSettings upserts the singleton settings row.
func (r *NotificationRepository) SaveSettings(s model.NotificationSetting) error {
	_, err := r.db.Exec(`
        INSERT INTO notification_setting (id, notify_days_before_30, notify_days_before_7,
            notify_on_maturity, email_notifications_enabled, email_address)
        VALUES (1, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            notify_days_before_30 = excluded.notify_days_before_30,
            notify_days_before_7 = excluded.notify_days_before_7,
            notify_on_maturity = excluded.notify_on_maturity,
            email_notifications_enabled = excluded.email_notifications_enabled,
            email_address = excluded.email_address
    `, s.NotifyDaysBefore30, s.NotifyDaysBefore7, s.NotifyOnMaturity,
		s.EmailNotificationsEnabled, s.EmailAddress)
	if err != nil {
		return fmt.Errorf("failed to save notification settings: %w", err)
	}
	return nil
}

// GetNotifications retrieves notification logs joined with their deposit
// details, newest first, optionally filtered by status.
func (r *NotificationRepository) GetNotifications(status string) ([]model.NotificationWithDeposit, error) {
	query := `
        SELECT n.id, n.fixed_deposit_id, n.notification_type, n.status,
               n.created_at, n.displayed_at, n.dismissed_at,
               fd.institution_name, fd.account_number, fd.principal_amount,
               fd.maturity_date, fd.interest_rate
        FROM notification_log n
        INNER JOIN fixed_deposit fd ON fd.id = n.fixed_deposit_id
    `
	var args []any
	if status != "" {
		query += ` WHERE n.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY n.created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notification_log table: %w", err)
	}
	defer rows.Close()

	notifications := []model.NotificationWithDeposit{}
	for rows.Next() {
		var n model.NotificationWithDeposit
		var createdAt string
		var displayedAt, dismissedAt sql.NullString
		err := rows.Scan(&n.ID, &n.FixedDepositID, &n.NotificationType, &n.Status,
			&createdAt, &displayedAt, &dismissedAt,
			&n.InstitutionName, &n.AccountNumber, &n.PrincipalAmount,
			&n.MaturityDate, &n.InterestRate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification_log row: %w", err)
		}
		if n.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}
		if n.DisplayedAt, err = parseNullTime(displayedAt); err != nil {
			return nil, err
		}
		if n.DismissedAt, err = parseNullTime(dismissedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification_log table: %w", err)
	}
	return notifications, nil
}

// NotificationExists reports whether a log entry of the given type already
// exists for the deposit. Generation dedups on this.
func (r *NotificationRepository) NotificationExists(fixedDepositID, notificationType string) (bool, error) {
	var count int
	err := r.db.QueryRow(`
        SELECT COUNT(*) FROM notification_log
        WHERE fixed_deposit_id = ? AND notification_type = ?
    `, fixedDepositID, notificationType).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check notification existence: %w", err)
	}
	return count > 0, nil
}

// CreateNotification inserts a new log entry.
func (r *NotificationRepository) CreateNotification(n model.NotificationLog) error {
	_, err := r.db.Exec(`
        INSERT INTO notification_log (id, fixed_deposit_id, notification_type, status, created_at)
        VALUES (?, ?, ?, ?, ?)
    `, n.ID, n.FixedDepositID, n.NotificationType, n.Status, n.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert notification_log row: %w", err)
	}
	return nil
}

// MarkDisplayed transitions all pending notifications to displayed.
func (r *NotificationRepository) MarkDisplayed(at time.Time) error {
	_, err := r.db.Exec(`
        UPDATE notification_log
        SET status = ?, displayed_at = ?
        WHERE status = ?
    `, model.NotificationDisplayed, at.Format(time.RFC3339), model.NotificationPending)
	if err != nil {
		return fmt.Errorf("failed to mark notifications displayed: %w", err)
	}
	return nil
}

// DismissNotification transitions a single notification to dismissed.
// Returns apperrors.ErrNotificationNotFound when no row matches.
func (r *NotificationRepository) DismissNotification(id string, at time.Time) error {
	result, err := r.db.Exec(`
        UPDATE notification_log
        SET status = ?, dismissed_at = ?
        WHERE id = ?
    `, model.NotificationDismissed, at.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to dismiss notification: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

func parseNullTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := ParseTime(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
