package model

import "time"

// Notification type values for fixed deposit maturity alerts.
const (
	NotificationMaturity30Days = "maturity_30_days"
	NotificationMaturity7Days  = "maturity_7_days"
	NotificationMaturityToday  = "maturity_today"
)

// Notification status values.
const (
	NotificationPending   = "pending"
	NotificationDisplayed = "displayed"
	NotificationDismissed = "dismissed"
)

// NotificationSetting holds the user's maturity notification preferences.
// A single row (id=1) exists; defaults are created on first read.
// The e-mail address is stored fernet-encrypted at rest.
type NotificationSetting struct {
	ID                        int    `json:"id"`
	NotifyDaysBefore30        bool   `json:"notifyDaysBefore30"`
	NotifyDaysBefore7         bool   `json:"notifyDaysBefore7"`
	NotifyOnMaturity          bool   `json:"notifyOnMaturity"`
	EmailNotificationsEnabled bool   `json:"emailNotificationsEnabled"`
	EmailAddress              string `json:"emailAddress,omitempty"`
}

// NotificationLog tracks a single generated notification for a fixed deposit.
type NotificationLog struct {
	ID               string     `json:"id"`
	FixedDepositID   string     `json:"fixedDepositId"`
	NotificationType string     `json:"notificationType"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	DisplayedAt      *time.Time `json:"displayedAt"`
	DismissedAt      *time.Time `json:"dismissedAt"`
}

// NotificationWithDeposit is a pending notification joined with the fixed
// deposit details needed to render it.
type NotificationWithDeposit struct {
	NotificationLog
	InstitutionName string  `json:"institutionName"`
	AccountNumber   string  `json:"accountNumber"`
	PrincipalAmount float64 `json:"principalAmount"`
	MaturityDate    string  `json:"maturityDate"`
	InterestRate    float64 `json:"interestRate"`
}
