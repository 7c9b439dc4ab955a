package service

import (
	"fmt"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
	"github.com/gayaldassanayake/portfolio-manager/internal/repository"
	"github.com/gayaldassanayake/portfolio-manager/internal/secrets"
	"github.com/google/uuid"
)

// notificationWindow defines how many days before maturity a
// notification type fires. Windows are ranges rather than exact offsets
// so a skipped generation run still catches the deposit.
type notificationWindow struct {
	notificationType string
	minDays          int
	maxDays          int
	enabled          func(model.NotificationSetting) bool
}

var notificationWindows = []notificationWindow{
	{model.NotificationMaturity30Days, 28, 32, func(s model.NotificationSetting) bool { return s.NotifyDaysBefore30 }},
	{model.NotificationMaturity7Days, 5, 9, func(s model.NotificationSetting) bool { return s.NotifyDaysBefore7 }},
	{model.NotificationMaturityToday, 0, 1, func(s model.NotificationSetting) bool { return s.NotifyOnMaturity }},
}

// NotificationService handles maturity notification generation and the
// notification settings, with the e-mail address encrypted at rest.
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	fixedDepositRepo *repository.FixedDepositRepository
	vault            *secrets.Vault
}

// NewNotificationService creates a new NotificationService with the provided dependencies.
// The vault may be nil, in which case the e-mail address is stored in plaintext.
func NewNotificationService(
	notificationRepo *repository.NotificationRepository,
	fixedDepositRepo *repository.FixedDepositRepository,
	vault *secrets.Vault,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		fixedDepositRepo: fixedDepositRepo,
		vault:            vault,
	}
}

// GenerateNotifications scans deposits maturing inside any enabled
// window and creates pending log entries. At most one notification of
// each type exists per deposit, so repeated runs are harmless.
func (s *NotificationService) GenerateNotifications(now time.Time) (int, error) {
	settings, err := s.notificationRepo.GetSettings()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, window := range notificationWindows {
		if !window.enabled(settings) {
			continue
		}
		start := now.AddDate(0, 0, window.minDays)
		end := now.AddDate(0, 0, window.maxDays)
		deposits, err := s.fixedDepositRepo.GetMaturingBetween(start, end)
		if err != nil {
			return created, err
		}
		for _, fd := range deposits {
			exists, err := s.notificationRepo.NotificationExists(fd.ID, window.notificationType)
			if err != nil {
				return created, err
			}
			if exists {
				continue
			}
			err = s.notificationRepo.CreateNotification(model.NotificationLog{
				ID:               uuid.New().String(),
				FixedDepositID:   fd.ID,
				NotificationType: window.notificationType,
				Status:           model.NotificationPending,
				CreatedAt:        now.UTC(),
			})
			if err != nil {
				return created, fmt.Errorf("failed to create notification for deposit %s: %w", fd.ID, err)
			}
			created++
		}
	}
	return created, nil
}

// GetNotifications retrieves notifications joined with deposit details,
// optionally filtered by status.
func (s *NotificationService) GetNotifications(status string) ([]model.NotificationWithDeposit, error) {
	return s.notificationRepo.GetNotifications(status)
}

// MarkDisplayed transitions every pending notification to displayed.
// The UI calls this after rendering the pending set.
func (s *NotificationService) MarkDisplayed() error {
	return s.notificationRepo.MarkDisplayed(time.Now().UTC())
}

// DismissNotification transitions one notification to dismissed.
func (s *NotificationService) DismissNotification(id string) error {
	return s.notificationRepo.DismissNotification(id, time.Now().UTC())
}

// GetSettings retrieves the notification settings with the e-mail
// address decrypted for display.
func (s *NotificationService) GetSettings() (model.NotificationSetting, error) {
	settings, err := s.notificationRepo.GetSettings()
	if err != nil {
		return model.NotificationSetting{}, err
	}
	settings.EmailAddress, err = s.vault.DecryptString(settings.EmailAddress)
	if err != nil {
		return model.NotificationSetting{}, fmt.Errorf("failed to decrypt email address: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies the provided fields to the settings singleton,
// encrypting a new e-mail address before storage.
func (s *NotificationService) UpdateSettings(req request.UpdateNotificationSettingsRequest) (model.NotificationSetting, error) {
	settings, err := s.notificationRepo.GetSettings()
	if err != nil {
		return model.NotificationSetting{}, err
	}

	if req.NotifyDaysBefore30 != nil {
		settings.NotifyDaysBefore30 = *req.NotifyDaysBefore30
	}
	if req.NotifyDaysBefore7 != nil {
		settings.NotifyDaysBefore7 = *req.NotifyDaysBefore7
	}
	if req.NotifyOnMaturity != nil {
		settings.NotifyOnMaturity = *req.NotifyOnMaturity
	}
	if req.EmailNotificationsEnabled != nil {
		settings.EmailNotificationsEnabled = *req.EmailNotificationsEnabled
	}
	if req.EmailAddress != nil {
		settings.EmailAddress, err = s.vault.EncryptString(*req.EmailAddress)
		if err != nil {
			return model.NotificationSetting{}, fmt.Errorf("failed to encrypt email address: %w", err)
		}
	}

	if err := s.notificationRepo.SaveSettings(settings); err != nil {
		return model.NotificationSetting{}, err
	}

	settings.EmailAddress, err = s.vault.DecryptString(settings.EmailAddress)
	if err != nil {
		return model.NotificationSetting{}, fmt.Errorf("failed to decrypt email address: %w", err)
	}
	return settings, nil
}
