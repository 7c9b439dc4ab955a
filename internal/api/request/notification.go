package request

type UpdateNotificationSettingsRequest struct {
	NotifyDaysBefore30        *bool   `json:"notifyDaysBefore30,omitempty"`
	NotifyDaysBefore7         *bool   `json:"notifyDaysBefore7,omitempty"`
	NotifyOnMaturity          *bool   `json:"notifyOnMaturity,omitempty"`
	EmailNotificationsEnabled *bool   `json:"emailNotificationsEnabled,omitempty"`
	EmailAddress              *string `json:"emailAddress,omitempty"`
}
