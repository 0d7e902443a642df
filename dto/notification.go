package dto

import "time"

type NotificationPreferences struct {
	DailyReminder     bool   `json:"daily_reminder"`
	ReminderTime      string `json:"reminder_time" validate:"omitempty,len=5"` // HH:MM
	StreakAlerts      bool   `json:"streak_alerts"`
	CommunityActivity bool   `json:"community_activity"`
}

func (p NotificationPreferences) Validate() error {
	return GetValidator().Struct(p)
}

type PushTokenRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

func (r PushTokenRequest) Validate() error {
	return GetValidator().Struct(r)
}

type NotificationHistoryItem struct {
	ID     string    `json:"id" validate:"required"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
	Read   bool      `json:"read"`
}

type NotificationHistoryResponse struct {
	Notifications []NotificationHistoryItem `json:"notifications" validate:"dive"`
}
