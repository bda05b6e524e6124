package dto

import (
	"reception/shared/timezone"
	"time"
)

const (
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeUrgent  = "urgent"
)

const (
	ChannelPush  = "push"
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Notification is the payload published to the notifications topic. Delivery
// channels consume it downstream, this service only produces.
type Notification struct {
	Department string    `json:"department,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Channels   []string  `json:"channels,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

func NewDepartmentNotification(department, title, message, notifType string) Notification {
	return Notification{
		Department: department,
		Title:      title,
		Message:    message,
		Type:       notifType,
		SentAt:     timezone.Now(),
	}
}

func NewUserNotification(userID, title, message, notifType string, channels []string) Notification {
	return Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Type:     notifType,
		Channels: channels,
		SentAt:   timezone.Now(),
	}
}
