package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeApprovalRequested NotificationType = "approval_requested"
	TypeApprovalAdvanced  NotificationType = "approval_advanced"
	TypeRequestApproved   NotificationType = "request_approved"
	TypeRequestRejected   NotificationType = "request_rejected"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
