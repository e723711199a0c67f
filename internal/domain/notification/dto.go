package notification

import "context"

type NotificationResponse struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	ReadAt    *string                `json:"read_at,omitempty"`
	CreatedAt string                 `json:"created_at"`
}

type ListNotificationsResponse struct {
	TotalCount    int                    `json:"total_count"`
	UnreadCount   int                    `json:"unread_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	Notifications []NotificationResponse `json:"notifications"`
}

type MarkReadRequest struct {
	IDs []string `json:"ids"`
}

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// Service defines notification business logic
type Service interface {
	// NotifyApproverOfPending informs an approver that a request is now
	// waiting on them
	NotifyApproverOfPending(ctx context.Context, approverID, requestID, employeeName, kind string)

	// NotifySubmitterOfOutcome informs the submitting employee of a
	// terminal decision
	NotifySubmitterOfOutcome(ctx context.Context, employeeID, requestID, kind string, approved bool)

	ListFor(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) (ListNotificationsResponse, error)
	MarkRead(ctx context.Context, recipientID string, ids []string) error
	MarkAllRead(ctx context.Context, recipientID string) error
}
