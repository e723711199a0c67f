package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fieldhr/hr-backend-go/internal/domain/notification"
	"github.com/fieldhr/hr-backend-go/internal/pkg/sse"
	"github.com/google/uuid"
)

type service struct {
	repo notification.Repository
	hub  *sse.Hub
}

// NewNotificationService creates a notification service backed by the given
// repository and SSE hub
func NewNotificationService(repo notification.Repository, hub *sse.Hub) notification.Service {
	return &service{repo: repo, hub: hub}
}

// NotifyApproverOfPending implements notification.Service. Delivery is best
// effort: a failed insert is logged, never propagated into the approval
// flow that triggered it.
func (s *service) NotifyApproverOfPending(ctx context.Context, approverID, requestID, employeeName, kind string) {
	s.deliver(ctx, &notification.Notification{
		ID:          uuid.New().String(),
		RecipientID: approverID,
		Type:        notification.TypeApprovalRequested,
		Title:       "Approval needed",
		Message:     fmt.Sprintf("%s submitted a %s request waiting on your approval", employeeName, kind),
		Data: map[string]interface{}{
			"request_id": requestID,
			"kind":       kind,
		},
		CreatedAt: time.Now().UTC(),
	})
}

// NotifySubmitterOfOutcome implements notification.Service.
func (s *service) NotifySubmitterOfOutcome(ctx context.Context, employeeID, requestID, kind string, approved bool) {
	notifType := notification.TypeRequestApproved
	title := "Request approved"
	message := fmt.Sprintf("Your %s request has been approved", kind)
	if !approved {
		notifType = notification.TypeRequestRejected
		title = "Request rejected"
		message = fmt.Sprintf("Your %s request has been rejected", kind)
	}

	s.deliver(ctx, &notification.Notification{
		ID:          uuid.New().String(),
		RecipientID: employeeID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Data: map[string]interface{}{
			"request_id": requestID,
			"kind":       kind,
			"approved":   approved,
		},
		CreatedAt: time.Now().UTC(),
	})
}

func (s *service) deliver(ctx context.Context, n *notification.Notification) {
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("[NotificationService] Failed to insert notification for %s: %v", n.RecipientID, err)
		return
	}

	s.hub.Publish(n.RecipientID, sse.Event{
		EmployeeID: n.RecipientID,
		Event:      "notification",
		Data:       s.toResponse(n),
	})
}

// ListFor implements notification.Service.
func (s *service) ListFor(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) (notification.ListNotificationsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, total, err := s.repo.GetByRecipient(ctx, recipientID, page, limit, unreadOnly)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	unreadCount, err := s.repo.GetUnreadCount(ctx, recipientID)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	responses := make([]notification.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = s.toResponse(n)
	}

	return notification.ListNotificationsResponse{
		TotalCount:    total,
		UnreadCount:   unreadCount,
		Page:          page,
		Limit:         limit,
		Notifications: responses,
	}, nil
}

// MarkRead implements notification.Service.
func (s *service) MarkRead(ctx context.Context, recipientID string, ids []string) error {
	return s.repo.MarkAsRead(ctx, ids, recipientID)
}

// MarkAllRead implements notification.Service.
func (s *service) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.repo.MarkAllAsRead(ctx, recipientID)
}

// toResponse converts a Notification entity to NotificationResponse
func (s *service) toResponse(n *notification.Notification) notification.NotificationResponse {
	var readAt *string
	if n.ReadAt != nil {
		r := n.ReadAt.Format(time.RFC3339)
		readAt = &r
	}

	return notification.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		ReadAt:    readAt,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
