package approval

import (
	"context"
)

// Service defines the approval workflow operations
type Service interface {
	// SubmitAttendance validates a field check-in against the employee's
	// work policy, runs the justification gate and creates the approval
	// request. Returns *BlockedError when justification is required.
	SubmitAttendance(ctx context.Context, req SubmitAttendanceRequest) (RequestResponse, error)

	// SubmitLeave creates a leave approval request after the balance and
	// duplicate-pending pre-checks
	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (RequestResponse, error)

	// Decide records one approver decision and advances the chain; the
	// terminal approval triggers the one-time finalization side effect
	Decide(ctx context.Context, req DecideRequest) (RequestResponse, error)

	// GetRequest retrieves a single request by ID
	GetRequest(ctx context.Context, id string) (RequestResponse, error)

	// ListPendingFor retrieves requests currently waiting on an approver
	ListPendingFor(ctx context.Context, approverID string, filter ListFilter) (ListRequestsResponse, error)

	// ListHistoryFor retrieves requests the approver has acted on
	ListHistoryFor(ctx context.Context, approverID string, status string, filter ListFilter) (ListRequestsResponse, error)
}
