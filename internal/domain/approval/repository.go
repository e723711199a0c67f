package approval

import (
	"context"
)

// RequestRepository defines data access for approval request envelopes.
type RequestRepository interface {
	// Create persists a new request. Attendance requests are subject to a
	// unique (employee_id, date) constraint; a second submission for the
	// same day returns ErrDuplicateSubmission.
	Create(ctx context.Context, request Request) (Request, error)

	// GetByID retrieves a request including its current Revision token
	GetByID(ctx context.Context, id string) (Request, error)

	// UpdateDecision persists the status, current approver, log and payload
	// of a decided request, conditional on the Revision the request was
	// read at. A concurrent writer having bumped the revision yields
	// ErrStaleState and no change.
	UpdateDecision(ctx context.Context, request Request) error

	// HasPendingLeave reports whether the employee has an unresolved leave
	// request; at most one may be in flight at a time.
	HasPendingLeave(ctx context.Context, employeeID string) (bool, error)

	// ListPendingForApprover retrieves requests currently waiting on the
	// given approver
	ListPendingForApprover(ctx context.Context, approverID string, filter ListFilter) ([]Request, int64, error)

	// ListHistoryForApprover retrieves requests the approver has acted on,
	// optionally filtered by terminal status
	ListHistoryForApprover(ctx context.Context, approverID string, status *Status, filter ListFilter) ([]Request, int64, error)
}

// WorkPolicyRepository resolves the attendance policy an employee's site is
// configured with.
type WorkPolicyRepository interface {
	// GetByEmployeeID returns ErrPolicyNotConfigured when the employee has
	// no policy assignment.
	GetByEmployeeID(ctx context.Context, employeeID string) (WorkPolicy, error)
}

// TxRunner runs a function inside a database transaction; repository calls
// made with the ctx it passes join that transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
