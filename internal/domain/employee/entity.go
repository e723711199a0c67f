package employee

import (
	"time"
)

type Employee struct {
	ID       string
	FullName string
	Email    string
	Position *string

	// ApprovalHierarchy is the ordered list of approver employee IDs that
	// must act, in order, on this employee's submissions. Empty means
	// submissions are approved automatically.
	ApprovalHierarchy []string

	// LeaveBalances maps a leave kind to the remaining day count.
	LeaveBalances map[string]int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasApprovers reports whether any approval step is configured.
func (e Employee) HasApprovers() bool {
	return len(e.ApprovalHierarchy) > 0
}

// BalanceFor returns the remaining balance for a leave kind, zero when the
// kind has never been granted.
func (e Employee) BalanceFor(kind string) int {
	if e.LeaveBalances == nil {
		return 0
	}
	return e.LeaveBalances[kind]
}
