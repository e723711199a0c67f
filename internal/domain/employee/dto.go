package employee

import (
	"context"
)

type EmployeeResponse struct {
	ID                string         `json:"id"`
	FullName          string         `json:"full_name"`
	Email             string         `json:"email"`
	Position          *string        `json:"position,omitempty"`
	ApprovalHierarchy []string       `json:"approval_hierarchy"`
	LeaveBalances     map[string]int `json:"leave_balances"`
}

// Service defines employee read operations
type Service interface {
	// GetProfile retrieves an employee with hierarchy and leave balances
	GetProfile(ctx context.Context, id string) (EmployeeResponse, error)
}
