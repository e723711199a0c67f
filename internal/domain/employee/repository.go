package employee

import (
	"context"
)

// EmployeeRepository defines data access for employee master data. Employee
// records are created and edited by the HR CRUD surface; this core only reads
// them and mutates leave balances.
type EmployeeRepository interface {
	// GetByID retrieves an employee with hierarchy and leave balances loaded
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListByIDs retrieves employees by ID for display-name resolution
	ListByIDs(ctx context.Context, ids []string) (map[string]Employee, error)

	// DecrementLeaveBalance atomically subtracts days from the balance of a
	// leave kind. Returns ErrInsufficientBalance when the balance would go
	// negative; the balance row is left untouched in that case.
	DecrementLeaveBalance(ctx context.Context, employeeID, kind string, days int) error
}
