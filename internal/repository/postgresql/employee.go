package postgresql

import (
	"context"
	"fmt"

	"github.com/fieldhr/hr-backend-go/internal/domain/employee"
	"github.com/fieldhr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, email, position, approval_hierarchy, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.Position,
		&emp.ApprovalHierarchy, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	balanceQuery := `
		SELECT kind, balance
		FROM leave_balances
		WHERE employee_id = $1
	`

	rows, err := q.Query(ctx, balanceQuery, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get leave balances: %w", err)
	}
	defer rows.Close()

	emp.LeaveBalances = make(map[string]int)
	for rows.Next() {
		var kind string
		var balance int
		if err := rows.Scan(&kind, &balance); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		emp.LeaveBalances[kind] = balance
	}
	if err := rows.Err(); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to read leave balances: %w", err)
	}

	return emp, nil
}

// ListByIDs implements employee.EmployeeRepository.
func (e *employeeRepository) ListByIDs(ctx context.Context, ids []string) (map[string]employee.Employee, error) {
	if len(ids) == 0 {
		return map[string]employee.Employee{}, nil
	}

	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, email, position, approval_hierarchy, created_at, updated_at
		FROM employees
		WHERE id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	result := make(map[string]employee.Employee)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Email, &emp.Position,
			&emp.ApprovalHierarchy, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		result[emp.ID] = emp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return result, nil
}

// DecrementLeaveBalance implements employee.EmployeeRepository. The balance
// guard lives in the WHERE clause so a concurrent decrement can never push
// the balance below zero.
func (e *employeeRepository) DecrementLeaveBalance(ctx context.Context, employeeID, kind string, days int) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE leave_balances
		SET balance = balance - $3, updated_at = NOW()
		WHERE employee_id = $1
		  AND kind = $2
		  AND balance >= $3
	`

	tag, err := q.Exec(ctx, query, employeeID, kind, days)
	if err != nil {
		return fmt.Errorf("failed to decrement leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrInsufficientBalance
	}

	return nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
