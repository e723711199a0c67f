package employee

import (
	"context"

	"github.com/fieldhr/hr-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

// NewEmployeeService creates an employee read service
func NewEmployeeService(repo employee.EmployeeRepository) employee.Service {
	return &EmployeeServiceImpl{EmployeeRepository: repo}
}

// GetProfile implements employee.Service.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.EmployeeResponse{
		ID:                emp.ID,
		FullName:          emp.FullName,
		Email:             emp.Email,
		Position:          emp.Position,
		ApprovalHierarchy: emp.ApprovalHierarchy,
		LeaveBalances:     emp.LeaveBalances,
	}, nil
}
