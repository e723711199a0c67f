package approval

import (
	"context"
	"errors"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/fieldhr/hr-backend-go/internal/domain/employee"
)

const attendanceFinalStatus = "present"

// markFinalized applies the in-memory side of finalization, before the
// request is persisted. For attendance that means stamping the final status
// on the detail payload. It must be called exactly once, at the transition
// into an approved terminal state.
func markFinalized(request *approval.Request) {
	if request.Kind == approval.KindAttendance && request.Attendance != nil {
		status := attendanceFinalStatus
		request.Attendance.FinalStatus = &status
	}
}

// deductLeaveBalance applies the persistent side of finalization and must
// run in the same transaction as the write that moved the request to
// approved, so a lost concurrent update rolls the deduction back too.
// Unpaid leave never touches the ledger.
func (s *ApprovalServiceImpl) deductLeaveBalance(ctx context.Context, request approval.Request) error {
	if request.Kind != approval.KindLeave || request.Leave == nil {
		return nil
	}
	if request.Leave.LeaveKind == approval.LeaveKindUnpaid {
		return nil
	}

	err := s.EmployeeRepository.DecrementLeaveBalance(ctx, request.EmployeeID, request.Leave.LeaveKind, request.Leave.DayCount)
	if errors.Is(err, employee.ErrInsufficientBalance) {
		return approval.ErrInsufficientBalance
	}
	return err
}
