package approval

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/fieldhr/hr-backend-go/internal/domain/employee"
	"github.com/fieldhr/hr-backend-go/internal/domain/notification"
)

type ApprovalServiceImpl struct {
	tx approval.TxRunner
	approval.RequestRepository
	approval.WorkPolicyRepository
	employee.EmployeeRepository
	notifier notification.Service
}

// SubmitAttendance implements approval.Service.
func (s *ApprovalServiceImpl) SubmitAttendance(ctx context.Context, req approval.SubmitAttendanceRequest) (approval.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.RequestResponse{}, err
	}

	checkedInAt := time.Now().UTC()
	if req.CheckedInAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.CheckedInAt)
		if err != nil {
			return approval.RequestResponse{}, fmt.Errorf("failed to parse checked_in_at: %w", err)
		}
		checkedInAt = parsed.UTC()
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return approval.RequestResponse{}, err
	}

	policy, err := s.WorkPolicyRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return approval.RequestResponse{}, err
	}

	verdict, err := EvaluateSubmission(checkedInAt, req.Latitude, req.Longitude, policy)
	if err != nil {
		return approval.RequestResponse{}, err
	}

	if verdict.Violated() && !hasJustification(req.Justification) {
		return approval.RequestResponse{}, &approval.BlockedError{
			IsLate:         verdict.IsLate,
			IsOutOfRange:   verdict.IsOutOfRange,
			DistanceMeters: verdict.DistanceMeters,
		}
	}

	loc, err := time.LoadLocation(policy.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := checkedInAt.In(loc)
	workDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	request := approval.NewRequest(req.EmployeeID, approval.KindAttendance, emp.ApprovalHierarchy, checkedInAt)
	request.Attendance = &approval.AttendanceDetail{
		Date:           workDay,
		CheckInTime:    checkedInAt,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		DistanceMeters: verdict.DistanceMeters,
		IsLate:         verdict.IsLate,
		IsOutOfRange:   verdict.IsOutOfRange,
		Justification:  req.Justification,
	}

	created, err := s.createRequest(ctx, request)
	if err != nil {
		return approval.RequestResponse{}, err
	}

	if created.CurrentApprover != nil && s.notifier != nil {
		s.notifier.NotifyApproverOfPending(ctx, *created.CurrentApprover, created.ID, emp.FullName, string(created.Kind))
	}

	return mapRequestToResponse(created), nil
}

// SubmitLeave implements approval.Service.
func (s *ApprovalServiceImpl) SubmitLeave(ctx context.Context, req approval.SubmitLeaveRequest) (approval.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.RequestResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return approval.RequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return approval.RequestResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return approval.RequestResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	// Inclusive calendar days: a single-day leave counts as 1.
	dayCount := int(endDate.Sub(startDate).Hours()/24) + 1

	hasPending, err := s.RequestRepository.HasPendingLeave(ctx, req.EmployeeID)
	if err != nil {
		return approval.RequestResponse{}, fmt.Errorf("failed to check pending leave: %w", err)
	}
	if hasPending {
		return approval.RequestResponse{}, approval.ErrDuplicatePending
	}

	if req.LeaveKind != approval.LeaveKindUnpaid && dayCount > emp.BalanceFor(req.LeaveKind) {
		return approval.RequestResponse{}, approval.ErrInsufficientBalance
	}

	request := approval.NewRequest(req.EmployeeID, approval.KindLeave, emp.ApprovalHierarchy, time.Now().UTC())
	request.Leave = &approval.LeaveDetail{
		LeaveKind: req.LeaveKind,
		StartDate: startDate,
		EndDate:   endDate,
		DayCount:  dayCount,
		Reason:    req.Reason,
	}

	created, err := s.createRequest(ctx, request)
	if err != nil {
		return approval.RequestResponse{}, err
	}

	if created.CurrentApprover != nil && s.notifier != nil {
		s.notifier.NotifyApproverOfPending(ctx, *created.CurrentApprover, created.ID, emp.FullName, string(created.Kind))
	}

	return mapRequestToResponse(created), nil
}

// createRequest persists a new request. A request born approved (empty
// hierarchy) is finalized in the same transaction as the insert.
func (s *ApprovalServiceImpl) createRequest(ctx context.Context, request approval.Request) (approval.Request, error) {
	if request.Status != approval.StatusApproved {
		return s.RequestRepository.Create(ctx, request)
	}

	markFinalized(&request)

	var created approval.Request
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.RequestRepository.Create(txCtx, request)
		if txErr != nil {
			return txErr
		}
		return s.deductLeaveBalance(txCtx, created)
	})
	if err != nil {
		return approval.Request{}, err
	}
	return created, nil
}

// Decide implements approval.Service. A concurrent decision on the same
// request makes the conditional write fail with ErrStaleState; the loser is
// retried once against the fresh state, which normally surfaces the real
// outcome (ErrAlreadyDecided or ErrNotCurrentApprover) to the caller.
func (s *ApprovalServiceImpl) Decide(ctx context.Context, req approval.DecideRequest) (approval.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.RequestResponse{}, err
	}

	comments := ""
	if req.Comments != nil {
		comments = *req.Comments
	}

	const maxAttempts = 2
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		request, err := s.RequestRepository.GetByID(ctx, req.ID)
		if err != nil {
			return approval.RequestResponse{}, err
		}

		outcome, err := request.ApplyDecision(req.ApproverID, approval.Decision(req.Decision), comments, time.Now().UTC())
		if err != nil {
			return approval.RequestResponse{}, err
		}

		if outcome.Finalize {
			markFinalized(&request)
		}

		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if txErr := s.RequestRepository.UpdateDecision(txCtx, request); txErr != nil {
				return txErr
			}
			if outcome.Finalize {
				return s.deductLeaveBalance(txCtx, request)
			}
			return nil
		})
		if errors.Is(err, approval.ErrStaleState) {
			lastErr = err
			continue
		}
		if err != nil {
			return approval.RequestResponse{}, err
		}

		s.notifyDecision(ctx, request, outcome)
		return mapRequestToResponse(request), nil
	}

	return approval.RequestResponse{}, lastErr
}

func (s *ApprovalServiceImpl) notifyDecision(ctx context.Context, request approval.Request, outcome approval.Outcome) {
	if s.notifier == nil {
		return
	}

	employeeName := request.EmployeeID
	if request.EmployeeName != nil {
		employeeName = *request.EmployeeName
	}

	if outcome.NextApprover != nil {
		s.notifier.NotifyApproverOfPending(ctx, *outcome.NextApprover, request.ID, employeeName, string(request.Kind))
		return
	}

	s.notifier.NotifySubmitterOfOutcome(ctx, request.EmployeeID, request.ID, string(request.Kind), outcome.Status == approval.StatusApproved)
}

// GetRequest implements approval.Service.
func (s *ApprovalServiceImpl) GetRequest(ctx context.Context, id string) (approval.RequestResponse, error) {
	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return approval.RequestResponse{}, err
	}
	return mapRequestToResponse(request), nil
}

// ListPendingFor implements approval.Service.
func (s *ApprovalServiceImpl) ListPendingFor(ctx context.Context, approverID string, filter approval.ListFilter) (approval.ListRequestsResponse, error) {
	filter.Normalize()

	requests, total, err := s.RequestRepository.ListPendingForApprover(ctx, approverID, filter)
	if err != nil {
		return approval.ListRequestsResponse{}, fmt.Errorf("failed to list pending requests: %w", err)
	}

	return buildListResponse(requests, total, filter), nil
}

// ListHistoryFor implements approval.Service.
func (s *ApprovalServiceImpl) ListHistoryFor(ctx context.Context, approverID string, status string, filter approval.ListFilter) (approval.ListRequestsResponse, error) {
	filter.Normalize()

	var statusFilter *approval.Status
	if status != "" {
		st := approval.Status(status)
		if st != approval.StatusApproved && st != approval.StatusRejected {
			return approval.ListRequestsResponse{}, approval.ErrInvalidDecision
		}
		statusFilter = &st
	}

	requests, total, err := s.RequestRepository.ListHistoryForApprover(ctx, approverID, statusFilter, filter)
	if err != nil {
		return approval.ListRequestsResponse{}, fmt.Errorf("failed to list request history: %w", err)
	}

	return buildListResponse(requests, total, filter), nil
}

func hasJustification(justification *string) bool {
	return justification != nil && strings.TrimSpace(*justification) != ""
}

func buildListResponse(requests []approval.Request, total int64, filter approval.ListFilter) approval.ListRequestsResponse {
	responses := make([]approval.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapRequestToResponse(request))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return approval.ListRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Requests:   responses,
	}
}

// mapRequestToResponse converts a Request entity to RequestResponse
func mapRequestToResponse(request approval.Request) approval.RequestResponse {
	var employeeName string
	if request.EmployeeName != nil {
		employeeName = *request.EmployeeName
	}

	logEntries := make([]approval.LogEntryResponse, 0, len(request.Log))
	for _, entry := range request.Log {
		var comments *string
		if entry.Comments != "" {
			c := entry.Comments
			comments = &c
		}
		logEntries = append(logEntries, approval.LogEntryResponse{
			ApproverID: entry.ApproverID,
			Decision:   string(entry.Decision),
			Comments:   comments,
			DecidedAt:  entry.DecidedAt.Format(time.RFC3339),
		})
	}

	resp := approval.RequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		EmployeeName:    employeeName,
		Kind:            string(request.Kind),
		Status:          string(request.Status),
		SubmittedAt:     request.SubmittedAt.Format(time.RFC3339),
		CurrentApprover: request.CurrentApprover,
		Hierarchy:       request.HierarchySnapshot,
		Log:             logEntries,
	}

	if request.Attendance != nil {
		var checkOut *string
		if request.Attendance.CheckOutTime != nil {
			c := request.Attendance.CheckOutTime.Format(time.RFC3339)
			checkOut = &c
		}
		resp.Attendance = &approval.AttendanceDetailResponse{
			Date:           request.Attendance.Date.Format("2006-01-02"),
			CheckInTime:    request.Attendance.CheckInTime.Format(time.RFC3339),
			CheckOutTime:   checkOut,
			Latitude:       request.Attendance.Latitude,
			Longitude:      request.Attendance.Longitude,
			DistanceMeters: request.Attendance.DistanceMeters,
			IsLate:         request.Attendance.IsLate,
			IsOutOfRange:   request.Attendance.IsOutOfRange,
			Justification:  request.Attendance.Justification,
			FinalStatus:    request.Attendance.FinalStatus,
		}
	}

	if request.Leave != nil {
		resp.Leave = &approval.LeaveDetailResponse{
			LeaveKind: request.Leave.LeaveKind,
			StartDate: request.Leave.StartDate.Format("2006-01-02"),
			EndDate:   request.Leave.EndDate.Format("2006-01-02"),
			DayCount:  request.Leave.DayCount,
			Reason:    request.Leave.Reason,
		}
	}

	return resp
}

func NewApprovalService(
	tx approval.TxRunner,
	requestRepo approval.RequestRepository,
	policyRepo approval.WorkPolicyRepository,
	employeeRepo employee.EmployeeRepository,
	notifier notification.Service,
) approval.Service {
	return &ApprovalServiceImpl{
		tx:                   tx,
		RequestRepository:    requestRepo,
		WorkPolicyRepository: policyRepo,
		EmployeeRepository:   employeeRepo,
		notifier:             notifier,
	}
}
