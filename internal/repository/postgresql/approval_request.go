package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/fieldhr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type approvalRequestRepository struct {
	db *database.DB
}

const requestColumns = `
	r.id, r.employee_id, r.kind, r.status, r.submitted_at,
	r.hierarchy_snapshot, r.current_approver, r.decision_log, r.revision,
	r.attendance_date, r.payload, r.created_at, r.updated_at,
	e.full_name
`

// Create implements approval.RequestRepository.
func (a *approvalRequestRepository) Create(ctx context.Context, request approval.Request) (approval.Request, error) {
	q := GetQuerier(ctx, a.db)

	payload, err := marshalPayload(request)
	if err != nil {
		return approval.Request{}, err
	}

	decisionLog, err := json.Marshal(request.Log)
	if err != nil {
		return approval.Request{}, fmt.Errorf("failed to marshal decision log: %w", err)
	}

	var attendanceDate *time.Time
	if request.Attendance != nil {
		d := request.Attendance.Date
		attendanceDate = &d
	}

	query := `
		INSERT INTO approval_requests (
			id, employee_id, kind, status, submitted_at,
			hierarchy_snapshot, current_approver, decision_log, revision,
			attendance_date, payload
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, 1, $8, $9
		) RETURNING id, revision, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		request.EmployeeID,
		request.Kind,
		request.Status,
		request.SubmittedAt,
		request.HierarchySnapshot,
		request.CurrentApprover,
		decisionLog,
		attendanceDate,
		payload,
	).Scan(&request.ID, &request.Revision, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// unique (employee_id, attendance_date) violation
			return approval.Request{}, approval.ErrDuplicateSubmission
		}
		return approval.Request{}, fmt.Errorf("failed to create approval request: %w", err)
	}

	return request, nil
}

// GetByID implements approval.RequestRepository.
func (a *approvalRequestRepository) GetByID(ctx context.Context, id string) (approval.Request, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + requestColumns + `
		FROM approval_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1
	`

	request, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return approval.Request{}, approval.ErrRequestNotFound
		}
		return approval.Request{}, fmt.Errorf("failed to get approval request: %w", err)
	}

	return request, nil
}

// UpdateDecision implements approval.RequestRepository. The write is
// conditional on the revision the caller read; losing the race leaves the
// row untouched and returns ErrStaleState.
func (a *approvalRequestRepository) UpdateDecision(ctx context.Context, request approval.Request) error {
	q := GetQuerier(ctx, a.db)

	payload, err := marshalPayload(request)
	if err != nil {
		return err
	}

	decisionLog, err := json.Marshal(request.Log)
	if err != nil {
		return fmt.Errorf("failed to marshal decision log: %w", err)
	}

	query := `
		UPDATE approval_requests
		SET status = $2,
			current_approver = $3,
			decision_log = $4,
			payload = $5,
			revision = revision + 1,
			updated_at = NOW()
		WHERE id = $1
		  AND revision = $6
	`

	tag, err := q.Exec(ctx, query,
		request.ID,
		request.Status,
		request.CurrentApprover,
		decisionLog,
		payload,
		request.Revision,
	)
	if err != nil {
		return fmt.Errorf("failed to update approval request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return approval.ErrStaleState
	}

	return nil
}

// HasPendingLeave implements approval.RequestRepository.
func (a *approvalRequestRepository) HasPendingLeave(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM approval_requests
			WHERE employee_id = $1
			  AND kind = 'leave'
			  AND status = 'pending'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending leave: %w", err)
	}

	return exists, nil
}

// ListPendingForApprover implements approval.RequestRepository.
func (a *approvalRequestRepository) ListPendingForApprover(ctx context.Context, approverID string, filter approval.ListFilter) ([]approval.Request, int64, error) {
	q := GetQuerier(ctx, a.db)

	countQuery := `
		SELECT COUNT(*)
		FROM approval_requests
		WHERE current_approver = $1
		  AND status = 'pending'
	`

	var total int64
	if err := q.QueryRow(ctx, countQuery, approverID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count pending requests: %w", err)
	}

	query := `
		SELECT ` + requestColumns + `
		FROM approval_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.current_approver = $1
		  AND r.status = 'pending'
		ORDER BY r.submitted_at ASC
		LIMIT $2 OFFSET $3
	`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, approverID, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pending requests: %w", err)
	}
	defer rows.Close()

	requests, err := scanRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListHistoryForApprover implements approval.RequestRepository. A request
// belongs to an approver's history once the decision log records them.
func (a *approvalRequestRepository) ListHistoryForApprover(ctx context.Context, approverID string, status *approval.Status, filter approval.ListFilter) ([]approval.Request, int64, error) {
	q := GetQuerier(ctx, a.db)

	logMatch, err := json.Marshal([]map[string]string{{"approver_id": approverID}})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal log match: %w", err)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM approval_requests
		WHERE decision_log @> $1
		  AND ($2::text IS NULL OR status = $2)
	`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	var total int64
	if err := q.QueryRow(ctx, countQuery, logMatch, statusArg).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count request history: %w", err)
	}

	query := `
		SELECT ` + requestColumns + `
		FROM approval_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.decision_log @> $1
		  AND ($2::text IS NULL OR r.status = $2)
		ORDER BY r.updated_at DESC
		LIMIT $3 OFFSET $4
	`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, logMatch, statusArg, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list request history: %w", err)
	}
	defer rows.Close()

	requests, err := scanRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func marshalPayload(request approval.Request) ([]byte, error) {
	switch request.Kind {
	case approval.KindAttendance:
		payload, err := json.Marshal(request.Attendance)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal attendance payload: %w", err)
		}
		return payload, nil
	case approval.KindLeave:
		payload, err := json.Marshal(request.Leave)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal leave payload: %w", err)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("unknown request kind %q", request.Kind)
	}
}

func scanRequest(row pgx.Row) (approval.Request, error) {
	var request approval.Request
	var decisionLog, payload []byte
	var attendanceDate *time.Time
	var employeeName string

	err := row.Scan(
		&request.ID, &request.EmployeeID, &request.Kind, &request.Status, &request.SubmittedAt,
		&request.HierarchySnapshot, &request.CurrentApprover, &decisionLog, &request.Revision,
		&attendanceDate, &payload, &request.CreatedAt, &request.UpdatedAt,
		&employeeName,
	)
	if err != nil {
		return approval.Request{}, err
	}

	request.EmployeeName = &employeeName

	if len(decisionLog) > 0 {
		if err := json.Unmarshal(decisionLog, &request.Log); err != nil {
			return approval.Request{}, fmt.Errorf("failed to unmarshal decision log: %w", err)
		}
	}

	switch request.Kind {
	case approval.KindAttendance:
		var detail approval.AttendanceDetail
		if err := json.Unmarshal(payload, &detail); err != nil {
			return approval.Request{}, fmt.Errorf("failed to unmarshal attendance payload: %w", err)
		}
		request.Attendance = &detail
	case approval.KindLeave:
		var detail approval.LeaveDetail
		if err := json.Unmarshal(payload, &detail); err != nil {
			return approval.Request{}, fmt.Errorf("failed to unmarshal leave payload: %w", err)
		}
		request.Leave = &detail
	}

	return request, nil
}

func scanRequests(rows pgx.Rows) ([]approval.Request, error) {
	requests := make([]approval.Request, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read approval requests: %w", err)
	}
	return requests, nil
}

func NewApprovalRequestRepository(db *database.DB) approval.RequestRepository {
	return &approvalRequestRepository{db: db}
}
