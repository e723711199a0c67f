package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldhr/hr-backend-go/internal/domain/report"
	"github.com/fieldhr/hr-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

// GetDecidedRequests implements report.ReportRepository. The deciding
// approver is the author of the last decision log entry.
func (r *reportRepository) GetDecidedRequests(ctx context.Context, startDate, endDate time.Time) ([]report.ApprovalReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, e.full_name, r.kind, r.status,
			   jsonb_array_length(r.decision_log),
			   to_char(r.submitted_at AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"'),
			   to_char(r.updated_at AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"'),
			   COALESCE(r.decision_log -> -1 ->> 'approver_id', '')
		FROM approval_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.status IN ('approved', 'rejected')
		  AND r.updated_at BETWEEN $1 AND $2
		ORDER BY r.updated_at ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query decided requests: %w", err)
	}
	defer rows.Close()

	result := make([]report.ApprovalReportRow, 0)
	for rows.Next() {
		var row report.ApprovalReportRow
		if err := rows.Scan(
			&row.RequestID, &row.EmployeeName, &row.Kind, &row.Status,
			&row.StepCount, &row.SubmittedAt, &row.DecidedAt, &row.DecidedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report rows: %w", err)
	}

	return result, nil
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}
