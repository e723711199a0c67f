package report

import (
	"context"
	"time"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// GetDecidedRequests returns requests that reached a terminal status
	// inside [startDate, endDate]
	GetDecidedRequests(ctx context.Context, startDate, endDate time.Time) ([]ApprovalReportRow, error)
}
