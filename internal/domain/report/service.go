package report

import (
	"context"
)

// Service defines report generation operations
type Service interface {
	// GenerateApprovalReport builds an XLSX workbook of the requests
	// decided inside the requested period and returns its bytes together
	// with a suggested filename.
	GenerateApprovalReport(ctx context.Context, req ApprovalReportRequest) ([]byte, string, error)
}
