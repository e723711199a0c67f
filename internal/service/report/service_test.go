package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fieldhr/hr-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeReportRepo struct {
	rows []report.ApprovalReportRow
}

func (f *fakeReportRepo) GetDecidedRequests(ctx context.Context, startDate, endDate time.Time) ([]report.ApprovalReportRow, error) {
	return f.rows, nil
}

func TestReportService_GenerateApprovalReport(t *testing.T) {
	repo := &fakeReportRepo{rows: []report.ApprovalReportRow{
		{
			RequestID:    "req-1",
			EmployeeName: "Ayu Lestari",
			Kind:         "leave",
			Status:       "approved",
			StepCount:    2,
			SubmittedAt:  "2026-03-02T01:30:00Z",
			DecidedAt:    "2026-03-03T08:00:00Z",
			DecidedBy:    "hr-1",
		},
		{
			RequestID:    "req-2",
			EmployeeName: "Budi Santoso",
			Kind:         "attendance",
			Status:       "rejected",
			StepCount:    1,
			SubmittedAt:  "2026-03-04T02:10:00Z",
			DecidedAt:    "2026-03-04T05:00:00Z",
			DecidedBy:    "mgr-1",
		},
	}}
	service := NewReportService(repo)

	data, filename, err := service.GenerateApprovalReport(context.Background(), report.ApprovalReportRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "approval-report_2026-03-01_2026-03-31.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Approval History")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Request ID", rows[0][0])
	assert.Equal(t, "Ayu Lestari", rows[1][1])
	assert.Equal(t, "approved", rows[1][3])
	assert.Equal(t, "Budi Santoso", rows[2][1])
	assert.Equal(t, "rejected", rows[2][3])
}

func TestReportService_GenerateApprovalReport_InvalidPeriod(t *testing.T) {
	service := NewReportService(&fakeReportRepo{})

	_, _, err := service.GenerateApprovalReport(context.Background(), report.ApprovalReportRequest{
		StartDate: "2026-03-31",
		EndDate:   "2026-03-01",
	})

	assert.Error(t, err)
}

func TestReportService_GenerateApprovalReport_EmptyPeriod(t *testing.T) {
	service := NewReportService(&fakeReportRepo{})

	data, _, err := service.GenerateApprovalReport(context.Background(), report.ApprovalReportRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})

	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Approval History")
	require.NoError(t, err)
	// Header only
	require.Len(t, rows, 1)
}
