package report

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldhr/hr-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	report.ReportRepository
}

// NewReportService creates a report service backed by the given repository
func NewReportService(repo report.ReportRepository) report.Service {
	return &ReportServiceImpl{ReportRepository: repo}
}

const sheetName = "Approval History"

var reportHeaders = []string{
	"Request ID",
	"Employee",
	"Kind",
	"Status",
	"Approval Steps",
	"Submitted At",
	"Decided At",
	"Decided By",
}

// GenerateApprovalReport implements report.Service.
func (s *ReportServiceImpl) GenerateApprovalReport(ctx context.Context, req report.ApprovalReportRequest) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse end_date: %w", err)
	}
	// Include the whole end day
	endDate = endDate.Add(24*time.Hour - time.Nanosecond)

	rows, err := s.ReportRepository.GetDecidedRequests(ctx, startDate, endDate)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load decided requests: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, "", err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, "", err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.RequestID,
			row.EmployeeName,
			row.Kind,
			row.Status,
			row.StepCount,
			row.SubmittedAt,
			row.DecidedAt,
			row.DecidedBy,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "B", 28); err != nil {
		return nil, "", err
	}
	if err := f.SetColWidth(sheetName, "C", "H", 18); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("approval-report_%s_%s.xlsx", req.StartDate, req.EndDate)
	return buf.Bytes(), filename, nil
}
