package report

import (
	"github.com/fieldhr/hr-backend-go/internal/pkg/validator"
)

// ApprovalReportRequest selects the period an approval report covers.
type ApprovalReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *ApprovalReportRequest) Validate() error {
	var errs validator.ValidationErrors

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApprovalReportRow is one decided request in the report.
type ApprovalReportRow struct {
	RequestID    string
	EmployeeName string
	Kind         string
	Status       string
	StepCount    int
	SubmittedAt  string
	DecidedAt    string
	DecidedBy    string
}
