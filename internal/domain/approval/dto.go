package approval

import (
	"github.com/fieldhr/hr-backend-go/internal/pkg/validator"
)

// ========================================
// APPROVAL DTOs
// ========================================

type SubmitAttendanceRequest struct {
	EmployeeID    string   `json:"-"`
	CheckedInAt   string   `json:"checked_in_at,omitempty"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Justification *string  `json:"justification,omitempty"`
}

func (r *SubmitAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.CheckedInAt != "" {
		if _, ok := validator.IsValidDateTime(r.CheckedInAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "checked_in_at",
				Message: "checked_in_at must be an ISO8601 timestamp",
			})
		}
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitLeaveRequest struct {
	EmployeeID string `json:"-"`
	LeaveKind  string `json:"leave_kind"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.LeaveKind, KnownLeaveKinds()) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_kind",
			Message: "leave_kind must be one of casual, sick, earned, unpaid",
		})
	}

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

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequest struct {
	ID         string  `json:"-"`
	ApproverID string  `json:"-"`
	Decision   string  `json:"decision"`
	Comments   *string `json:"comments,omitempty"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "request id is required",
		})
	}

	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{
			Field:   "approver_id",
			Message: "approver_id is required",
		})
	}

	if !validator.IsInSlice(r.Decision, []string{string(DecisionApproved), string(DecisionRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter carries pagination for listing endpoints.
type ListFilter struct {
	Page  int
	Limit int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
}

// ========================================
// RESPONSES
// ========================================

type LogEntryResponse struct {
	ApproverID string  `json:"approver_id"`
	Decision   string  `json:"decision"`
	Comments   *string `json:"comments,omitempty"`
	DecidedAt  string  `json:"decided_at"`
}

type AttendanceDetailResponse struct {
	Date           string   `json:"date"`
	CheckInTime    string   `json:"check_in_time"`
	CheckOutTime   *string  `json:"check_out_time,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	DistanceMeters float64  `json:"distance_meters"`
	IsLate         bool     `json:"is_late"`
	IsOutOfRange   bool     `json:"is_out_of_range"`
	Justification  *string  `json:"justification,omitempty"`
	FinalStatus    *string  `json:"final_status,omitempty"`
}

type LeaveDetailResponse struct {
	LeaveKind string `json:"leave_kind"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	DayCount  int    `json:"day_count"`
	Reason    string `json:"reason"`
}

type RequestResponse struct {
	ID              string                    `json:"id"`
	EmployeeID      string                    `json:"employee_id"`
	EmployeeName    string                    `json:"employee_name,omitempty"`
	Kind            string                    `json:"kind"`
	Status          string                    `json:"status"`
	SubmittedAt     string                    `json:"submitted_at"`
	CurrentApprover *string                   `json:"current_approver,omitempty"`
	Hierarchy       []string                  `json:"hierarchy"`
	Log             []LogEntryResponse        `json:"log"`
	Attendance      *AttendanceDetailResponse `json:"attendance,omitempty"`
	Leave           *LeaveDetailResponse      `json:"leave,omitempty"`
}

type ListRequestsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Showing    string            `json:"showing"`
	Requests   []RequestResponse `json:"requests"`
}

// BlockedResponse is the structured payload for a submission stopped by the
// justification gate. It is distinguishable from hard errors so the client
// can resubmit the identical payload with justification attached.
type BlockedResponse struct {
	Reason                string  `json:"reason"`
	IsLate                bool    `json:"is_late"`
	IsOutOfRange          bool    `json:"is_out_of_range"`
	DistanceMeters        float64 `json:"distance_meters"`
	JustificationRequired bool    `json:"justification_required"`
}
