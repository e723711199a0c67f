package approval

import (
	"time"
)

// Kind distinguishes the payload carried by a request envelope.
type Kind string

const (
	KindAttendance Kind = "attendance"
	KindLeave      Kind = "leave"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// Leave kinds. KindUnpaidLeave carries no balance and is never deducted.
const (
	LeaveKindCasual = "casual"
	LeaveKindSick   = "sick"
	LeaveKindEarned = "earned"
	LeaveKindUnpaid = "unpaid"
)

// KnownLeaveKinds returns the accepted leave kinds.
func KnownLeaveKinds() []string {
	return []string{LeaveKindCasual, LeaveKindSick, LeaveKindEarned, LeaveKindUnpaid}
}

// LogEntry is one recorded approver decision. The log is append-only.
type LogEntry struct {
	ApproverID string    `json:"approver_id"`
	Decision   Decision  `json:"decision"`
	Comments   string    `json:"comments,omitempty"`
	DecidedAt  time.Time `json:"decided_at"`
}

// AttendanceDetail is the attendance payload of a request, stored as JSONB.
type AttendanceDetail struct {
	// Date is the local work day the submission occupies; at most one
	// attendance request may exist per employee per date.
	Date           time.Time  `json:"date"`
	CheckInTime    time.Time  `json:"check_in_time"`
	CheckOutTime   *time.Time `json:"check_out_time,omitempty"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	DistanceMeters float64    `json:"distance_meters"`
	IsLate         bool       `json:"is_late"`
	IsOutOfRange   bool       `json:"is_out_of_range"`
	Justification  *string    `json:"justification,omitempty"`

	// FinalStatus is set to "present" when the request reaches terminal
	// approval, nil before that.
	FinalStatus *string `json:"final_status,omitempty"`
}

// LeaveDetail is the leave payload of a request, stored as JSONB.
type LeaveDetail struct {
	LeaveKind string    `json:"leave_kind"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	DayCount  int       `json:"day_count"`
	Reason    string    `json:"reason"`
}

// Request is the shared approval envelope for attendance and leave
// submissions. Exactly one of Attendance/Leave is non-nil, matching Kind.
type Request struct {
	ID          string
	EmployeeID  string
	Kind        Kind
	SubmittedAt time.Time

	// HierarchySnapshot is the employee's approval hierarchy copied at
	// creation time. Later edits to the employee must not reroute a request
	// already in flight, so this is never re-read from the employee.
	HierarchySnapshot []string

	// CurrentApprover is nil exactly when Status is terminal.
	CurrentApprover *string
	Status          Status
	Log             []LogEntry

	// Revision is the optimistic-concurrency token; every persisted
	// mutation increments it.
	Revision int64

	Attendance *AttendanceDetail
	Leave      *LeaveDetail

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// Outcome reports what a decision did to the request.
type Outcome struct {
	Status Status

	// Finalize is true only on the transition into StatusApproved; the
	// caller must run the one-time side effect (balance deduction,
	// attendance finalization) in the same unit of work.
	Finalize bool

	// NextApprover is set when the request advanced to another step.
	NextApprover *string
}

// NewRequest builds a request envelope for an employee, snapshotting the
// given hierarchy. With no approvers the request is born approved and the
// caller must finalize it at creation.
func NewRequest(employeeID string, kind Kind, hierarchy []string, now time.Time) Request {
	req := Request{
		EmployeeID:        employeeID,
		Kind:              kind,
		SubmittedAt:       now,
		HierarchySnapshot: append([]string(nil), hierarchy...),
		Status:            StatusPending,
	}

	if len(req.HierarchySnapshot) == 0 {
		req.Status = StatusApproved
		return req
	}

	first := req.HierarchySnapshot[0]
	req.CurrentApprover = &first
	return req
}

// IsTerminal reports whether no further decision is possible.
func (r *Request) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// ApplyDecision records one approver decision and advances the state
// machine. Approvers must act strictly in snapshot order: anyone other than
// CurrentApprover gets ErrNotCurrentApprover even if they appear later in
// the chain. The mutation is in-memory only; persisting it (conditioned on
// Revision) is the caller's job.
func (r *Request) ApplyDecision(approverID string, decision Decision, comments string, now time.Time) (Outcome, error) {
	if r.IsTerminal() {
		return Outcome{}, ErrAlreadyDecided
	}
	if r.CurrentApprover == nil || *r.CurrentApprover != approverID {
		return Outcome{}, ErrNotCurrentApprover
	}
	if decision != DecisionApproved && decision != DecisionRejected {
		return Outcome{}, ErrInvalidDecision
	}

	r.Log = append(r.Log, LogEntry{
		ApproverID: approverID,
		Decision:   decision,
		Comments:   comments,
		DecidedAt:  now,
	})

	if decision == DecisionRejected {
		r.Status = StatusRejected
		r.CurrentApprover = nil
		return Outcome{Status: StatusRejected}, nil
	}

	next := r.nextApproverAfter(approverID)
	if next == nil {
		r.Status = StatusApproved
		r.CurrentApprover = nil
		return Outcome{Status: StatusApproved, Finalize: true}, nil
	}

	r.CurrentApprover = next
	return Outcome{Status: StatusPending, NextApprover: next}, nil
}

func (r *Request) nextApproverAfter(approverID string) *string {
	for i, id := range r.HierarchySnapshot {
		if id == approverID {
			if i+1 < len(r.HierarchySnapshot) {
				next := r.HierarchySnapshot[i+1]
				return &next
			}
			return nil
		}
	}
	return nil
}
