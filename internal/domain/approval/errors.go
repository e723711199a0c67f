package approval

import (
	"errors"
	"fmt"
)

// Approval domain errors
var (
	// Submission errors
	ErrDuplicateSubmission = errors.New("attendance has already been submitted for this date")
	ErrDuplicatePending    = errors.New("a pending leave request already exists for this employee")
	ErrInsufficientBalance = errors.New("insufficient leave balance for the requested days")
	ErrPolicyNotConfigured = errors.New("no work policy is configured for this employee")
	ErrUnknownLeaveKind    = errors.New("unknown leave kind")

	// Decision errors
	ErrRequestNotFound    = errors.New("approval request not found")
	ErrNotCurrentApprover = errors.New("you are not the current approver for this request")
	ErrAlreadyDecided     = errors.New("request has already been approved or rejected")
	ErrInvalidDecision    = errors.New("decision must be approved or rejected")

	// Concurrency
	ErrStaleState = errors.New("request was modified concurrently, refetch and retry")
)

// BlockedError is returned when a submission violates time or location
// policy and carries no justification. It is recoverable: the client is
// expected to resubmit the identical payload once with justification text
// attached. No record is persisted for a blocked submission.
type BlockedError struct {
	IsLate         bool
	IsOutOfRange   bool
	DistanceMeters float64
}

func (e *BlockedError) Error() string {
	switch {
	case e.IsLate && e.IsOutOfRange:
		return fmt.Sprintf("submission is late and %.0fm outside the allowed radius, justification required", e.DistanceMeters)
	case e.IsOutOfRange:
		return fmt.Sprintf("submission is %.0fm outside the allowed radius, justification required", e.DistanceMeters)
	default:
		return "submission is past the check-in cutoff, justification required"
	}
}

// Reason returns the machine-readable blocked reason.
func (e *BlockedError) Reason() string {
	switch {
	case e.IsLate && e.IsOutOfRange:
		return "BOTH"
	case e.IsOutOfRange:
		return "OUT_OF_RANGE"
	default:
		return "LATE"
	}
}
