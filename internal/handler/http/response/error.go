package response

import (
	"errors"
	"net/http"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/fieldhr/hr-backend-go/internal/domain/employee"
	"github.com/fieldhr/hr-backend-go/internal/domain/notification"
	"github.com/fieldhr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A blocked submission is not a hard failure; the client resubmits
	// the same payload with justification attached.
	var blocked *approval.BlockedError
	if errors.As(err, &blocked) {
		Blocked(w, blocked.Error(), approval.BlockedResponse{
			Reason:                blocked.Reason(),
			IsLate:                blocked.IsLate,
			IsOutOfRange:          blocked.IsOutOfRange,
			DistanceMeters:        blocked.DistanceMeters,
			JustificationRequired: true,
		})
		return
	}

	switch {
	// Approval domain errors
	case errors.Is(err, approval.ErrRequestNotFound):
		NotFound(w, "Approval request not found")
	case errors.Is(err, approval.ErrDuplicateSubmission):
		Conflict(w, "Attendance has already been submitted for this date")
	case errors.Is(err, approval.ErrDuplicatePending):
		Conflict(w, "A pending leave request already exists")
	case errors.Is(err, approval.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, approval.ErrPolicyNotConfigured):
		BadRequest(w, "No work policy is configured for this employee", nil)
	case errors.Is(err, approval.ErrUnknownLeaveKind):
		BadRequest(w, "Unknown leave kind", nil)
	case errors.Is(err, approval.ErrNotCurrentApprover):
		Forbidden(w, "You are not the current approver for this request")
	case errors.Is(err, approval.ErrAlreadyDecided):
		Conflict(w, "Request has already been approved or rejected")
	case errors.Is(err, approval.ErrInvalidDecision):
		BadRequest(w, "Decision must be approved or rejected", nil)
	case errors.Is(err, approval.ErrStaleState):
		Conflict(w, "Request was modified concurrently, please retry")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
