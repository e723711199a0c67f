package http

import (
	"encoding/json"
	"net/http"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/fieldhr/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	approvalService approval.Service
}

func NewAttendanceHandler(approvalService approval.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		approvalService: approvalService,
	}
}

// getEmployeeIDFromContext extracts employee_id from JWT context
func getEmployeeIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if employeeID, ok := claims["employee_id"].(string); ok {
		return employeeID
	}
	return ""
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req approval.SubmitAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.approvalService.SubmitAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance submitted", result)
}
