package http

import (
	"encoding/json"
	"net/http"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/fieldhr/hr-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	approvalService approval.Service
}

func NewLeaveHandler(approvalService approval.Service) LeaveHandler {
	return &leaveHandlerImpl{
		approvalService: approvalService,
	}
}

// Submit implements LeaveHandler.
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req approval.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.approvalService.SubmitLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}
