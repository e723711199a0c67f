package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/fieldhr/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ApprovalHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListHistory(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	approvalService approval.Service
}

func NewApprovalHandler(approvalService approval.Service) ApprovalHandler {
	return &approvalHandlerImpl{
		approvalService: approvalService,
	}
}

func listFilterFromQuery(r *http.Request) approval.ListFilter {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return approval.ListFilter{Page: page, Limit: limit}
}

// Get implements ApprovalHandler.
func (h *approvalHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.approvalService.GetRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Decide implements ApprovalHandler.
func (h *approvalHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	approverID := getEmployeeIDFromContext(r)
	if approverID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req approval.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ApproverID = approverID

	result, err := h.approvalService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPending implements ApprovalHandler.
func (h *approvalHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	approverID := getEmployeeIDFromContext(r)
	if approverID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.approvalService.ListPendingFor(r.Context(), approverID, listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListHistory implements ApprovalHandler.
func (h *approvalHandlerImpl) ListHistory(w http.ResponseWriter, r *http.Request) {
	approverID := getEmployeeIDFromContext(r)
	if approverID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	status := r.URL.Query().Get("status")

	result, err := h.approvalService.ListHistoryFor(r.Context(), approverID, status, listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
