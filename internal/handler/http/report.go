package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fieldhr/hr-backend-go/internal/domain/report"
	"github.com/fieldhr/hr-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DownloadApprovalReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// DownloadApprovalReport implements ReportHandler.
func (h *reportHandlerImpl) DownloadApprovalReport(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	req := report.ApprovalReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	data, filename, err := h.reportService.GenerateApprovalReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
