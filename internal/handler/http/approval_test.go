package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldhr/hr-backend-go/internal/domain/approval"
	"github.com/fieldhr/hr-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

// stubApprovalService returns canned results so handler tests exercise only
// the HTTP mapping.
type stubApprovalService struct {
	submitAttendanceResult approval.RequestResponse
	submitAttendanceErr    error
	decideErr              error
}

func (s *stubApprovalService) SubmitAttendance(ctx context.Context, req approval.SubmitAttendanceRequest) (approval.RequestResponse, error) {
	return s.submitAttendanceResult, s.submitAttendanceErr
}

func (s *stubApprovalService) SubmitLeave(ctx context.Context, req approval.SubmitLeaveRequest) (approval.RequestResponse, error) {
	return approval.RequestResponse{}, nil
}

func (s *stubApprovalService) Decide(ctx context.Context, req approval.DecideRequest) (approval.RequestResponse, error) {
	return approval.RequestResponse{}, s.decideErr
}

func (s *stubApprovalService) GetRequest(ctx context.Context, id string) (approval.RequestResponse, error) {
	return approval.RequestResponse{}, approval.ErrRequestNotFound
}

func (s *stubApprovalService) ListPendingFor(ctx context.Context, approverID string, filter approval.ListFilter) (approval.ListRequestsResponse, error) {
	return approval.ListRequestsResponse{Showing: "0 of 0"}, nil
}

func (s *stubApprovalService) ListHistoryFor(ctx context.Context, approverID string, status string, filter approval.ListFilter) (approval.ListRequestsResponse, error) {
	return approval.ListRequestsResponse{Showing: "0 of 0"}, nil
}

// noopHandler satisfies the handler interfaces the tests never route to.
type noopHandler struct{}

func (noopHandler) List(w http.ResponseWriter, r *http.Request)                   {}
func (noopHandler) MarkAsRead(w http.ResponseWriter, r *http.Request)             {}
func (noopHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request)          {}
func (noopHandler) GetSSEToken(w http.ResponseWriter, r *http.Request)            {}
func (noopHandler) Stream(w http.ResponseWriter, r *http.Request)                 {}
func (noopHandler) DownloadApprovalReport(w http.ResponseWriter, r *http.Request) {}
func (noopHandler) Me(w http.ResponseWriter, r *http.Request)                     {}

func newHandlerTestRouter(t *testing.T, svc approval.Service) (jwt.Service, http.Handler) {
	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")

	router := NewRouter(
		jwtService,
		NewAttendanceHandler(svc),
		NewLeaveHandler(svc),
		NewApprovalHandler(svc),
		noopHandler{},
		noopHandler{},
		noopHandler{},
	)
	return jwtService, router
}

func authedRequest(t *testing.T, jwtService jwt.Service, method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	token, _, err := jwtService.GenerateAccessToken("emp-1")
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	return req
}

func TestAttendanceHandler_Submit_Created(t *testing.T) {
	svc := &stubApprovalService{
		submitAttendanceResult: approval.RequestResponse{
			ID:     "req-1",
			Status: "pending",
		},
	}
	jwtService, router := newHandlerTestRouter(t, svc)

	req := authedRequest(t, jwtService, http.MethodPost, "/api/v1/attendance", map[string]interface{}{
		"latitude":  -6.2,
		"longitude": 106.816666,
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
}

func TestAttendanceHandler_Submit_BlockedPayload(t *testing.T) {
	svc := &stubApprovalService{
		submitAttendanceErr: &approval.BlockedError{
			IsLate:         true,
			IsOutOfRange:   true,
			DistanceMeters: 5123.4,
		},
	}
	jwtService, router := newHandlerTestRouter(t, svc)

	req := authedRequest(t, jwtService, http.MethodPost, "/api/v1/attendance", map[string]interface{}{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
			Data struct {
				Reason                string  `json:"reason"`
				IsLate                bool    `json:"is_late"`
				IsOutOfRange          bool    `json:"is_out_of_range"`
				DistanceMeters        float64 `json:"distance_meters"`
				JustificationRequired bool    `json:"justification_required"`
			} `json:"data"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "JUSTIFICATION_REQUIRED", body.Error.Code)
	assert.Equal(t, "BOTH", body.Error.Data.Reason)
	assert.True(t, body.Error.Data.IsLate)
	assert.True(t, body.Error.Data.IsOutOfRange)
	assert.True(t, body.Error.Data.JustificationRequired)
	assert.InDelta(t, 5123.4, body.Error.Data.DistanceMeters, 0.01)
}

func TestAttendanceHandler_Submit_DuplicateConflict(t *testing.T) {
	svc := &stubApprovalService{submitAttendanceErr: approval.ErrDuplicateSubmission}
	jwtService, router := newHandlerTestRouter(t, svc)

	req := authedRequest(t, jwtService, http.MethodPost, "/api/v1/attendance", map[string]interface{}{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceHandler_Submit_Unauthorized(t *testing.T) {
	_, router := newHandlerTestRouter(t, &stubApprovalService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApprovalHandler_Decide_WrongApproverForbidden(t *testing.T) {
	svc := &stubApprovalService{decideErr: approval.ErrNotCurrentApprover}
	jwtService, router := newHandlerTestRouter(t, svc)

	req := authedRequest(t, jwtService, http.MethodPost, "/api/v1/approvals/req-1/decision", map[string]interface{}{
		"decision": "approved",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestApprovalHandler_Decide_StaleConflict(t *testing.T) {
	svc := &stubApprovalService{decideErr: approval.ErrStaleState}
	jwtService, router := newHandlerTestRouter(t, svc)

	req := authedRequest(t, jwtService, http.MethodPost, "/api/v1/approvals/req-1/decision", map[string]interface{}{
		"decision": "approved",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
