package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/dto"
	"github.com/GlebRadaev/taskearn/internal/service/taskservice"
	"github.com/GlebRadaev/taskearn/pkg/auth"
)

var (
	advertiser = domain.Principal{UserID: uuid.New(), Role: domain.RoleAdvertiser}
	worker     = domain.Principal{UserID: uuid.New(), Role: domain.RoleUser}
	admin      = domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
)

func NewMock(t *testing.T) (*TaskHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newRequest(method, target, body string, p domain.Principal, id string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := auth.WithPrincipal(r.Context(), p)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func sampleTask(status domain.TaskStatus) *domain.Task {
	return &domain.Task{
		ID:             uuid.New(),
		AdvertiserID:   advertiser.UserID,
		Title:          "Rate the app",
		RateToUser:     decimal.NewFromInt(25),
		LimitCount:     100,
		AdvertiserCost: decimal.NewFromInt(30),
		Status:         status,
		StartAt:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndAt:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTaskHandler(t *testing.T) {
	handler, service := NewMock(t)
	valid := `{"title":"Rate the app","rate_to_user":"25","limit_count":100,"advertiser_cost":"30",` +
		`"start_at":"2024-05-01T00:00:00Z","end_at":"2024-06-01T00:00:00Z","require_kyc":true}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: valid,
			prepareMock: func() {
				service.EXPECT().CreateTask(gomock.Any(), advertiser, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.Principal, in taskservice.CreateTaskInput) (*domain.Task, error) {
						assert.Equal(t, "25", in.RateToUser.String())
						assert.Equal(t, "30", in.AdvertiserCost.String())
						assert.Equal(t, 100, in.LimitCount)
						assert.True(t, in.RequireKYC)
						return sampleTask(domain.TaskPending), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed body",
			body:         `{"title":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Window reversed",
			body: `{"title":"x","rate_to_user":"1","limit_count":1,"advertiser_cost":"1",` +
				`"start_at":"2024-06-01T00:00:00Z","end_at":"2024-05-01T00:00:00Z"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Zero rate",
			body: `{"title":"x","rate_to_user":"0","limit_count":1,"advertiser_cost":"1",` +
				`"start_at":"2024-05-01T00:00:00Z","end_at":"2024-06-01T00:00:00Z"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Cost finer than a cent",
			body: `{"title":"x","rate_to_user":"1","limit_count":1,"advertiser_cost":"0.005",` +
				`"start_at":"2024-05-01T00:00:00Z","end_at":"2024-06-01T00:00:00Z"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Service rejects",
			body: valid,
			prepareMock: func() {
				service.EXPECT().CreateTask(gomock.Any(), advertiser, gomock.Any()).
					Return(nil, fmt.Errorf("advertiser cost must not be negative: %w", domain.ErrInvalidAmount))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CreateTask(w, newRequest(http.MethodPost, "/api/tasks", tt.body, advertiser, ""))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.TaskResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "pending", body.Status)
				assert.Equal(t, "25.00", body.RateToUser)
			}
		})
	}
}

func TestListAndGetTaskHandler(t *testing.T) {
	handler, service := NewMock(t)
	task := sampleTask(domain.TaskApproved)

	t.Run("List filtered", func(t *testing.T) {
		service.EXPECT().ListTasks(gomock.Any(), domain.TaskApproved).Return([]domain.Task{*task}, nil)
		w := httptest.NewRecorder()
		handler.ListTasks(w, newRequest(http.MethodGet, "/api/tasks?status=approved", "", worker, ""))
		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.TaskResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, task.ID.String(), body[0].ID)
	})

	t.Run("List unknown status", func(t *testing.T) {
		service.EXPECT().ListTasks(gomock.Any(), domain.TaskStatus("open")).
			Return(nil, fmt.Errorf("unknown task status: %w", domain.ErrValidation))
		w := httptest.NewRecorder()
		handler.ListTasks(w, newRequest(http.MethodGet, "/api/tasks?status=open", "", worker, ""))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Get found", func(t *testing.T) {
		service.EXPECT().GetTask(gomock.Any(), task.ID).Return(task, nil)
		w := httptest.NewRecorder()
		handler.GetTask(w, newRequest(http.MethodGet, "/api/tasks/x", "", worker, task.ID.String()))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Get missing", func(t *testing.T) {
		id := uuid.New()
		service.EXPECT().GetTask(gomock.Any(), id).Return(nil, domain.ErrNotFound)
		w := httptest.NewRecorder()
		handler.GetTask(w, newRequest(http.MethodGet, "/api/tasks/x", "", worker, id.String()))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Get bad id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetTask(w, newRequest(http.MethodGet, "/api/tasks/x", "", worker, "x"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestJoinAndSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)
	taskID := uuid.New()

	tests := []struct {
		name         string
		call         func(w http.ResponseWriter)
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Join",
			call: func(w http.ResponseWriter) {
				handler.JoinTask(w, newRequest(http.MethodPost, "/", "", worker, taskID.String()))
			},
			prepareMock: func() {
				service.EXPECT().JoinTask(gomock.Any(), worker, taskID).Return(&domain.Assignment{
					ID: uuid.New(), TaskID: taskID, UserID: worker.UserID, Status: domain.AssignmentActive, Payment: decimal.NewFromInt(25),
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Join twice",
			call: func(w http.ResponseWriter) {
				handler.JoinTask(w, newRequest(http.MethodPost, "/", "", worker, taskID.String()))
			},
			prepareMock: func() {
				service.EXPECT().JoinTask(gomock.Any(), worker, taskID).Return(nil, fmt.Errorf("already joined: %w", domain.ErrConflict))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Join while suspended",
			call: func(w http.ResponseWriter) {
				handler.JoinTask(w, newRequest(http.MethodPost, "/", "", worker, taskID.String()))
			},
			prepareMock: func() {
				service.EXPECT().JoinTask(gomock.Any(), worker, taskID).Return(nil, fmt.Errorf("suspended: %w", domain.ErrForbidden))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Submit",
			call: func(w http.ResponseWriter) {
				handler.SubmitProof(w, newRequest(http.MethodPost, "/", `{"proof_data":"screenshot"}`, worker, taskID.String()))
			},
			prepareMock: func() {
				service.EXPECT().SubmitProof(gomock.Any(), worker, taskID, "screenshot").Return(&domain.Submission{
					ID: uuid.New(), TaskID: taskID, UserID: worker.UserID, ProofData: "screenshot", Status: domain.SubmissionPending,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Submit without proof",
			call: func(w http.ResponseWriter) {
				handler.SubmitProof(w, newRequest(http.MethodPost, "/", `{"proof_data":""}`, worker, taskID.String()))
			},
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			tt.call(w)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestLifecycleHandlers(t *testing.T) {
	handler, service := NewMock(t)
	task := sampleTask(domain.TaskApproved)
	id := task.ID.String()

	tests := []struct {
		name         string
		call         func(w http.ResponseWriter)
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Approve",
			call: func(w http.ResponseWriter) { handler.ApproveTask(w, newRequest(http.MethodPost, "/", "", admin, id)) },
			prepareMock: func() {
				service.EXPECT().ApproveTask(gomock.Any(), admin, task.ID).Return(task, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Approve without funds",
			call: func(w http.ResponseWriter) { handler.ApproveTask(w, newRequest(http.MethodPost, "/", "", admin, id)) },
			prepareMock: func() {
				service.EXPECT().ApproveTask(gomock.Any(), admin, task.ID).Return(nil, fmt.Errorf("cost: %w", domain.ErrInsufficientFunds))
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Settle",
			call: func(w http.ResponseWriter) { handler.SettleTask(w, newRequest(http.MethodPost, "/", "", admin, id)) },
			prepareMock: func() {
				service.EXPECT().SettleTask(gomock.Any(), admin, task.ID).Return(task, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Pause",
			call: func(w http.ResponseWriter) {
				handler.PauseTask(w, newRequest(http.MethodPost, "/", `{"reason":"complaints"}`, admin, id))
			},
			prepareMock: func() {
				service.EXPECT().PauseTask(gomock.Any(), admin, task.ID, "complaints").Return(sampleTask(domain.TaskPaused), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Pause without reason",
			call:         func(w http.ResponseWriter) { handler.PauseTask(w, newRequest(http.MethodPost, "/", `{}`, admin, id)) },
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Resume from wrong state",
			call: func(w http.ResponseWriter) { handler.ResumeTask(w, newRequest(http.MethodPost, "/", "", admin, id)) },
			prepareMock: func() {
				service.EXPECT().ResumeTask(gomock.Any(), admin, task.ID).Return(nil, fmt.Errorf("approved -> approved: %w", domain.ErrInvalidTransition))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Approve by non admin",
			call: func(w http.ResponseWriter) { handler.ApproveTask(w, newRequest(http.MethodPost, "/", "", worker, id)) },
			prepareMock: func() {
				service.EXPECT().ApproveTask(gomock.Any(), worker, task.ID).Return(nil, fmt.Errorf("no: %w", domain.ErrForbidden))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "List assignments store failure",
			call: func(w http.ResponseWriter) { handler.ListAssignments(w, newRequest(http.MethodGet, "/", "", admin, id)) },
			prepareMock: func() {
				service.EXPECT().ListAssignments(gomock.Any(), task.ID).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			tt.call(w)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCloseHandlers(t *testing.T) {
	handler, service := NewMock(t)
	task := sampleTask(domain.TaskCancelled)
	id := task.ID.String()

	t.Run("Cancel with refund", func(t *testing.T) {
		service.EXPECT().CancelTask(gomock.Any(), admin, task.ID, "fraud", true).
			Return(&taskservice.Outcome{Task: task, Refund: decimal.NewFromInt(2910)}, nil)
		w := httptest.NewRecorder()
		handler.CancelTask(w, newRequest(http.MethodPost, "/", `{"reason":"fraud","refund_remaining":true}`, admin, id))

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.OutcomeResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "2910.00", body.Refund)
		assert.Equal(t, "cancelled", body.Task.Status)
	})

	t.Run("Complete without refund", func(t *testing.T) {
		completed := sampleTask(domain.TaskCompleted)
		service.EXPECT().CompleteTask(gomock.Any(), admin, task.ID, "ended early", false).
			Return(&taskservice.Outcome{Task: completed, Refund: decimal.Zero}, nil)
		w := httptest.NewRecorder()
		handler.CompleteTask(w, newRequest(http.MethodPost, "/", `{"reason":"ended early"}`, admin, id))

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.OutcomeResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "0.00", body.Refund)
	})

	t.Run("Complete a closed task", func(t *testing.T) {
		service.EXPECT().CompleteTask(gomock.Any(), admin, task.ID, "again", false).
			Return(nil, fmt.Errorf("cancelled -> completed: %w", domain.ErrInvalidTransition))
		w := httptest.NewRecorder()
		handler.CompleteTask(w, newRequest(http.MethodPost, "/", `{"reason":"again"}`, admin, id))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestReviewSubmissionHandler(t *testing.T) {
	handler, service := NewMock(t)
	submissionID := uuid.New()
	reviewedAt := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Approve",
			body: `{"decision":"approve","feedback":"nice"}`,
			prepareMock: func() {
				service.EXPECT().ReviewSubmission(gomock.Any(), admin, submissionID, domain.DecisionApprove, "nice").
					Return(&domain.Submission{ID: submissionID, Status: domain.SubmissionApproved, ReviewedAt: &reviewedAt}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No slots left",
			body: `{"decision":"approve"}`,
			prepareMock: func() {
				service.EXPECT().ReviewSubmission(gomock.Any(), admin, submissionID, domain.DecisionApprove, "").
					Return(nil, fmt.Errorf("limit reached: %w", domain.ErrConflict))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Unknown decision",
			body:         `{"decision":"maybe"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.ReviewSubmission(w, newRequest(http.MethodPost, "/", tt.body, admin, submissionID.String()))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SubmissionDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "approved", body.Status)
				require.NotNil(t, body.ReviewedAt)
			}
		})
	}
}
