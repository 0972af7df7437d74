package admin

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
	"github.com/GlebRadaev/taskearn/internal/service/activityservice"
	"github.com/GlebRadaev/taskearn/pkg/auth"
)

var admin = domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}

type mocks struct {
	activity *MockActivityService
	runner   *MockRunner
	audit    *MockAuditService
}

func NewMock(t *testing.T) (*AdminHandler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		activity: NewMockActivityService(ctrl),
		runner:   NewMockRunner(ctrl),
		audit:    NewMockAuditService(ctrl),
	}
	return New(m.activity, m.runner, m.audit), m
}

func newRequest(method, body, param, value string) *http.Request {
	r := httptest.NewRequest(method, "/", strings.NewReader(body))
	ctx := auth.WithPrincipal(r.Context(), admin)
	if param != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add(param, value)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestSuspendHandler(t *testing.T) {
	handler, m := NewMock(t)
	userID := uuid.New()
	end := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Suspended for a month",
			body: `{"reason":"spam","duration_days":30}`,
			prepareMock: func() {
				m.activity.EXPECT().
					Suspend(gomock.Any(), admin, userID, activityservice.SuspendInput{Reason: "spam", DurationDays: 30}).
					Return(&domain.SuspensionRecord{ID: uuid.New(), UserID: userID, Reason: "spam", DurationDays: 30, EndDate: &end}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already suspended",
			body: `{"reason":"spam","permanent":true}`,
			prepareMock: func() {
				m.activity.EXPECT().
					Suspend(gomock.Any(), admin, userID, activityservice.SuspendInput{Reason: "spam", Permanent: true}).
					Return(nil, fmt.Errorf("already suspended: %w", domain.ErrConflict))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Negative duration",
			body:         `{"reason":"spam","duration_days":-1}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Missing reason",
			body:         `{"duration_days":3}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Suspend(w, newRequest(http.MethodPost, tt.body, "userId", userID.String()))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SuspensionDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				require.NotNil(t, body.EndDate)
				assert.True(t, end.Equal(*body.EndDate))
			}
		})
	}
}

func TestReactivateHandler(t *testing.T) {
	handler, m := NewMock(t)
	userID := uuid.New()
	entryID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedFee  string
	}{
		{
			name: "With fee",
			body: `{"charge_fee":true}`,
			prepareMock: func() {
				m.activity.EXPECT().Reactivate(gomock.Any(), admin, userID, true).Return(&domain.ReactivationRecord{
					ID: uuid.New(), UserID: userID, ReactivatedBy: admin.UserID, FeeCharged: decimal.NewFromInt(100), LedgerEntryID: &entryID,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedFee:  "100.00",
		},
		{
			name: "Fee not covered",
			body: `{"charge_fee":true}`,
			prepareMock: func() {
				m.activity.EXPECT().Reactivate(gomock.Any(), admin, userID, true).
					Return(nil, fmt.Errorf("balance 0: %w", domain.ErrInsufficientFunds))
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Not suspended",
			body: `{}`,
			prepareMock: func() {
				m.activity.EXPECT().Reactivate(gomock.Any(), admin, userID, false).
					Return(nil, fmt.Errorf("not suspended: %w", domain.ErrConflict))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Reactivate(w, newRequest(http.MethodPost, tt.body, "userId", userID.String()))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ReactivationDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedFee, body.FeeCharged)
				assert.Equal(t, entryID.String(), body.LedgerEntryID)
			}
		})
	}
}

func TestSuspensionsHandler(t *testing.T) {
	handler, m := NewMock(t)
	userID := uuid.New()

	m.activity.EXPECT().History(gomock.Any(), admin, userID).Return([]domain.SuspensionRecord{
		{ID: uuid.New(), UserID: userID, Reason: activityservice.InactivityReason, SuspendedBy: "system"},
	}, nil)
	w := httptest.NewRecorder()
	handler.Suspensions(w, newRequest(http.MethodGet, "", "userId", userID.String()))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.SuspensionDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "system", body[0].SuspendedBy)
}

func TestRunActivityHandler(t *testing.T) {
	handler, m := NewMock(t)

	t.Run("Report", func(t *testing.T) {
		m.runner.EXPECT().Run(gomock.Any()).Return(&domain.EvaluationReport{
			RunID: uuid.New(),
			Results: []domain.EvaluationResult{
				{UserID: uuid.New(), Outcome: domain.OutcomeSuspended, TaskEarnings7d: decimal.NewFromInt(1200), ReferralCount7d: 10},
			},
			Suspended: 1,
		}, nil)
		w := httptest.NewRecorder()
		handler.RunActivity(w, newRequest(http.MethodPost, "", "", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		var body domain.EvaluationReport
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 1, body.Suspended)
		require.Len(t, body.Results, 1)
		assert.Equal(t, domain.OutcomeSuspended, body.Results[0].Outcome)
		assert.Equal(t, "1200", body.Results[0].TaskEarnings7d.String())
	})

	t.Run("Overlapping run", func(t *testing.T) {
		m.runner.EXPECT().Run(gomock.Any()).Return(nil, fmt.Errorf("run in progress: %w", domain.ErrConflict))
		w := httptest.NewRecorder()
		handler.RunActivity(w, newRequest(http.MethodPost, "", "", ""))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Listing failed", func(t *testing.T) {
		m.runner.EXPECT().Run(gomock.Any()).Return(nil, errors.New("list candidates: db down"))
		w := httptest.NewRecorder()
		handler.RunActivity(w, newRequest(http.MethodPost, "", "", ""))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuditTrailHandler(t *testing.T) {
	handler, m := NewMock(t)
	target := uuid.New()

	m.audit.EXPECT().Trail(gomock.Any(), admin, target).Return([]domain.AdminAction{
		{ID: uuid.New(), Action: domain.ActionTaskApprove, ActorID: admin.UserID, ActorRole: domain.RoleAdmin, TargetID: target, Details: json.RawMessage(`{"cost":"3000"}`)},
	}, nil)
	w := httptest.NewRecorder()
	handler.AuditTrail(w, newRequest(http.MethodGet, "", "targetId", target.String()))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.AdminActionDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "task.approve", body[0].Action)
	assert.JSONEq(t, `{"cost":"3000"}`, string(body[0].Details))

	w = httptest.NewRecorder()
	handler.AuditTrail(w, newRequest(http.MethodGet, "", "targetId", "bogus"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
