package wallet

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
	"github.com/GlebRadaev/taskearn/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withPrincipal(r *http.Request, p domain.Principal) *http.Request {
	return r.WithContext(auth.WithPrincipal(r.Context(), p))
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetWalletHandler(t *testing.T) {
	handler, service := NewMock(t)
	principal := domain.Principal{UserID: uuid.New(), Role: domain.RoleUser}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.AccountResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), principal.UserID).Return(&domain.Account{
					UserID:      principal.UserID,
					Balance:     decimal.RequireFromString("100.5"),
					TotalEarned: decimal.RequireFromString("150.25"),
					UpdatedAt:   time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AccountResponseDTO{
				UserID:      principal.UserID.String(),
				Balance:     "100.50",
				TotalEarned: "150.25",
				UpdatedAt:   time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Not found",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), principal.UserID).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), principal.UserID).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withPrincipal(httptest.NewRequest(http.MethodGet, "/api/wallet", nil), principal)
			w := httptest.NewRecorder()
			handler.GetWallet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AccountResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetEntriesHandler(t *testing.T) {
	handler, service := NewMock(t)
	principal := domain.Principal{UserID: uuid.New(), Role: domain.RoleUser}
	entry := domain.LedgerEntry{
		ID:            uuid.New(),
		AccountID:     principal.UserID,
		Type:          domain.EntryCredit,
		Amount:        decimal.NewFromInt(49),
		BalanceBefore: decimal.Zero,
		BalanceAfter:  decimal.NewFromInt(49),
		Reason:        domain.ReasonReferralReward,
		Actor:         domain.ActorSystem,
	}

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Default limit",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListEntries(gomock.Any(), principal.UserID, 0).Return([]domain.LedgerEntry{entry}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Explicit limit",
			query: "?limit=5",
			prepareMock: func() {
				service.EXPECT().ListEntries(gomock.Any(), principal.UserID, 5).Return([]domain.LedgerEntry{entry}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid limit",
			query:        "?limit=lots",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "No entries",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListEntries(gomock.Any(), principal.UserID, 0).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withPrincipal(httptest.NewRequest(http.MethodGet, "/api/wallet/entries"+tt.query, nil), principal)
			w := httptest.NewRecorder()
			handler.GetEntries(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.LedgerEntryDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				require.Len(t, body, 1)
				assert.Equal(t, "49.00", body[0].Amount)
				assert.Equal(t, "referral_reward", body[0].Reason)
			}
		})
	}
}

func TestAdjustHandler(t *testing.T) {
	handler, service := NewMock(t)
	admin := domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
	userID := uuid.New()

	tests := []struct {
		name         string
		param        string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Credit",
			param: userID.String(),
			body:  `{"direction":"credit","amount":"12.50","note":"goodwill"}`,
			prepareMock: func() {
				service.EXPECT().
					AdminAdjust(gomock.Any(), admin, userID, domain.EntryCredit, gomock.Any(), "goodwill").
					DoAndReturn(func(_ context.Context, _ domain.Principal, _ uuid.UUID, _ domain.EntryType, amount decimal.Decimal, _ string) (*domain.LedgerEntry, error) {
						assert.Equal(t, "12.5", amount.String())
						return &domain.LedgerEntry{ID: uuid.New(), Type: domain.EntryCredit, Amount: amount}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Insufficient funds",
			param: userID.String(),
			body:  `{"direction":"debit","amount":"1000","note":"chargeback"}`,
			prepareMock: func() {
				service.EXPECT().
					AdminAdjust(gomock.Any(), admin, userID, domain.EntryDebit, gomock.Any(), "chargeback").
					Return(nil, fmt.Errorf("balance 0: %w", domain.ErrInsufficientFunds))
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Bad user id",
			param:        "nope",
			body:         `{"direction":"credit","amount":"1","note":"x"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			param:        userID.String(),
			body:         `{"direction":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative amount",
			param:        userID.String(),
			body:         `{"direction":"credit","amount":"-5","note":"x"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Amount finer than a cent",
			param:        userID.String(),
			body:         `{"direction":"debit","amount":"0.005","note":"x"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Unknown direction",
			param:        userID.String(),
			body:         `{"direction":"sideways","amount":"5","note":"x"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/wallet/x/adjust", strings.NewReader(tt.body))
			r = withParam(withPrincipal(r, admin), "userId", tt.param)
			w := httptest.NewRecorder()
			handler.Adjust(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
