package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/dto"
	"github.com/GlebRadaev/taskearn/pkg/auth"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestProvisionHandler(t *testing.T) {
	handler, service := NewMock(t)
	principal := domain.Principal{UserID: uuid.New(), Email: "a@example.com", Role: domain.RoleUser}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Provisioned",
			prepareMock: func() {
				service.EXPECT().Provision(gomock.Any(), principal).Return(&domain.User{
					ID: principal.UserID, Email: principal.Email, Role: domain.RoleUser, KYCStatus: domain.KYCPending,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Role not allowed",
			prepareMock: func() {
				service.EXPECT().Provision(gomock.Any(), principal).Return(nil, fmt.Errorf("no: %w", domain.ErrForbidden))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Store failure",
			prepareMock: func() {
				service.EXPECT().Provision(gomock.Any(), principal).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/users/provision", nil)
			r = r.WithContext(auth.WithPrincipal(r.Context(), principal))
			w := httptest.NewRecorder()
			handler.Provision(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.UserResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, principal.UserID.String(), body.ID)
				assert.Equal(t, "pending", body.KYCStatus)
				assert.Empty(t, body.RecentReferrals)
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)
	principal := domain.Principal{UserID: uuid.New(), Role: domain.RoleUser}
	referrer := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), principal.UserID).Return(&domain.User{ID: principal.UserID, ReferrerID: &referrer}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not provisioned",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), principal.UserID).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			r = r.WithContext(auth.WithPrincipal(r.Context(), principal))
			w := httptest.NewRecorder()
			handler.Me(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.UserResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, referrer.String(), body.ReferrerID)
			}
		})
	}
}
