package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/dto"
	"github.com/GlebRadaev/taskearn/pkg/auth"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedOK   bool
		expectedCode int
	}{
		{"Valid", `{"decision":"approve","feedback":"ok"}`, true, http.StatusOK},
		{"Malformed JSON", `{"decision":`, false, http.StatusBadRequest},
		{"Failed tag", `{"decision":"maybe"}`, false, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			var req dto.ReviewRequestDTO
			ok := Decode(w, r, &req)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUUIDParam(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name       string
		value      string
		expectedOK bool
	}{
		{"Valid", id.String(), true},
		{"Garbage", "42", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.value)
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			got, ok := UUIDParam(w, r, "id")
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, id, got)
			} else {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestPrincipal(t *testing.T) {
	p := domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, domain.Principal{}, Principal(r))

	r = r.WithContext(auth.WithPrincipal(r.Context(), p))
	assert.Equal(t, p, Principal(r))
}
