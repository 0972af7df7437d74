package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/pkg/utils"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{"Validation", fmt.Errorf("title is required: %w", domain.ErrValidation), http.StatusUnprocessableEntity, "title is required: validation failed"},
		{"Invalid amount", domain.ErrInvalidAmount, http.StatusUnprocessableEntity, "invalid amount"},
		{"Insufficient funds", fmt.Errorf("balance 10 below 30: %w", domain.ErrInsufficientFunds), http.StatusPaymentRequired, "balance 10 below 30: insufficient funds"},
		{"Not found", domain.ErrNotFound, http.StatusNotFound, "not found"},
		{"Conflict", domain.ErrConflict, http.StatusConflict, "conflict"},
		{"Invalid transition", domain.ErrInvalidTransition, http.StatusConflict, "invalid transition"},
		{"Forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"Store error is hidden", errors.New("pq: connection refused"), http.StatusInternalServerError, InternalMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Respond(rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp utils.Response
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
