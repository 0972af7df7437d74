// Package request holds the parsing steps every handler repeats before calling a service.
package request

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/pkg/auth"
	"github.com/GlebRadaev/taskearn/pkg/utils"
	"github.com/GlebRadaev/taskearn/pkg/validate"
)

// Decode reads a JSON body into dst and checks its validate tags. On failure the response is
// already written and false is returned.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

func UUIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// Principal returns the caller put in the context by auth.Middleware. Without one the zero
// principal is returned, which no service authorizes.
func Principal(r *http.Request) domain.Principal {
	p, _ := auth.PrincipalFrom(r.Context())
	return p
}
