package users

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/dto"
	"github.com/GlebRadaev/taskearn/internal/handlers/httperr"
	"github.com/GlebRadaev/taskearn/internal/handlers/request"
	"github.com/GlebRadaev/taskearn/pkg/utils"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

type Service interface {
	Provision(ctx context.Context, principal domain.Principal) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Provision godoc
//
//	@Summary		Provision the calling user
//	@Description	Create the user and its wallet account on first contact. Repeated calls return the existing user.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO	"Provisioned user"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		403	{object}	utils.Response		"Role cannot hold an account"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/users/provision [post]
func (h *UserHandler) Provision(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Provision(r.Context(), request.Principal(r))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// Me godoc
//
//	@Summary		Get the calling user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO	"Current user"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		404	{object}	utils.Response		"User not provisioned yet"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), request.Principal(r).UserID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}
