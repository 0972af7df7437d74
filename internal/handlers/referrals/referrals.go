package referrals

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

//go:generate mockgen -source=referrals.go -destination=mock_referrals.go -package=referrals

type Service interface {
	RegisterByCode(ctx context.Context, code string, referredUserID uuid.UUID) (*domain.ReferralEdge, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// Register godoc
//
//	@Summary		Register a referral
//	@Description	Links the caller to the owner of the referral code. A verified caller pays the referrer out at once.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReferralRequestDTO	true	"Referral code"
//	@Success		201		{object}	dto.ReferralResponseDTO	"Referral edge"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		404		{object}	utils.Response			"Unknown referral code"
//	@Failure		409		{object}	utils.Response			"Already referred, self referral or cycle"
//	@Failure		422		{object}	utils.Response			"Malformed referral code"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/referrals [post]
func (h *ReferralHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.ReferralRequestDTO
	if !request.Decode(w, r, &req) {
		return
	}
	edge, err := h.referralService.RegisterByCode(r.Context(), req.Code, request.Principal(r).UserID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewReferralResponse(edge))
}
