package kyc

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/taskearn/internal/dto"
	"github.com/GlebRadaev/taskearn/internal/handlers/httperr"
	"github.com/GlebRadaev/taskearn/internal/handlers/request"
	"github.com/GlebRadaev/taskearn/pkg/utils"
)

//go:generate mockgen -source=kyc.go -destination=mock_kyc.go -package=kyc

type Service interface {
	OnKycVerified(ctx context.Context, userID uuid.UUID) (bool, error)
}

type KYCHandler struct {
	referralService Service
}

func New(referralService Service) *KYCHandler {
	return &KYCHandler{
		referralService: referralService,
	}
}

// Verified godoc
//
//	@Summary		KYC verification callback
//	@Description	Called by the KYC subsystem. Marks the user verified and pays a pending referral reward once.
//	@Tags			KYC
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.KYCVerifiedRequestDTO	true	"Verified user"
//	@Success		200		{object}	dto.KYCVerifiedResponseDTO	"Whether a reward was paid"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		403		{object}	utils.Response				"System callers only"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/kyc/verified [post]
func (h *KYCHandler) Verified(w http.ResponseWriter, r *http.Request) {
	var req dto.KYCVerifiedRequestDTO
	if !request.Decode(w, r, &req) {
		return
	}
	userID := uuid.MustParse(req.UserID)

	rewarded, err := h.referralService.OnKycVerified(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.KYCVerifiedResponseDTO{UserID: userID.String(), Rewarded: rewarded})
}
