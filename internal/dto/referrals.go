package dto

import (
	"time"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

type ReferralRequestDTO struct {
	Code string `json:"code" validate:"required,referral_code" example:"4532015114"`
}

type ReferralResponseDTO struct {
	ID                  string    `json:"id"`
	ReferrerID          string    `json:"referrer_id"`
	ReferredUserID      string    `json:"referred_user_id"`
	KYCStatusAtReferral string    `json:"kyc_status_at_referral" example:"pending"`
	RewardCredited      bool      `json:"reward_credited"`
	CreatedAt           time.Time `json:"created_at"`
}

func NewReferralResponse(e *domain.ReferralEdge) ReferralResponseDTO {
	return ReferralResponseDTO{
		ID:                  e.ID.String(),
		ReferrerID:          e.ReferrerID.String(),
		ReferredUserID:      e.ReferredUserID.String(),
		KYCStatusAtReferral: string(e.KYCStatusAtReferral),
		RewardCredited:      e.RewardCredited,
		CreatedAt:           e.CreatedAt,
	}
}

type KYCVerifiedRequestDTO struct {
	UserID string `json:"user_id" validate:"required,uuid" example:"8a1c0b7e-6f5d-4c1e-9a3f-2d4b6c8e0f12"`
}

type KYCVerifiedResponseDTO struct {
	UserID   string `json:"user_id"`
	Rewarded bool   `json:"rewarded"`
}
