package dto

import (
	"time"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

type UserResponseDTO struct {
	ID               string    `json:"id" example:"8a1c0b7e-6f5d-4c1e-9a3f-2d4b6c8e0f12"`
	Email            string    `json:"email" example:"user@example.com"`
	Role             string    `json:"role" example:"user"`
	KYCStatus        string    `json:"kyc_status" example:"verified"`
	IsSuspended      bool      `json:"is_suspended" example:"false"`
	SuspensionReason string    `json:"suspension_reason,omitempty"`
	SuspensionCount  int       `json:"suspension_count" example:"0"`
	ReferrerID       string    `json:"referrer_id,omitempty"`
	RecentReferrals  []string  `json:"recent_referrals"`
	ReferralCode     string    `json:"referral_code" example:"4532015114"`
	CreatedAt        time.Time `json:"created_at" example:"2024-05-06T12:00:00Z"`
}

func NewUserResponse(u *domain.User) UserResponseDTO {
	resp := UserResponseDTO{
		ID:               u.ID.String(),
		Email:            u.Email,
		Role:             string(u.Role),
		KYCStatus:        string(u.KYCStatus),
		IsSuspended:      u.IsSuspended,
		SuspensionReason: u.SuspensionReason,
		SuspensionCount:  u.SuspensionCount,
		RecentReferrals:  make([]string, len(u.RecentReferrals)),
		ReferralCode:     u.ReferralCode,
		CreatedAt:        u.CreatedAt,
	}
	if u.ReferrerID != nil {
		resp.ReferrerID = u.ReferrerID.String()
	}
	for i, id := range u.RecentReferrals {
		resp.RecentReferrals[i] = id.String()
	}
	return resp
}
