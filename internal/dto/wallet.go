package dto

import (
	"time"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

type AccountResponseDTO struct {
	UserID      string    `json:"user_id" example:"8a1c0b7e-6f5d-4c1e-9a3f-2d4b6c8e0f12"`
	Balance     string    `json:"balance" example:"1549.50"`
	TotalEarned string    `json:"total_earned" example:"2049.50"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-05-06T12:00:00Z"`
}

func NewAccountResponse(a *domain.Account) AccountResponseDTO {
	return AccountResponseDTO{
		UserID:      a.UserID.String(),
		Balance:     a.Balance.StringFixed(2),
		TotalEarned: a.TotalEarned.StringFixed(2),
		UpdatedAt:   a.UpdatedAt,
	}
}

type LedgerEntryDTO struct {
	ID            string    `json:"id"`
	Type          string    `json:"type" example:"credit"`
	Amount        string    `json:"amount" example:"49.00"`
	BalanceBefore string    `json:"balance_before" example:"1500.50"`
	BalanceAfter  string    `json:"balance_after" example:"1549.50"`
	Reason        string    `json:"reason" example:"referral_reward"`
	Actor         string    `json:"actor" example:"system"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	CreatedAt     time.Time `json:"created_at" example:"2024-05-06T12:00:00Z"`
}

func NewLedgerEntries(entries []domain.LedgerEntry) []LedgerEntryDTO {
	resp := make([]LedgerEntryDTO, len(entries))
	for i, e := range entries {
		resp[i] = NewLedgerEntry(&e)
	}
	return resp
}

func NewLedgerEntry(e *domain.LedgerEntry) LedgerEntryDTO {
	return LedgerEntryDTO{
		ID:            e.ID.String(),
		Type:          string(e.Type),
		Amount:        e.Amount.StringFixed(2),
		BalanceBefore: e.BalanceBefore.StringFixed(2),
		BalanceAfter:  e.BalanceAfter.StringFixed(2),
		Reason:        string(e.Reason),
		Actor:         string(e.Actor),
		ReferenceID:   e.ReferenceID,
		CreatedAt:     e.CreatedAt,
	}
}

type AdjustRequestDTO struct {
	Direction string `json:"direction" validate:"required,oneof=credit debit" example:"credit"`
	Amount    string `json:"amount" validate:"required,decimal_positive" example:"100.00"`
	Note      string `json:"note" validate:"required,max=500" example:"goodwill credit"`
}
