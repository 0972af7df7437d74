package dto

import (
	"encoding/json"
	"time"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

type SuspendRequestDTO struct {
	Reason       string `json:"reason" validate:"required,max=500" example:"fraudulent submissions"`
	DurationDays int    `json:"duration_days" validate:"gte=0" example:"30"`
	Permanent    bool   `json:"permanent" example:"false"`
}

type ReactivateRequestDTO struct {
	ChargeFee bool `json:"charge_fee" example:"true"`
}

type SuspensionDTO struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Date         time.Time  `json:"date"`
	Reason       string     `json:"reason" example:"Failed to meet weekly activity requirements"`
	SuspendedBy  string     `json:"suspended_by" example:"system"`
	DurationDays int        `json:"duration_days,omitempty"`
	Permanent    bool       `json:"permanent"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

func NewSuspension(s *domain.SuspensionRecord) SuspensionDTO {
	return SuspensionDTO{
		ID:           s.ID.String(),
		UserID:       s.UserID.String(),
		Date:         s.Date,
		Reason:       s.Reason,
		SuspendedBy:  s.SuspendedBy,
		DurationDays: s.DurationDays,
		Permanent:    s.Permanent,
		EndDate:      s.EndDate,
	}
}

func NewSuspensions(records []domain.SuspensionRecord) []SuspensionDTO {
	resp := make([]SuspensionDTO, len(records))
	for i := range records {
		resp[i] = NewSuspension(&records[i])
	}
	return resp
}

type ReactivationDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Date          time.Time `json:"date"`
	ReactivatedBy string    `json:"reactivated_by"`
	FeeCharged    string    `json:"fee_charged" example:"100.00"`
	LedgerEntryID string    `json:"ledger_entry_id,omitempty"`
}

func NewReactivation(r *domain.ReactivationRecord) ReactivationDTO {
	resp := ReactivationDTO{
		ID:            r.ID.String(),
		UserID:        r.UserID.String(),
		Date:          r.Date,
		ReactivatedBy: r.ReactivatedBy.String(),
		FeeCharged:    r.FeeCharged.StringFixed(2),
	}
	if r.LedgerEntryID != nil {
		resp.LedgerEntryID = r.LedgerEntryID.String()
	}
	return resp
}

type AdminActionDTO struct {
	ID        string          `json:"id"`
	Action    string          `json:"action" example:"task.approve"`
	ActorID   string          `json:"actor_id"`
	ActorRole string          `json:"actor_role" example:"admin"`
	TargetID  string          `json:"target_id"`
	Details   json.RawMessage `json:"details" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewAdminActions(actions []domain.AdminAction) []AdminActionDTO {
	resp := make([]AdminActionDTO, len(actions))
	for i, a := range actions {
		resp[i] = AdminActionDTO{
			ID:        a.ID.String(),
			Action:    a.Action,
			ActorID:   a.ActorID.String(),
			ActorRole: string(a.ActorRole),
			TargetID:  a.TargetID.String(),
			Details:   a.Details,
			CreatedAt: a.CreatedAt,
		}
	}
	return resp
}
