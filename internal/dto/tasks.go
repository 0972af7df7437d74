package dto

import (
	"time"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

type CreateTaskRequestDTO struct {
	Title          string    `json:"title" validate:"required,max=200" example:"Install and rate the app"`
	Description    string    `json:"description" validate:"max=5000"`
	RateToUser     string    `json:"rate_to_user" validate:"required,decimal_positive" example:"25.00"`
	LimitCount     int       `json:"limit_count" validate:"required,gt=0" example:"100"`
	AdvertiserCost string    `json:"advertiser_cost" validate:"required,decimal_nonnegative" example:"30.00"`
	StartAt        time.Time `json:"start_at" validate:"required" example:"2024-05-01T00:00:00Z"`
	EndAt          time.Time `json:"end_at" validate:"required,gtfield=StartAt" example:"2024-06-01T00:00:00Z"`
	RequireKYC     bool      `json:"require_kyc" example:"true"`
}

type TaskResponseDTO struct {
	ID               string    `json:"id"`
	AdvertiserID     string    `json:"advertiser_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	RateToUser       string    `json:"rate_to_user" example:"25.00"`
	LimitCount       int       `json:"limit_count" example:"100"`
	AdvertiserCost   string    `json:"advertiser_cost" example:"30.00"`
	Status           string    `json:"status" example:"approved"`
	Paid             bool      `json:"paid"`
	StartAt          time.Time `json:"start_at"`
	EndAt            time.Time `json:"end_at"`
	RequireKYC       bool      `json:"require_kyc"`
	CompletedCount   int       `json:"completed_count" example:"3"`
	PauseReason      string    `json:"pause_reason,omitempty"`
	CompletionReason string    `json:"completion_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewTaskResponse(t *domain.Task) TaskResponseDTO {
	return TaskResponseDTO{
		ID:               t.ID.String(),
		AdvertiserID:     t.AdvertiserID.String(),
		Title:            t.Title,
		Description:      t.Description,
		RateToUser:       t.RateToUser.StringFixed(2),
		LimitCount:       t.LimitCount,
		AdvertiserCost:   t.AdvertiserCost.StringFixed(2),
		Status:           string(t.Status),
		Paid:             t.Paid,
		StartAt:          t.StartAt,
		EndAt:            t.EndAt,
		RequireKYC:       t.RequireKYC,
		CompletedCount:   t.CompletedCount,
		PauseReason:      t.PauseReason,
		CompletionReason: t.CompletionReason,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func NewTaskList(tasks []domain.Task) []TaskResponseDTO {
	resp := make([]TaskResponseDTO, len(tasks))
	for i := range tasks {
		resp[i] = NewTaskResponse(&tasks[i])
	}
	return resp
}

type AssignmentDTO struct {
	ID                    string    `json:"id"`
	TaskID                string    `json:"task_id"`
	UserID                string    `json:"user_id"`
	Status                string    `json:"status" example:"active"`
	Payment               string    `json:"payment" example:"25.00"`
	PaymentReceivedStatus string    `json:"payment_received_status" example:"pending"`
	CreatedAt             time.Time `json:"created_at"`
}

func NewAssignment(a *domain.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                    a.ID.String(),
		TaskID:                a.TaskID.String(),
		UserID:                a.UserID.String(),
		Status:                string(a.Status),
		Payment:               a.Payment.StringFixed(2),
		PaymentReceivedStatus: string(a.PaymentReceivedStatus),
		CreatedAt:             a.CreatedAt,
	}
}

func NewAssignments(assignments []domain.Assignment) []AssignmentDTO {
	resp := make([]AssignmentDTO, len(assignments))
	for i := range assignments {
		resp[i] = NewAssignment(&assignments[i])
	}
	return resp
}

type SubmitProofRequestDTO struct {
	ProofData string `json:"proof_data" validate:"required,max=10000" example:"https://files.example.com/proof/123.png"`
}

type SubmissionDTO struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id"`
	UserID      string     `json:"user_id"`
	ProofData   string     `json:"proof_data"`
	Status      string     `json:"status" example:"pending"`
	Feedback    string     `json:"feedback,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
}

func NewSubmission(s *domain.Submission) SubmissionDTO {
	return SubmissionDTO{
		ID:          s.ID.String(),
		TaskID:      s.TaskID.String(),
		UserID:      s.UserID.String(),
		ProofData:   s.ProofData,
		Status:      string(s.Status),
		Feedback:    s.Feedback,
		SubmittedAt: s.SubmittedAt,
		ReviewedAt:  s.ReviewedAt,
	}
}

type ReviewRequestDTO struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject" example:"approve"`
	Feedback string `json:"feedback" validate:"max=2000" example:"looks good"`
}

type PauseRequestDTO struct {
	Reason string `json:"reason" validate:"required,max=500" example:"advertiser request"`
}

type CloseRequestDTO struct {
	Reason          string `json:"reason" validate:"required,max=500" example:"campaign ended"`
	RefundRemaining bool   `json:"refund_remaining" example:"true"`
}

type OutcomeResponseDTO struct {
	Task   TaskResponseDTO `json:"task"`
	Refund string          `json:"refund" example:"2910.00"`
}
