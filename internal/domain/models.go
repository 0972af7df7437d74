package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID               uuid.UUID   `db:"id"`
	Email            string      `db:"email"`
	Role             Role        `db:"role"`
	KYCStatus        KYCStatus   `db:"kyc_status"`
	IsSuspended      bool        `db:"is_suspended"`
	SuspensionReason string      `db:"suspension_reason"`
	SuspensionCount  int         `db:"suspension_count"`
	ReferrerID       *uuid.UUID  `db:"referrer_id"`
	RecentReferrals  []uuid.UUID `db:"recent_referrals"`
	ReferralCode     string      `db:"referral_code"`
	CreatedAt        time.Time   `db:"created_at"`
}

// Account is the wallet of a user or an advertiser. It is keyed by the owner's user id.
type Account struct {
	UserID      uuid.UUID       `db:"user_id"`
	Balance     decimal.Decimal `db:"balance"`
	TotalEarned decimal.Decimal `db:"total_earned"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type LedgerEntry struct {
	ID            uuid.UUID       `db:"id"`
	AccountID     uuid.UUID       `db:"account_id"`
	Type          EntryType       `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	BalanceBefore decimal.Decimal `db:"balance_before"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	Reason        EntryReason     `db:"reason"`
	Actor         Actor           `db:"actor"`
	ReferenceID   string          `db:"reference_id"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Task struct {
	ID               uuid.UUID       `db:"id"`
	AdvertiserID     uuid.UUID       `db:"advertiser_id"`
	Title            string          `db:"title"`
	Description      string          `db:"description"`
	RateToUser       decimal.Decimal `db:"rate_to_user"`
	LimitCount       int             `db:"limit_count"`
	AdvertiserCost   decimal.Decimal `db:"advertiser_cost"`
	Status           TaskStatus      `db:"status"`
	Paid             bool            `db:"paid"`
	StartAt          time.Time       `db:"start_at"`
	EndAt            time.Time       `db:"end_at"`
	RequireKYC       bool            `db:"require_kyc"`
	CompletedCount   int             `db:"completed_count"`
	PauseReason      string          `db:"pause_reason"`
	CompletionReason string          `db:"completion_reason"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// MoneyScale is the number of fractional digits every money column stores.
const MoneyScale = 2

// FitsMoneyScale reports whether d survives a NUMERIC(14,2) write unchanged.
func FitsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}

// TotalCost is what the advertiser pays when the task is approved.
func (t *Task) TotalCost() decimal.Decimal {
	return t.AdvertiserCost.Mul(decimal.NewFromInt(int64(t.LimitCount)))
}

// RemainingSlots never goes below zero.
func (t *Task) RemainingSlots() int {
	if t.CompletedCount >= t.LimitCount {
		return 0
	}
	return t.LimitCount - t.CompletedCount
}

type Assignment struct {
	ID                    uuid.UUID        `db:"id"`
	TaskID                uuid.UUID        `db:"task_id"`
	UserID                uuid.UUID        `db:"user_id"`
	Status                AssignmentStatus `db:"status"`
	Payment               decimal.Decimal  `db:"payment"`
	PaymentReceivedStatus PaymentStatus    `db:"payment_received_status"`
	CreatedAt             time.Time        `db:"created_at"`
}

type Submission struct {
	ID          uuid.UUID        `db:"id"`
	TaskID      uuid.UUID        `db:"task_id"`
	UserID      uuid.UUID        `db:"user_id"`
	ProofData   string           `db:"proof_data"`
	Status      SubmissionStatus `db:"status"`
	Feedback    string           `db:"feedback"`
	SubmittedAt time.Time        `db:"submitted_at"`
	ReviewedAt  *time.Time       `db:"reviewed_at"`
}

type AdminAction struct {
	ID        uuid.UUID       `db:"id"`
	Action    string          `db:"action"`
	ActorID   uuid.UUID       `db:"actor_id"`
	ActorRole Role            `db:"actor_role"`
	TargetID  uuid.UUID       `db:"target_id"`
	Details   json.RawMessage `db:"details"`
	CreatedAt time.Time       `db:"created_at"`
}

type SuspensionRecord struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	Date         time.Time  `db:"date"`
	Reason       string     `db:"reason"`
	SuspendedBy  string     `db:"suspended_by"`
	DurationDays int        `db:"duration_days"`
	Permanent    bool       `db:"permanent"`
	EndDate      *time.Time `db:"end_date"`
}

type ReactivationRecord struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Date          time.Time       `db:"date"`
	ReactivatedBy uuid.UUID       `db:"reactivated_by"`
	FeeCharged    decimal.Decimal `db:"fee_charged"`
	LedgerEntryID *uuid.UUID      `db:"ledger_entry_id"`
}

type ReferralEdge struct {
	ID                  uuid.UUID `db:"id"`
	ReferrerID          uuid.UUID `db:"referrer_id"`
	ReferredUserID      uuid.UUID `db:"referred_user_id"`
	KYCStatusAtReferral KYCStatus `db:"kyc_status_at_referral"`
	RewardCredited      bool      `db:"reward_credited"`
	CreatedAt           time.Time `db:"created_at"`
}

// Principal is the acting identity handed over by the identity provider.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type EvaluationOutcome string

const (
	OutcomeSuspended EvaluationOutcome = "suspended"
	OutcomeOK        EvaluationOutcome = "ok"
	OutcomeError     EvaluationOutcome = "error"
)

type EvaluationResult struct {
	UserID          uuid.UUID         `json:"user_id"`
	Outcome         EvaluationOutcome `json:"outcome"`
	TaskEarnings7d  decimal.Decimal   `json:"task_earnings_7d"`
	ReferralCount7d int               `json:"referral_count_7d"`
	Error           string            `json:"error,omitempty"`
}

type EvaluationReport struct {
	RunID      uuid.UUID          `json:"run_id"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	Results    []EvaluationResult `json:"results"`
	Suspended  int                `json:"suspended"`
	OK         int                `json:"ok"`
	Errors     int                `json:"errors"`
}
