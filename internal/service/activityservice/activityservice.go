package activityservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/pg"
	"github.com/GlebRadaev/taskearn/internal/service/walletservice"
	"github.com/GlebRadaev/taskearn/pkg/metrics"
)

//go:generate mockgen -source=activityservice.go -destination=mock_activityservice.go -package=activityservice

type UserRepo interface {
	ListActiveVerified(ctx context.Context) ([]uuid.UUID, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetSuspended(ctx context.Context, id uuid.UUID, reason string) error
	ClearSuspended(ctx context.Context, id uuid.UUID) error
}

type LedgerRepo interface {
	SumCredits(ctx context.Context, accountID uuid.UUID, reason domain.EntryReason, since time.Time) (decimal.Decimal, error)
}

type ReferralRepo interface {
	CountSince(ctx context.Context, referrerID uuid.UUID, since time.Time) (int, error)
}

type SuspensionRepo interface {
	AppendSuspension(ctx context.Context, rec *domain.SuspensionRecord) error
	AppendReactivation(ctx context.Context, rec *domain.ReactivationRecord) error
	ListSuspensions(ctx context.Context, userID uuid.UUID) ([]domain.SuspensionRecord, error)
}

type AuditRepo interface {
	Record(ctx context.Context, action *domain.AdminAction) error
}

type Wallet interface {
	Debit(ctx context.Context, req walletservice.DebitRequest) (*domain.LedgerEntry, error)
}

const (
	InactivityReason = "Failed to meet weekly activity requirements"
	Window           = 7 * 24 * time.Hour
	suspendedBy      = "system"
)

type Policy struct {
	MinWeeklyEarnings  decimal.Decimal
	MinWeeklyReferrals int
	ReactivationFee    decimal.Decimal
}

type Service struct {
	users       UserRepo
	ledger      LedgerRepo
	referrals   ReferralRepo
	suspensions SuspensionRepo
	audit       AuditRepo
	wallet      Wallet
	tx          pg.TXManager
	policy      Policy
	now         func() time.Time
}

func New(users UserRepo, ledger LedgerRepo, referrals ReferralRepo, suspensions SuspensionRepo,
	audit AuditRepo, wallet Wallet, tx pg.TXManager, policy Policy) *Service {
	return &Service{
		users:       users,
		ledger:      ledger,
		referrals:   referrals,
		suspensions: suspensions,
		audit:       audit,
		wallet:      wallet,
		tx:          tx,
		policy:      policy,
		now:         time.Now,
	}
}

// Candidates lists verified users that are not suspended yet.
func (s *Service) Candidates(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := s.users.ListActiveVerified(ctx)
	if err != nil {
		zap.L().Error("failed to list evaluation candidates", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// Evaluate decides one account in its own transaction. Failures are reported in the result,
// never returned, so a batch keeps going.
func (s *Service) Evaluate(ctx context.Context, userID uuid.UUID) domain.EvaluationResult {
	result := domain.EvaluationResult{UserID: userID, Outcome: domain.OutcomeOK, TaskEarnings7d: decimal.Zero}

	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		// Suspension is one way per run: an account suspended since listing is left alone.
		if user.IsSuspended || user.KYCStatus != domain.KYCVerified {
			return nil
		}

		now := s.now()
		since := now.Add(-Window)
		earnings, err := s.ledger.SumCredits(ctx, userID, domain.ReasonTaskReward, since)
		if err != nil {
			return err
		}
		referrals, err := s.referrals.CountSince(ctx, userID, since)
		if err != nil {
			return err
		}
		result.TaskEarnings7d = earnings
		result.ReferralCount7d = referrals

		if !earnings.LessThan(s.policy.MinWeeklyEarnings) || referrals >= s.policy.MinWeeklyReferrals {
			return nil
		}

		rec := &domain.SuspensionRecord{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        now,
			Reason:      InactivityReason,
			SuspendedBy: suspendedBy,
		}
		if err := s.suspend(ctx, rec, domain.ActionActivitySuspended, domain.SystemPrincipal(), map[string]any{
			"task_earnings_7d":  earnings.String(),
			"referral_count_7d": referrals,
		}); err != nil {
			return err
		}
		result.Outcome = domain.OutcomeSuspended
		return nil
	})
	if err != nil {
		zap.L().Error("account evaluation failed", zap.String("user_id", userID.String()), zap.Error(err))
		result.Outcome = domain.OutcomeError
		result.Error = err.Error()
	}
	metrics.RecordEvaluation(string(result.Outcome))
	return result
}

func (s *Service) suspend(ctx context.Context, rec *domain.SuspensionRecord, action string, actor domain.Principal, details map[string]any) error {
	if err := s.suspensions.AppendSuspension(ctx, rec); err != nil {
		return err
	}
	if err := s.users.SetSuspended(ctx, rec.UserID, rec.Reason); err != nil {
		return err
	}
	details["reason"] = rec.Reason
	a, err := domain.NewAdminAction(action, actor, rec.UserID, details, rec.Date)
	if err != nil {
		return err
	}
	return s.audit.Record(ctx, a)
}

type SuspendInput struct {
	Reason       string
	DurationDays int
	Permanent    bool
}

// Suspend is the manual admin path. It writes the same history record as the evaluator.
func (s *Service) Suspend(ctx context.Context, actor domain.Principal, userID uuid.UUID, in SuspendInput) (*domain.SuspensionRecord, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("suspension requires admin: %w", domain.ErrForbidden)
	}
	in.Reason = strings.TrimSpace(in.Reason)
	if in.Reason == "" {
		return nil, fmt.Errorf("suspension reason is required: %w", domain.ErrValidation)
	}
	if in.DurationDays < 0 || (in.Permanent && in.DurationDays > 0) {
		return nil, fmt.Errorf("give either a positive duration or permanent: %w", domain.ErrValidation)
	}

	var rec *domain.SuspensionRecord
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user.IsSuspended {
			return fmt.Errorf("user %s is already suspended: %w", userID, domain.ErrConflict)
		}

		now := s.now()
		rec = &domain.SuspensionRecord{
			ID:           uuid.New(),
			UserID:       userID,
			Date:         now,
			Reason:       in.Reason,
			SuspendedBy:  actor.UserID.String(),
			DurationDays: in.DurationDays,
			Permanent:    in.Permanent,
		}
		if in.DurationDays > 0 {
			end := now.AddDate(0, 0, in.DurationDays)
			rec.EndDate = &end
		}
		return s.suspend(ctx, rec, domain.ActionUserSuspend, actor, map[string]any{
			"duration_days": in.DurationDays,
			"permanent":     in.Permanent,
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Reactivate lifts a suspension. The optional fee goes through the wallet like any other debit.
func (s *Service) Reactivate(ctx context.Context, actor domain.Principal, userID uuid.UUID, chargeFee bool) (*domain.ReactivationRecord, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("reactivation requires admin: %w", domain.ErrForbidden)
	}

	var rec *domain.ReactivationRecord
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if !user.IsSuspended {
			return fmt.Errorf("user %s is not suspended: %w", userID, domain.ErrConflict)
		}

		rec = &domain.ReactivationRecord{
			ID:            uuid.New(),
			UserID:        userID,
			Date:          s.now(),
			ReactivatedBy: actor.UserID,
			FeeCharged:    decimal.Zero,
		}
		if chargeFee && s.policy.ReactivationFee.IsPositive() {
			entry, err := s.wallet.Debit(ctx, walletservice.DebitRequest{
				AccountID:   userID,
				Amount:      s.policy.ReactivationFee,
				Reason:      domain.ReasonReactivationFee,
				Actor:       domain.ActorAdmin,
				ReferenceID: rec.ID.String(),
			})
			if err != nil {
				return err
			}
			rec.FeeCharged = s.policy.ReactivationFee
			rec.LedgerEntryID = &entry.ID
		}

		if err := s.suspensions.AppendReactivation(ctx, rec); err != nil {
			return err
		}
		if err := s.users.ClearSuspended(ctx, userID); err != nil {
			return err
		}
		a, err := domain.NewAdminAction(domain.ActionUserReactivate, actor, userID, map[string]any{
			"fee": rec.FeeCharged.String(),
		}, rec.Date)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, a)
	})
	if err != nil {
		if !domain.IsDomain(err) {
			zap.L().Error("failed to reactivate user", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return nil, err
	}
	return rec, nil
}

func (s *Service) History(ctx context.Context, actor domain.Principal, userID uuid.UUID) ([]domain.SuspensionRecord, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("suspension history requires admin: %w", domain.ErrForbidden)
	}
	records, err := s.suspensions.ListSuspensions(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list suspensions", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return records, nil
}
