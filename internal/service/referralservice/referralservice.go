package referralservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/pg"
	"github.com/GlebRadaev/taskearn/internal/service/walletservice"
	"github.com/GlebRadaev/taskearn/pkg/validate"
)

//go:generate mockgen -source=referralservice.go -destination=mock_referralservice.go -package=referralservice

type UserRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.User, error)
	SetKYCStatus(ctx context.Context, id uuid.UUID, status domain.KYCStatus) error
	SetReferrer(ctx context.Context, id, referrerID uuid.UUID) error
	PushRecentReferral(ctx context.Context, id, referredID uuid.UUID) error
}

type ReferralRepo interface {
	Create(ctx context.Context, edge *domain.ReferralEdge) error
	GetByReferredForUpdate(ctx context.Context, referredUserID uuid.UUID) (*domain.ReferralEdge, error)
	MarkRewarded(ctx context.Context, id uuid.UUID) error
}

type AuditRepo interface {
	Record(ctx context.Context, action *domain.AdminAction) error
}

type Wallet interface {
	Credit(ctx context.Context, req walletservice.CreditRequest) (*domain.LedgerEntry, error)
}

// maxChainDepth bounds the ancestor walk used for cycle detection.
const maxChainDepth = 1000

type Service struct {
	users     UserRepo
	referrals ReferralRepo
	audit     AuditRepo
	wallet    Wallet
	tx        pg.TXManager
	reward    decimal.Decimal
	now       func() time.Time
}

func New(users UserRepo, referrals ReferralRepo, audit AuditRepo, wallet Wallet, tx pg.TXManager, reward decimal.Decimal) *Service {
	return &Service{
		users:     users,
		referrals: referrals,
		audit:     audit,
		wallet:    wallet,
		tx:        tx,
		reward:    reward,
		now:       time.Now,
	}
}

// RegisterByCode resolves the referrer from a referral code first.
func (s *Service) RegisterByCode(ctx context.Context, code string, referredUserID uuid.UUID) (*domain.ReferralEdge, error) {
	if !validate.IsReferralCode(code) {
		return nil, fmt.Errorf("malformed referral code: %w", domain.ErrValidation)
	}
	referrer, err := s.users.GetByReferralCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.RegisterReferral(ctx, referrer.ID, referredUserID)
}

// RegisterReferral links a user to their one and only referrer. An already verified user pays out
// the reward immediately; otherwise the edge waits for OnKycVerified.
func (s *Service) RegisterReferral(ctx context.Context, referrerID, referredUserID uuid.UUID) (*domain.ReferralEdge, error) {
	if referrerID == referredUserID {
		return nil, fmt.Errorf("user cannot refer themselves: %w", domain.ErrConflict)
	}

	var edge *domain.ReferralEdge
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		referrer, referred, err := s.lockPair(ctx, referrerID, referredUserID)
		if err != nil {
			return err
		}
		if referred.ReferrerID != nil {
			return fmt.Errorf("user %s already has a referrer: %w", referred.ID, domain.ErrConflict)
		}
		if err := s.checkCycle(ctx, referrer, referred.ID); err != nil {
			return err
		}

		edge = &domain.ReferralEdge{
			ID:                  uuid.New(),
			ReferrerID:          referrer.ID,
			ReferredUserID:      referred.ID,
			KYCStatusAtReferral: referred.KYCStatus,
			CreatedAt:           s.now(),
		}
		if err := s.referrals.Create(ctx, edge); err != nil {
			return err
		}
		if err := s.users.SetReferrer(ctx, referred.ID, referrer.ID); err != nil {
			return err
		}
		if err := s.users.PushRecentReferral(ctx, referrer.ID, referred.ID); err != nil {
			return err
		}

		if referred.KYCStatus == domain.KYCVerified {
			return s.payOut(ctx, edge)
		}
		return nil
	})
	if err != nil {
		if !domain.IsDomain(err) {
			zap.L().Error("failed to register referral", zap.Error(err))
		}
		return nil, err
	}
	zap.L().Info("referral registered",
		zap.String("referrer_id", referrerID.String()),
		zap.String("referred_id", referredUserID.String()),
		zap.Bool("rewarded", edge.RewardCredited))
	return edge, nil
}

// lockPair takes both user rows in id order so two registrations over the same pair cannot deadlock.
func (s *Service) lockPair(ctx context.Context, referrerID, referredID uuid.UUID) (*domain.User, *domain.User, error) {
	first, second := referrerID, referredID
	swapped := false
	if first.String() > second.String() {
		first, second = second, first
		swapped = true
	}
	a, err := s.users.GetForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.users.GetForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}
	if swapped {
		return b, a, nil
	}
	return a, b, nil
}

// checkCycle walks the referrer's ancestors. Finding the referred user there would close a loop.
func (s *Service) checkCycle(ctx context.Context, referrer *domain.User, referredID uuid.UUID) error {
	current := referrer.ReferrerID
	for depth := 0; current != nil; depth++ {
		if *current == referredID {
			return fmt.Errorf("referral would create a cycle: %w", domain.ErrConflict)
		}
		if depth >= maxChainDepth {
			return fmt.Errorf("referral chain deeper than %d: %w", maxChainDepth, domain.ErrConflict)
		}
		ancestor, err := s.users.Get(ctx, *current)
		if err != nil {
			return err
		}
		current = ancestor.ReferrerID
	}
	return nil
}

// payOut credits the referrer and flips rewardCredited in the same transaction.
func (s *Service) payOut(ctx context.Context, edge *domain.ReferralEdge) error {
	if s.reward.IsPositive() {
		_, err := s.wallet.Credit(ctx, walletservice.CreditRequest{
			AccountID:   edge.ReferrerID,
			Amount:      s.reward,
			Reason:      domain.ReasonReferralReward,
			Actor:       domain.ActorSystem,
			ReferenceID: edge.ID.String(),
		})
		if err != nil {
			return err
		}
	}
	if err := s.referrals.MarkRewarded(ctx, edge.ID); err != nil {
		return err
	}
	edge.RewardCredited = true

	action, err := domain.NewAdminAction(domain.ActionReferralRewarded, domain.SystemPrincipal(), edge.ID, map[string]any{
		"referrer_id": edge.ReferrerID,
		"referred_id": edge.ReferredUserID,
		"amount":      s.reward.String(),
	}, s.now())
	if err != nil {
		return err
	}
	return s.audit.Record(ctx, action)
}

// OnKycVerified is the KYC subsystem callback. Repeated or concurrent calls credit the edge once:
// the user row lock serializes callers and rewardCredited is checked under it.
func (s *Service) OnKycVerified(ctx context.Context, userID uuid.UUID) (bool, error) {
	rewarded := false
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetForUpdate(ctx, userID); err != nil {
			return err
		}
		if err := s.users.SetKYCStatus(ctx, userID, domain.KYCVerified); err != nil {
			return err
		}

		edge, err := s.referrals.GetByReferredForUpdate(ctx, userID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if edge.RewardCredited {
			return nil
		}
		if err := s.payOut(ctx, edge); err != nil {
			return err
		}
		rewarded = true
		return nil
	})
	if err != nil {
		if !domain.IsDomain(err) {
			zap.L().Error("kyc verification callback failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return false, err
	}
	return rewarded, nil
}
