package userservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/pg"
	"github.com/GlebRadaev/taskearn/pkg/validate"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type Repo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Wallet interface {
	CreateAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
}

type Service struct {
	userRepo Repo
	wallet   Wallet
	tx       pg.TXManager
}

func New(repo Repo, wallet Wallet, tx pg.TXManager) *Service {
	return &Service{
		userRepo: repo,
		wallet:   wallet,
		tx:       tx,
	}
}

// Provision creates the user row and its wallet account the first time a principal shows up.
// Later calls return the stored user.
func (s *Service) Provision(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	switch principal.Role {
	case domain.RoleUser, domain.RoleAdvertiser, domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("role %q cannot be provisioned: %w", principal.Role, domain.ErrForbidden)
	}
	if principal.UserID == uuid.Nil {
		return nil, fmt.Errorf("principal has no user id: %w", domain.ErrValidation)
	}

	existing, err := s.userRepo.Get(ctx, principal.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}

	code := validate.NewReferralCode()

	var user *domain.User
	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		user, err = s.userRepo.Create(ctx, &domain.User{
			ID:           principal.UserID,
			Email:        strings.ToLower(strings.TrimSpace(principal.Email)),
			Role:         principal.Role,
			KYCStatus:    domain.KYCPending,
			ReferralCode: code,
		})
		if err != nil {
			return err
		}
		_, err = s.wallet.CreateAccount(ctx, user.ID)
		return err
	})
	if errors.Is(err, domain.ErrConflict) {
		// a concurrent first request won the insert
		if existing, getErr := s.userRepo.Get(ctx, principal.UserID); getErr == nil {
			return existing, nil
		}
	}
	if err != nil {
		if !domain.IsDomain(err) {
			zap.L().Error("can't provision user", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("user successfully provisioned",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		if !domain.IsDomain(err) {
			zap.L().Error("can't get user", zap.Error(err))
		}
		return nil, err
	}
	return user, nil
}
