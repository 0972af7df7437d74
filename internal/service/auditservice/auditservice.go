package auditservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

//go:generate mockgen -source=auditservice.go -destination=mock_auditservice.go -package=auditservice

type Repo interface {
	ListByTarget(ctx context.Context, targetID uuid.UUID) ([]domain.AdminAction, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Trail returns every audited action against a task, submission, user or referral, oldest first.
func (s *Service) Trail(ctx context.Context, actor domain.Principal, targetID uuid.UUID) ([]domain.AdminAction, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("audit trail requires admin: %w", domain.ErrForbidden)
	}
	actions, err := s.repo.ListByTarget(ctx, targetID)
	if err != nil {
		zap.L().Error("failed to list admin actions", zap.String("target_id", targetID.String()), zap.Error(err))
		return nil, err
	}
	return actions, nil
}
