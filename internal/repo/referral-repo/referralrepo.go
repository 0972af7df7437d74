package referralrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, edge *domain.ReferralEdge) error {
	query := `
		INSERT INTO referral_edges (id, referrer_id, referred_user_id, kyc_status_at_referral, reward_credited, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, edge.ID, edge.ReferrerID, edge.ReferredUserID,
		edge.KYCStatusAtReferral, edge.RewardCredited, edge.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("user %s already referred: %w", edge.ReferredUserID, domain.ErrConflict)
		}
		zap.L().Error("can't save referral edge", zap.Error(err))
		return err
	}
	return nil
}

// GetByReferredForUpdate locks the edge so the reward check-and-set is atomic with the credit.
func (r *Repository) GetByReferredForUpdate(ctx context.Context, referredUserID uuid.UUID) (*domain.ReferralEdge, error) {
	query := `
        SELECT id, referrer_id, referred_user_id, kyc_status_at_referral, reward_credited, created_at
        FROM referral_edges
        WHERE referred_user_id = $1
        FOR UPDATE
    `
	var e domain.ReferralEdge
	err := r.db.QueryRow(ctx, query, referredUserID).
		Scan(&e.ID, &e.ReferrerID, &e.ReferredUserID, &e.KYCStatusAtReferral, &e.RewardCredited, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("referral of %s: %w", referredUserID, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't find referral edge", zap.Error(err))
		return nil, err
	}
	return &e, nil
}

func (r *Repository) MarkRewarded(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "UPDATE referral_edges SET reward_credited = TRUE WHERE id = $1 AND reward_credited = FALSE", id)
	if err != nil {
		zap.L().Error("can't mark referral rewarded", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("referral %s already rewarded: %w", id, domain.ErrConflict)
	}
	return nil
}

func (r *Repository) CountSince(ctx context.Context, referrerID uuid.UUID, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM referral_edges WHERE referrer_id = $1 AND created_at >= $2", referrerID, since).Scan(&n)
	if err != nil {
		zap.L().Error("can't count referrals", zap.Error(err))
		return 0, err
	}
	return n, nil
}
