package userrepo

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

// RecentReferralsLimit bounds the display list kept on the referrer.
const RecentReferralsLimit = 10

const userColumns = `id, email, role, kyc_status, is_suspended, suspension_reason, suspension_count,
        referrer_id, recent_referrals, referral_code, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Role, &u.KYCStatus, &u.IsSuspended, &u.SuspensionReason,
		&u.SuspensionCount, &u.ReferrerID, &u.RecentReferrals, &u.ReferralCode, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *Repository) get(ctx context.Context, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return repo.get(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (repo *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return repo.get(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1 FOR UPDATE", id)
}

func (repo *Repository) GetByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return repo.get(ctx, "SELECT "+userColumns+" FROM users WHERE referral_code = $1", code)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, email, role, kyc_status, referral_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	_, err := repo.db.Exec(ctx, query, user.ID, user.Email, user.Role, user.KYCStatus, user.ReferralCode, user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("user %s: %w", user.Email, domain.ErrConflict)
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ListActiveVerified returns ids of verified users that are not suspended.
func (repo *Repository) ListActiveVerified(ctx context.Context) ([]uuid.UUID, error) {
	query := `
        SELECT id
        FROM users
        WHERE kyc_status = 'verified' AND is_suspended = FALSE
        ORDER BY created_at
    `
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list verified users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (repo *Repository) SetKYCStatus(ctx context.Context, id uuid.UUID, status domain.KYCStatus) error {
	return repo.exec(ctx, "UPDATE users SET kyc_status = $1 WHERE id = $2", status, id)
}

func (repo *Repository) SetSuspended(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
        UPDATE users
        SET is_suspended = TRUE, suspension_reason = $1, suspension_count = suspension_count + 1
        WHERE id = $2
    `
	return repo.exec(ctx, query, reason, id)
}

func (repo *Repository) ClearSuspended(ctx context.Context, id uuid.UUID) error {
	return repo.exec(ctx, "UPDATE users SET is_suspended = FALSE, suspension_reason = '' WHERE id = $1", id)
}

// SetReferrer only succeeds while referrer_id is still empty.
func (repo *Repository) SetReferrer(ctx context.Context, id, referrerID uuid.UUID) error {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET referrer_id = $1 WHERE id = $2 AND referrer_id IS NULL", referrerID, id)
	if err != nil {
		zap.L().Error("can't set referrer", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s already referred: %w", id, domain.ErrConflict)
	}
	return nil
}

func (repo *Repository) PushRecentReferral(ctx context.Context, id, referredID uuid.UUID) error {
	query := `
        UPDATE users
        SET recent_referrals = (ARRAY[$1::uuid] || recent_referrals)[1:$2]
        WHERE id = $3
    `
	return repo.exec(ctx, query, referredID, RecentReferralsLimit, id)
}

func (repo *Repository) exec(ctx context.Context, query string, args ...any) error {
	tag, err := repo.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user: %w", domain.ErrNotFound)
	}
	return nil
}
