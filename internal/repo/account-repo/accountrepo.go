package accountrepo

import (
	"context"
	"errors"
	"fmt"

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

func (r *Repository) Create(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (user_id, balance, total_earned)
        VALUES ($1, 0, 0)
        RETURNING user_id, balance, total_earned, created_at, updated_at
    `
	var account domain.Account
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&account.UserID, &account.Balance, &account.TotalEarned, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("account %s: %w", userID, domain.ErrConflict)
		}
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) Get(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	query := `
        SELECT user_id, balance, total_earned, created_at, updated_at
        FROM accounts
        WHERE user_id = $1
    `
	return r.scanOne(ctx, query, userID)
}

// GetForUpdate locks the account row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	query := `
        SELECT user_id, balance, total_earned, created_at, updated_at
        FROM accounts
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanOne(ctx, query, userID)
}

func (r *Repository) scanOne(ctx context.Context, query string, userID uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&account.UserID, &account.Balance, &account.TotalEarned, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", userID, domain.ErrNotFound)
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET balance = $1, total_earned = $2, updated_at = now()
		WHERE user_id = $3
	`
	tag, err := r.db.Exec(ctx, query, account.Balance, account.TotalEarned, account.UserID)
	if err != nil {
		zap.L().Error("failed to update account balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", account.UserID, domain.ErrNotFound)
	}
	return nil
}
