package ledgerrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

// Append inserts an entry. There is no update or delete: the ledger is append-only.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (id, account_id, type, amount, balance_before, balance_after, reason, actor, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.AccountID, entry.Type, entry.Amount, entry.BalanceBefore,
		entry.BalanceAfter, entry.Reason, entry.Actor, entry.ReferenceID, entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, account_id, type, amount, balance_before, balance_after, reason, actor, reference_id, created_at
        FROM ledger_entries
        WHERE account_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.AccountID, &e.Type, &e.Amount, &e.BalanceBefore,
			&e.BalanceAfter, &e.Reason, &e.Actor, &e.ReferenceID, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SumCredits totals credit entries with the given reason created at or after since.
func (r *Repository) SumCredits(ctx context.Context, accountID uuid.UUID, reason domain.EntryReason, since time.Time) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM ledger_entries
        WHERE account_id = $1 AND type = 'credit' AND reason = $2 AND created_at >= $3
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, accountID, reason, since).Scan(&sum); err != nil {
		zap.L().Error("failed to sum ledger credits", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
