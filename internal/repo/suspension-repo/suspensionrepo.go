package suspensionrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/pg"
)

// Repository keeps the suspension and reactivation history. Both tables are append-only.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) AppendSuspension(ctx context.Context, rec *domain.SuspensionRecord) error {
	query := `
		INSERT INTO suspension_records (id, user_id, date, reason, suspended_by, duration_days, permanent, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, rec.ID, rec.UserID, rec.Date, rec.Reason, rec.SuspendedBy,
		rec.DurationDays, rec.Permanent, rec.EndDate)
	if err != nil {
		zap.L().Error("can't append suspension record", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AppendReactivation(ctx context.Context, rec *domain.ReactivationRecord) error {
	query := `
		INSERT INTO reactivation_records (id, user_id, date, reactivated_by, fee_charged, ledger_entry_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, rec.ID, rec.UserID, rec.Date, rec.ReactivatedBy, rec.FeeCharged, rec.LedgerEntryID)
	if err != nil {
		zap.L().Error("can't append reactivation record", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListSuspensions(ctx context.Context, userID uuid.UUID) ([]domain.SuspensionRecord, error) {
	query := `
        SELECT id, user_id, date, reason, suspended_by, duration_days, permanent, end_date
        FROM suspension_records
        WHERE user_id = $1
        ORDER BY date
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch suspension records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.SuspensionRecord
	for rows.Next() {
		var rec domain.SuspensionRecord
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.Reason, &rec.SuspendedBy,
			&rec.DurationDays, &rec.Permanent, &rec.EndDate)
		if err != nil {
			zap.L().Error("failed to scan suspension record", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
