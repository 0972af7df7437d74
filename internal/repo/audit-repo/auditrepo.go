package auditrepo

import (
	"context"

	"github.com/google/uuid"
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

func (r *Repository) Record(ctx context.Context, action *domain.AdminAction) error {
	query := `
		INSERT INTO admin_actions (id, action, actor_id, actor_role, target_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, action.ID, action.Action, action.ActorID, action.ActorRole,
		action.TargetID, action.Details, action.CreatedAt)
	if err != nil {
		zap.L().Error("can't record admin action", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByTarget(ctx context.Context, targetID uuid.UUID) ([]domain.AdminAction, error) {
	query := `
        SELECT id, action, actor_id, actor_role, target_id, details, created_at
        FROM admin_actions
        WHERE target_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, targetID)
	if err != nil {
		zap.L().Error("failed to fetch admin actions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var actions []domain.AdminAction
	for rows.Next() {
		var a domain.AdminAction
		if err := rows.Scan(&a.ID, &a.Action, &a.ActorID, &a.ActorRole, &a.TargetID, &a.Details, &a.CreatedAt); err != nil {
			zap.L().Error("failed to scan admin action row", zap.Error(err))
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
