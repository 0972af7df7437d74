package taskrepo

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

const taskColumns = `id, advertiser_id, title, description, rate_to_user, limit_count, advertiser_cost,
        status, paid, start_at, end_at, require_kyc, completed_count, pause_reason, completion_reason,
        created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.AdvertiserID, &t.Title, &t.Description, &t.RateToUser, &t.LimitCount,
		&t.AdvertiserCost, &t.Status, &t.Paid, &t.StartAt, &t.EndAt, &t.RequireKYC, &t.CompletedCount,
		&t.PauseReason, &t.CompletionReason, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, task *domain.Task) error {
	query := `
        INSERT INTO tasks (id, advertiser_id, title, description, rate_to_user, limit_count, advertiser_cost,
            status, paid, start_at, end_at, require_kyc, completed_count, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `
	_, err := r.db.Exec(ctx, query, task.ID, task.AdvertiserID, task.Title, task.Description, task.RateToUser,
		task.LimitCount, task.AdvertiserCost, task.Status, task.Paid, task.StartAt, task.EndAt, task.RequireKYC,
		task.CompletedCount, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save task", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Task, error) {
	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't find task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return r.get(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
}

// GetForUpdate serializes lifecycle transitions and reviews of one task.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return r.get(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) List(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC"
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		zap.L().Error("can't get tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			zap.L().Error("can't scan task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// Update persists the mutable lifecycle fields of a task.
func (r *Repository) Update(ctx context.Context, task *domain.Task) error {
	query := `
        UPDATE tasks
        SET status = $1, paid = $2, completed_count = $3, pause_reason = $4, completion_reason = $5, updated_at = $6
        WHERE id = $7
    `
	tag, err := r.db.Exec(ctx, query, task.Status, task.Paid, task.CompletedCount, task.PauseReason,
		task.CompletionReason, task.UpdatedAt, task.ID)
	if err != nil {
		zap.L().Error("failed to update task", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", task.ID, domain.ErrNotFound)
	}
	return nil
}
