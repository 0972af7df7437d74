package assignmentrepo

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

const assignmentColumns = "id, task_id, user_id, status, payment, payment_received_status, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var a domain.Assignment
	if err := row.Scan(&a.ID, &a.TaskID, &a.UserID, &a.Status, &a.Payment, &a.PaymentReceivedStatus, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, a *domain.Assignment) error {
	query := `
        INSERT INTO task_assignments (id, task_id, user_id, status, payment, payment_received_status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, a.ID, a.TaskID, a.UserID, a.Status, a.Payment, a.PaymentReceivedStatus, a.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("user %s already joined task %s: %w", a.UserID, a.TaskID, domain.ErrConflict)
		}
		zap.L().Error("can't save assignment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetForUpdate(ctx context.Context, taskID, userID uuid.UUID) (*domain.Assignment, error) {
	query := "SELECT " + assignmentColumns + " FROM task_assignments WHERE task_id = $1 AND user_id = $2 FOR UPDATE"
	a, err := scanAssignment(r.db.QueryRow(ctx, query, taskID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("assignment for task %s: %w", taskID, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't find assignment", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Assignment, error) {
	query := "SELECT " + assignmentColumns + " FROM task_assignments WHERE task_id = $1 ORDER BY created_at"
	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		zap.L().Error("can't get assignments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			zap.L().Error("can't scan assignment row", zap.Error(err))
			return nil, err
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

func (r *Repository) Update(ctx context.Context, a *domain.Assignment) error {
	query := `
        UPDATE task_assignments
        SET status = $1, payment = $2, payment_received_status = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, a.Status, a.Payment, a.PaymentReceivedStatus, a.ID)
	if err != nil {
		zap.L().Error("failed to update assignment", zap.Error(err))
		return err
	}
	return nil
}

// CascadeStatus moves every assignment of the task in one of the from statuses to the to status.
func (r *Repository) CascadeStatus(ctx context.Context, taskID uuid.UUID, from []domain.AssignmentStatus, to domain.AssignmentStatus) (int64, error) {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}
	query := `
        UPDATE task_assignments
        SET status = $1
        WHERE task_id = $2 AND status = ANY($3)
    `
	tag, err := r.db.Exec(ctx, query, to, taskID, statuses)
	if err != nil {
		zap.L().Error("failed to cascade assignment status", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
