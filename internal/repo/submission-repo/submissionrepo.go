package submissionrepo

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

const submissionColumns = "id, task_id, user_id, proof_data, status, feedback, submitted_at, reviewed_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, s *domain.Submission) error {
	query := `
        INSERT INTO task_submissions (id, task_id, user_id, proof_data, status, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, s.ID, s.TaskID, s.UserID, s.ProofData, s.Status, s.SubmittedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("submission for task %s: %w", s.TaskID, domain.ErrConflict)
		}
		zap.L().Error("can't save submission", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Submission, error) {
	var s domain.Submission
	err := r.db.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.TaskID, &s.UserID, &s.ProofData, &s.Status, &s.Feedback, &s.SubmittedAt, &s.ReviewedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't find submission", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	return r.get(ctx, "SELECT "+submissionColumns+" FROM task_submissions WHERE id = $1", id)
}

func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	return r.get(ctx, "SELECT "+submissionColumns+" FROM task_submissions WHERE id = $1 FOR UPDATE", id)
}

// HasOpen reports whether the user has a pending or approved submission for the task.
func (r *Repository) HasOpen(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM task_submissions
            WHERE task_id = $1 AND user_id = $2 AND status IN ('pending', 'approved')
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, taskID, userID).Scan(&exists); err != nil {
		zap.L().Error("can't check open submissions", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Update(ctx context.Context, s *domain.Submission) error {
	query := `
        UPDATE task_submissions
        SET status = $1, feedback = $2, reviewed_at = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, s.Status, s.Feedback, s.ReviewedAt, s.ID)
	if err != nil {
		zap.L().Error("failed to update submission", zap.Error(err))
		return err
	}
	return nil
}

// ExpirePending expires every pending submission of the task.
func (r *Repository) ExpirePending(ctx context.Context, taskID uuid.UUID) (int64, error) {
	query := `
        UPDATE task_submissions
        SET status = 'expired', reviewed_at = now()
        WHERE task_id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, taskID)
	if err != nil {
		zap.L().Error("failed to expire submissions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
