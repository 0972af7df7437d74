package memrepo

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

type Tasks struct {
	store *Store
}

func (r *Tasks) Create(ctx context.Context, task *domain.Task) error {
	defer r.store.lock(ctx)()
	if _, ok := r.store.data.tasks[task.ID]; ok {
		return fmt.Errorf("task %s: %w", task.ID, domain.ErrConflict)
	}
	r.store.data.tasks[task.ID] = *task
	return nil
}

func (r *Tasks) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	defer r.store.lock(ctx)()
	task, ok := r.store.data.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return &task, nil
}

func (r *Tasks) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return r.Get(ctx, id)
}

func (r *Tasks) List(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	defer r.store.lock(ctx)()
	var tasks []domain.Task
	for _, t := range r.store.data.tasks {
		if status == "" || t.Status == status {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt.After(tasks[j].CreatedAt) })
	return tasks, nil
}

func (r *Tasks) Update(ctx context.Context, task *domain.Task) error {
	defer r.store.lock(ctx)()
	current, ok := r.store.data.tasks[task.ID]
	if !ok {
		return fmt.Errorf("task %s: %w", task.ID, domain.ErrNotFound)
	}
	if task.CompletedCount > current.LimitCount {
		return fmt.Errorf("task %s: completed count exceeds limit", task.ID)
	}
	current.Status = task.Status
	current.Paid = task.Paid
	current.CompletedCount = task.CompletedCount
	current.PauseReason = task.PauseReason
	current.CompletionReason = task.CompletionReason
	current.UpdatedAt = task.UpdatedAt
	r.store.data.tasks[task.ID] = current
	return nil
}

type Assignments struct {
	store *Store
}

func (r *Assignments) Create(ctx context.Context, a *domain.Assignment) error {
	defer r.store.lock(ctx)()
	for _, existing := range r.store.data.assignments {
		if existing.TaskID == a.TaskID && existing.UserID == a.UserID {
			return fmt.Errorf("user %s already joined task %s: %w", a.UserID, a.TaskID, domain.ErrConflict)
		}
	}
	r.store.data.assignments[a.ID] = *a
	return nil
}

func (r *Assignments) GetForUpdate(ctx context.Context, taskID, userID uuid.UUID) (*domain.Assignment, error) {
	defer r.store.lock(ctx)()
	for _, a := range r.store.data.assignments {
		if a.TaskID == taskID && a.UserID == userID {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("assignment of %s to %s: %w", userID, taskID, domain.ErrNotFound)
}

func (r *Assignments) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Assignment, error) {
	defer r.store.lock(ctx)()
	var list []domain.Assignment
	for _, a := range r.store.data.assignments {
		if a.TaskID == taskID {
			list = append(list, a)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *Assignments) Update(ctx context.Context, a *domain.Assignment) error {
	defer r.store.lock(ctx)()
	if _, ok := r.store.data.assignments[a.ID]; !ok {
		return fmt.Errorf("assignment %s: %w", a.ID, domain.ErrNotFound)
	}
	r.store.data.assignments[a.ID] = *a
	return nil
}

func (r *Assignments) CascadeStatus(ctx context.Context, taskID uuid.UUID, from []domain.AssignmentStatus, to domain.AssignmentStatus) (int64, error) {
	defer r.store.lock(ctx)()
	var n int64
	for id, a := range r.store.data.assignments {
		if a.TaskID == taskID && slices.Contains(from, a.Status) {
			a.Status = to
			r.store.data.assignments[id] = a
			n++
		}
	}
	return n, nil
}

type Submissions struct {
	store *Store
}

func (r *Submissions) Create(ctx context.Context, s *domain.Submission) error {
	defer r.store.lock(ctx)()
	for _, existing := range r.store.data.submissions {
		if existing.TaskID == s.TaskID && existing.UserID == s.UserID && open(existing.Status) {
			return fmt.Errorf("open submission for task %s: %w", s.TaskID, domain.ErrConflict)
		}
	}
	r.store.data.submissions[s.ID] = *s
	return nil
}

func open(s domain.SubmissionStatus) bool {
	return s == domain.SubmissionPending || s == domain.SubmissionApproved
}

func (r *Submissions) Get(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	defer r.store.lock(ctx)()
	s, ok := r.store.data.submissions[id]
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}
	return &s, nil
}

func (r *Submissions) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	return r.Get(ctx, id)
}

func (r *Submissions) HasOpen(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	defer r.store.lock(ctx)()
	for _, s := range r.store.data.submissions {
		if s.TaskID == taskID && s.UserID == userID && open(s.Status) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Submissions) Update(ctx context.Context, s *domain.Submission) error {
	defer r.store.lock(ctx)()
	current, ok := r.store.data.submissions[s.ID]
	if !ok {
		return fmt.Errorf("submission %s: %w", s.ID, domain.ErrNotFound)
	}
	current.Status = s.Status
	current.Feedback = s.Feedback
	current.ReviewedAt = s.ReviewedAt
	r.store.data.submissions[s.ID] = current
	return nil
}

func (r *Submissions) ExpirePending(ctx context.Context, taskID uuid.UUID) (int64, error) {
	defer r.store.lock(ctx)()
	now := time.Now()
	var n int64
	for id, s := range r.store.data.submissions {
		if s.TaskID == taskID && s.Status == domain.SubmissionPending {
			s.Status = domain.SubmissionExpired
			s.ReviewedAt = &now
			r.store.data.submissions[id] = s
			n++
		}
	}
	return n, nil
}
