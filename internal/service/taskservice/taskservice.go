package taskservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/pg"
	"github.com/GlebRadaev/taskearn/internal/service/walletservice"
	"github.com/GlebRadaev/taskearn/pkg/metrics"
)

//go:generate mockgen -source=taskservice.go -destination=mock_taskservice.go -package=taskservice

type TaskRepo interface {
	Create(ctx context.Context, task *domain.Task) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetForUpdate(ctx context.Context, taskID, userID uuid.UUID) (*domain.Assignment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	CascadeStatus(ctx context.Context, taskID uuid.UUID, from []domain.AssignmentStatus, to domain.AssignmentStatus) (int64, error)
}

type SubmissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	HasOpen(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
	Update(ctx context.Context, s *domain.Submission) error
	ExpirePending(ctx context.Context, taskID uuid.UUID) (int64, error)
}

type UserRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type AuditRepo interface {
	Record(ctx context.Context, action *domain.AdminAction) error
}

type Wallet interface {
	Credit(ctx context.Context, req walletservice.CreditRequest) (*domain.LedgerEntry, error)
	Debit(ctx context.Context, req walletservice.DebitRequest) (*domain.LedgerEntry, error)
}

type Options struct {
	// DeferredPayment lets an approval go through unpaid when the advertiser cannot cover the cost.
	DeferredPayment bool
	// AllowResubmission returns a rejected assignment to active instead of rejecting it.
	AllowResubmission bool
}

type Service struct {
	tasks       TaskRepo
	assignments AssignmentRepo
	submissions SubmissionRepo
	users       UserRepo
	audit       AuditRepo
	wallet      Wallet
	tx          pg.TXManager
	opts        Options
	now         func() time.Time
}

func New(tasks TaskRepo, assignments AssignmentRepo, submissions SubmissionRepo, users UserRepo,
	audit AuditRepo, wallet Wallet, tx pg.TXManager, opts Options) *Service {
	return &Service{
		tasks:       tasks,
		assignments: assignments,
		submissions: submissions,
		users:       users,
		audit:       audit,
		wallet:      wallet,
		tx:          tx,
		opts:        opts,
		now:         time.Now,
	}
}

const NaturalCompletionReason = "limit reached"

type CreateTaskInput struct {
	Title          string
	Description    string
	RateToUser     decimal.Decimal
	LimitCount     int
	AdvertiserCost decimal.Decimal
	StartAt        time.Time
	EndAt          time.Time
	RequireKYC     bool
}

func (in CreateTaskInput) validate() error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("title is required: %w", domain.ErrValidation)
	case !in.RateToUser.IsPositive():
		return fmt.Errorf("rate to user must be positive: %w", domain.ErrInvalidAmount)
	case in.AdvertiserCost.IsNegative():
		return fmt.Errorf("advertiser cost must not be negative: %w", domain.ErrInvalidAmount)
	case !domain.FitsMoneyScale(in.RateToUser), !domain.FitsMoneyScale(in.AdvertiserCost):
		return fmt.Errorf("amounts are limited to %d decimal places: %w", domain.MoneyScale, domain.ErrInvalidAmount)
	case in.LimitCount <= 0:
		return fmt.Errorf("limit count must be positive: %w", domain.ErrValidation)
	case !in.EndAt.After(in.StartAt):
		return fmt.Errorf("end must be after start: %w", domain.ErrValidation)
	}
	return nil
}

func requireAdmin(actor domain.Principal) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("role %q may not manage tasks: %w", actor.Role, domain.ErrForbidden)
	}
	return nil
}

func (s *Service) CreateTask(ctx context.Context, actor domain.Principal, in CreateTaskInput) (*domain.Task, error) {
	if actor.Role != domain.RoleAdvertiser && actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("role %q may not create tasks: %w", actor.Role, domain.ErrForbidden)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := s.now()
	task := &domain.Task{
		ID:             uuid.New(),
		AdvertiserID:   actor.UserID,
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		RateToUser:     in.RateToUser,
		LimitCount:     in.LimitCount,
		AdvertiserCost: in.AdvertiserCost,
		Status:         domain.TaskPending,
		StartAt:        in.StartAt,
		EndAt:          in.EndAt,
		RequireKYC:     in.RequireKYC,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		return nil, err
	}
	metrics.RecordTaskTransition(string(domain.TaskPending))
	return task, nil
}

func (s *Service) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.tasks.Get(ctx, id)
}

func (s *Service) ListTasks(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	switch status {
	case "", domain.TaskPending, domain.TaskApproved, domain.TaskPaused, domain.TaskCompleted, domain.TaskCancelled:
	default:
		return nil, fmt.Errorf("unknown task status %q: %w", status, domain.ErrValidation)
	}
	tasks, err := s.tasks.List(ctx, status)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (s *Service) ListAssignments(ctx context.Context, taskID uuid.UUID) ([]domain.Assignment, error) {
	if _, err := s.tasks.Get(ctx, taskID); err != nil {
		return nil, err
	}
	return s.assignments.ListByTask(ctx, taskID)
}

// transition locks the task, checks the move against the transition table and runs mutate.
// mutate updates dependents first; the task row is written last.
func (s *Service) transition(ctx context.Context, actor domain.Principal, id uuid.UUID, to domain.TaskStatus,
	action string, mutate func(ctx context.Context, task *domain.Task) (map[string]any, error)) (*domain.Task, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var result *domain.Task
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		from := task.Status
		if !from.CanTransition(to) {
			return fmt.Errorf("task %s: %s -> %s: %w", id, from, to, domain.ErrInvalidTransition)
		}

		details, err := mutate(ctx, task)
		if err != nil {
			return err
		}
		task.Status = to
		task.UpdatedAt = s.now()
		if err := s.tasks.Update(ctx, task); err != nil {
			return err
		}

		if details == nil {
			details = map[string]any{}
		}
		details["from"] = from
		details["to"] = to
		if err := s.record(ctx, action, actor, task.ID, details); err != nil {
			return err
		}
		result = task
		return nil
	})
	if err != nil {
		if !domain.IsDomain(err) {
			zap.L().Error("task transition failed", zap.String("task_id", id.String()), zap.String("to", string(to)), zap.Error(err))
		}
		return nil, err
	}

	metrics.RecordTaskTransition(string(to))
	zap.L().Info("task transitioned", zap.String("task_id", id.String()), zap.String("to", string(to)))
	return result, nil
}

func (s *Service) record(ctx context.Context, action string, actor domain.Principal, target uuid.UUID, details any) error {
	a, err := domain.NewAdminAction(action, actor, target, details, s.now())
	if err != nil {
		return err
	}
	return s.audit.Record(ctx, a)
}

func (s *Service) chargeCost(ctx context.Context, task *domain.Task) error {
	cost := task.TotalCost()
	if !cost.IsPositive() {
		return nil
	}
	_, err := s.wallet.Debit(ctx, walletservice.DebitRequest{
		AccountID:   task.AdvertiserID,
		Amount:      cost,
		Reason:      domain.ReasonTaskCost,
		Actor:       domain.ActorAdmin,
		ReferenceID: task.ID.String(),
	})
	return err
}

// ApproveTask debits the full campaign cost from the advertiser. With deferred payment an
// advertiser short of funds still gets an approved, unpaid task that SettleTask charges later.
func (s *Service) ApproveTask(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.Task, error) {
	return s.transition(ctx, actor, id, domain.TaskApproved, domain.ActionTaskApprove, func(ctx context.Context, task *domain.Task) (map[string]any, error) {
		if task.Status != domain.TaskPending {
			return nil, fmt.Errorf("task %s is %s: %w", task.ID, task.Status, domain.ErrInvalidTransition)
		}
		err := s.chargeCost(ctx, task)
		switch {
		case err == nil:
			task.Paid = true
		case s.opts.DeferredPayment && errors.Is(err, domain.ErrInsufficientFunds):
			task.Paid = false
		default:
			return nil, err
		}
		return map[string]any{"cost": task.TotalCost().String(), "paid": task.Paid}, nil
	})
}

// SettleTask charges an approved task that was let through unpaid.
func (s *Service) SettleTask(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.Task, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var result *domain.Task
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if task.Status != domain.TaskApproved && task.Status != domain.TaskPaused {
			return fmt.Errorf("task %s is %s: %w", id, task.Status, domain.ErrInvalidTransition)
		}
		if task.Paid {
			return fmt.Errorf("task %s already paid: %w", id, domain.ErrConflict)
		}
		if err := s.chargeCost(ctx, task); err != nil {
			return err
		}
		task.Paid = true
		task.UpdatedAt = s.now()
		if err := s.tasks.Update(ctx, task); err != nil {
			return err
		}
		result = task
		return s.record(ctx, domain.ActionTaskSettle, actor, task.ID, map[string]any{"cost": task.TotalCost().String()})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) PauseTask(ctx context.Context, actor domain.Principal, id uuid.UUID, reason string) (*domain.Task, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("pause reason is required: %w", domain.ErrValidation)
	}
	return s.transition(ctx, actor, id, domain.TaskPaused, domain.ActionTaskPause, func(ctx context.Context, task *domain.Task) (map[string]any, error) {
		n, err := s.assignments.CascadeStatus(ctx, task.ID, []domain.AssignmentStatus{domain.AssignmentActive}, domain.AssignmentPaused)
		if err != nil {
			return nil, err
		}
		task.PauseReason = reason
		return map[string]any{"reason": reason, "assignments": n}, nil
	})
}

func (s *Service) ResumeTask(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.Task, error) {
	return s.transition(ctx, actor, id, domain.TaskApproved, domain.ActionTaskResume, func(ctx context.Context, task *domain.Task) (map[string]any, error) {
		if task.Status != domain.TaskPaused {
			return nil, fmt.Errorf("task %s is %s, not paused: %w", task.ID, task.Status, domain.ErrInvalidTransition)
		}
		n, err := s.assignments.CascadeStatus(ctx, task.ID, []domain.AssignmentStatus{domain.AssignmentPaused}, domain.AssignmentActive)
		if err != nil {
			return nil, err
		}
		task.PauseReason = ""
		return map[string]any{"assignments": n}, nil
	})
}

// Outcome reports a terminal transition together with the refund credited to the advertiser.
type Outcome struct {
	Task   *domain.Task
	Refund decimal.Decimal
}

func (s *Service) CompleteTask(ctx context.Context, actor domain.Principal, id uuid.UUID, reason string, refundRemaining bool) (*Outcome, error) {
	return s.finishTask(ctx, actor, id, domain.TaskCompleted, domain.ActionTaskComplete, reason, refundRemaining)
}

func (s *Service) CancelTask(ctx context.Context, actor domain.Principal, id uuid.UUID, reason string, refundRemaining bool) (*Outcome, error) {
	return s.finishTask(ctx, actor, id, domain.TaskCancelled, domain.ActionTaskCancel, reason, refundRemaining)
}

func (s *Service) finishTask(ctx context.Context, actor domain.Principal, id uuid.UUID, to domain.TaskStatus,
	action, reason string, refundRemaining bool) (*Outcome, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%s reason is required: %w", to, domain.ErrValidation)
	}
	refund := decimal.Zero
	task, err := s.transition(ctx, actor, id, to, action, func(ctx context.Context, task *domain.Task) (map[string]any, error) {
		var err error
		refund, err = s.closeOut(ctx, task, to, reason, refundRemaining)
		if err != nil {
			return nil, err
		}
		return map[string]any{"reason": reason, "refund_remaining": refundRemaining, "refund": refund.String()}, nil
	})
	if err != nil {
		return nil, err
	}
	return &Outcome{Task: task, Refund: refund}, nil
}

// closeOut settles dependents of a task that is about to become terminal: assignments, pending
// submissions and the optional refund of unused slots. The task row itself is left to the caller.
func (s *Service) closeOut(ctx context.Context, task *domain.Task, to domain.TaskStatus, reason string, refundRemaining bool) (decimal.Decimal, error) {
	target := domain.AssignmentCompleted
	if to == domain.TaskCancelled {
		target = domain.AssignmentRejected
	}
	if _, err := s.assignments.CascadeStatus(ctx, task.ID, domain.NonTerminalAssignmentStatuses, target); err != nil {
		return decimal.Zero, err
	}
	if _, err := s.submissions.ExpirePending(ctx, task.ID); err != nil {
		return decimal.Zero, err
	}

	task.CompletionReason = reason
	refund := decimal.Zero
	if refundRemaining && task.Paid {
		refund = task.AdvertiserCost.Mul(decimal.NewFromInt(int64(task.RemainingSlots())))
	}
	if refund.IsPositive() {
		_, err := s.wallet.Credit(ctx, walletservice.CreditRequest{
			AccountID:   task.AdvertiserID,
			Amount:      refund,
			Reason:      domain.ReasonTaskRefund,
			Actor:       domain.ActorAdmin,
			ReferenceID: task.ID.String(),
		})
		if err != nil {
			return decimal.Zero, err
		}
	}
	return refund, nil
}

// JoinTask creates the user's assignment. The task row is locked so a join cannot slip past a
// concurrent pause or completion cascade.
func (s *Service) JoinTask(ctx context.Context, actor domain.Principal, taskID uuid.UUID) (*domain.Assignment, error) {
	if actor.Role != domain.RoleUser {
		return nil, fmt.Errorf("role %q may not join tasks: %w", actor.Role, domain.ErrForbidden)
	}

	var assignment *domain.Assignment
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.Get(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if user.IsSuspended {
			return fmt.Errorf("user %s is suspended: %w", user.ID, domain.ErrForbidden)
		}

		task, err := s.tasks.GetForUpdate(ctx, taskID)
		if err != nil {
			return err
		}
		now := s.now()
		if task.Status != domain.TaskApproved {
			return fmt.Errorf("task %s is %s: %w", task.ID, task.Status, domain.ErrInvalidTransition)
		}
		if now.Before(task.StartAt) || now.After(task.EndAt) {
			return fmt.Errorf("task %s is outside its window: %w", task.ID, domain.ErrInvalidTransition)
		}
		if task.RequireKYC && user.KYCStatus != domain.KYCVerified {
			return fmt.Errorf("task %s requires verified KYC: %w", task.ID, domain.ErrForbidden)
		}
		if task.RemainingSlots() == 0 {
			return fmt.Errorf("task %s has no slots left: %w", task.ID, domain.ErrConflict)
		}

		assignment = &domain.Assignment{
			ID:                    uuid.New(),
			TaskID:                task.ID,
			UserID:                user.ID,
			Status:                domain.AssignmentActive,
			Payment:               decimal.Zero,
			PaymentReceivedStatus: domain.PaymentPending,
			CreatedAt:             now,
		}
		return s.assignments.Create(ctx, assignment)
	})
	if err != nil {
		if !domain.IsDomain(err) {
			zap.L().Error("failed to join task", zap.String("task_id", taskID.String()), zap.Error(err))
		}
		return nil, err
	}
	return assignment, nil
}
