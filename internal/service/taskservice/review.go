package taskservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/service/walletservice"
	"github.com/GlebRadaev/taskearn/pkg/metrics"
)

// SubmitProof records proof of work and moves the assignment to pending review.
// proofData is an opaque reference such as an object storage URL.
func (s *Service) SubmitProof(ctx context.Context, actor domain.Principal, taskID uuid.UUID, proofData string) (*domain.Submission, error) {
	proofData = strings.TrimSpace(proofData)
	if proofData == "" {
		return nil, fmt.Errorf("proof data is required: %w", domain.ErrValidation)
	}

	var submission *domain.Submission
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetForUpdate(ctx, taskID)
		if err != nil {
			return err
		}
		if task.Status.Terminal() {
			return fmt.Errorf("task %s is %s: %w", task.ID, task.Status, domain.ErrInvalidTransition)
		}

		assignment, err := s.assignments.GetForUpdate(ctx, taskID, actor.UserID)
		if err != nil {
			return err
		}
		open, err := s.submissions.HasOpen(ctx, taskID, actor.UserID)
		if err != nil {
			return err
		}
		if open {
			return fmt.Errorf("submission for task %s already exists: %w", taskID, domain.ErrConflict)
		}
		if !assignment.Status.CanTransition(domain.AssignmentPending) {
			return fmt.Errorf("assignment is %s: %w", assignment.Status, domain.ErrInvalidTransition)
		}

		submission = &domain.Submission{
			ID:          uuid.New(),
			TaskID:      taskID,
			UserID:      actor.UserID,
			ProofData:   proofData,
			Status:      domain.SubmissionPending,
			SubmittedAt: s.now(),
		}
		if err := s.submissions.Create(ctx, submission); err != nil {
			return err
		}
		assignment.Status = domain.AssignmentPending
		return s.assignments.Update(ctx, assignment)
	})
	if err != nil {
		if !domain.IsDomain(err) {
			zap.L().Error("failed to submit proof", zap.String("task_id", taskID.String()), zap.Error(err))
		}
		return nil, err
	}
	return submission, nil
}

// ReviewSubmission is the only place completedCount grows. Approval credits the reward, completes
// the assignment and, when the last slot is consumed, completes the task in the same transaction.
func (s *Service) ReviewSubmission(ctx context.Context, actor domain.Principal, submissionID uuid.UUID,
	decision domain.ReviewDecision, feedback string) (*domain.Submission, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if decision != domain.DecisionApprove && decision != domain.DecisionReject {
		return nil, fmt.Errorf("unknown decision %q: %w", decision, domain.ErrValidation)
	}

	var (
		result        *domain.Submission
		naturallyDone bool
	)
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		// Lock order is task, then submission, then assignment, same as every lifecycle transition.
		peek, err := s.submissions.Get(ctx, submissionID)
		if err != nil {
			return err
		}
		task, err := s.tasks.GetForUpdate(ctx, peek.TaskID)
		if err != nil {
			return err
		}
		submission, err := s.submissions.GetForUpdate(ctx, submissionID)
		if err != nil {
			return err
		}
		if submission.Status != domain.SubmissionPending {
			return fmt.Errorf("submission %s is %s: %w", submission.ID, submission.Status, domain.ErrInvalidTransition)
		}
		assignment, err := s.assignments.GetForUpdate(ctx, submission.TaskID, submission.UserID)
		if err != nil {
			return err
		}

		now := s.now()
		submission.Feedback = feedback
		submission.ReviewedAt = &now

		if decision == domain.DecisionReject {
			submission.Status = domain.SubmissionRejected
			next := domain.AssignmentRejected
			if s.opts.AllowResubmission {
				next = domain.AssignmentActive
			}
			if assignment.Status.CanTransition(next) {
				assignment.Status = next
				if err := s.assignments.Update(ctx, assignment); err != nil {
					return err
				}
			}
		} else {
			if task.Status != domain.TaskApproved {
				return fmt.Errorf("task %s is %s: %w", task.ID, task.Status, domain.ErrInvalidTransition)
			}
			if task.RemainingSlots() == 0 {
				return fmt.Errorf("task %s has no slots left: %w", task.ID, domain.ErrConflict)
			}
			if !assignment.Status.CanTransition(domain.AssignmentCompleted) {
				return fmt.Errorf("assignment is %s: %w", assignment.Status, domain.ErrInvalidTransition)
			}

			_, err := s.wallet.Credit(ctx, walletservice.CreditRequest{
				AccountID:   submission.UserID,
				Amount:      task.RateToUser,
				Reason:      domain.ReasonTaskReward,
				Actor:       domain.ActorAdmin,
				ReferenceID: submission.ID.String(),
			})
			if err != nil {
				return err
			}

			assignment.Status = domain.AssignmentCompleted
			assignment.Payment = task.RateToUser
			assignment.PaymentReceivedStatus = domain.PaymentCompleted
			if err := s.assignments.Update(ctx, assignment); err != nil {
				return err
			}
			submission.Status = domain.SubmissionApproved
		}
		if err := s.submissions.Update(ctx, submission); err != nil {
			return err
		}

		if decision == domain.DecisionApprove {
			task.CompletedCount++
			if task.RemainingSlots() == 0 {
				if _, err := s.closeOut(ctx, task, domain.TaskCompleted, NaturalCompletionReason, false); err != nil {
					return err
				}
				task.Status = domain.TaskCompleted
				naturallyDone = true
			}
			task.UpdatedAt = now
			if err := s.tasks.Update(ctx, task); err != nil {
				return err
			}
			if naturallyDone {
				if err := s.record(ctx, domain.ActionTaskComplete, domain.SystemPrincipal(), task.ID, map[string]any{
					"from":   domain.TaskApproved,
					"to":     domain.TaskCompleted,
					"reason": NaturalCompletionReason,
				}); err != nil {
					return err
				}
			}
		}

		result = submission
		return s.record(ctx, domain.ActionSubmissionReview, actor, submission.ID, map[string]any{
			"decision": decision,
			"feedback": feedback,
			"task_id":  submission.TaskID,
		})
	})
	if err != nil {
		if !domain.IsDomain(err) {
			zap.L().Error("failed to review submission", zap.String("submission_id", submissionID.String()), zap.Error(err))
		}
		return nil, err
	}

	if naturallyDone {
		metrics.RecordTaskTransition(string(domain.TaskCompleted))
	}
	zap.L().Info("submission reviewed", zap.String("submission_id", submissionID.String()), zap.String("decision", string(decision)))
	return result, nil
}
