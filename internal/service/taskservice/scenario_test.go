package taskservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/repo/memrepo"
	"github.com/GlebRadaev/taskearn/internal/service/walletservice"
)

// failingAssignments fails Update after the wallet credit has already been applied.
type failingAssignments struct {
	*memrepo.Assignments
	fail bool
}

func (f *failingAssignments) Update(ctx context.Context, a *domain.Assignment) error {
	if f.fail && a.Status == domain.AssignmentCompleted {
		return errors.New("injected store fault")
	}
	return f.Assignments.Update(ctx, a)
}

type LifecycleSuite struct {
	suite.Suite
	ctx         context.Context
	store       *memrepo.Store
	wallet      *walletservice.Service
	assignments *failingAssignments
	service     *Service
}

func (s *LifecycleSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memrepo.New()
	s.wallet = walletservice.New(s.store.Accounts, s.store.Ledger, s.store.Audit, s.store.TXManager())
	s.assignments = &failingAssignments{Assignments: s.store.Assignments}
	s.service = New(s.store.Tasks, s.assignments, s.store.Submissions, s.store.Users, s.store.Audit,
		s.wallet, s.store.TXManager(), Options{AllowResubmission: true})
	s.service.now = func() time.Time { return fixedNow }
}

func (s *LifecycleSuite) newUser(role domain.Role, balance int64) uuid.UUID {
	id := uuid.New()
	_, err := s.store.Users.Create(s.ctx, &domain.User{
		ID:           id,
		Email:        id.String() + "@example.com",
		Role:         role,
		KYCStatus:    domain.KYCVerified,
		ReferralCode: id.String(),
	})
	s.Require().NoError(err)
	_, err = s.wallet.CreateAccount(s.ctx, id)
	s.Require().NoError(err)
	if balance > 0 {
		_, err = s.wallet.Credit(s.ctx, walletservice.CreditRequest{
			AccountID: id, Amount: decimal.NewFromInt(balance), Reason: domain.ReasonAdminAdjustment, Actor: domain.ActorAdmin,
		})
		s.Require().NoError(err)
	}
	return id
}

func (s *LifecycleSuite) balance(id uuid.UUID) string {
	account, err := s.wallet.GetAccount(s.ctx, id)
	s.Require().NoError(err)
	return account.Balance.String()
}

func (s *LifecycleSuite) approvedTask(advertiserID uuid.UUID, limit int) *domain.Task {
	task, err := s.service.CreateTask(s.ctx, domain.Principal{UserID: advertiserID, Role: domain.RoleAdvertiser}, CreateTaskInput{
		Title:          "Follow our page",
		RateToUser:     decimal.NewFromInt(10),
		LimitCount:     limit,
		AdvertiserCost: decimal.NewFromInt(15),
		StartAt:        fixedNow.Add(-time.Hour),
		EndAt:          fixedNow.Add(time.Hour),
	})
	s.Require().NoError(err)
	task, err = s.service.ApproveTask(s.ctx, admin, task.ID)
	s.Require().NoError(err)
	return task
}

func (s *LifecycleSuite) join(taskID uuid.UUID) uuid.UUID {
	userID := s.newUser(domain.RoleUser, 0)
	_, err := s.service.JoinTask(s.ctx, domain.Principal{UserID: userID, Role: domain.RoleUser}, taskID)
	s.Require().NoError(err)
	return userID
}

func (s *LifecycleSuite) submit(taskID, userID uuid.UUID) *domain.Submission {
	sub, err := s.service.SubmitProof(s.ctx, domain.Principal{UserID: userID, Role: domain.RoleUser}, taskID, "https://blob.example.com/proof.png")
	s.Require().NoError(err)
	return sub
}

func (s *LifecycleSuite) statuses(taskID uuid.UUID) []domain.AssignmentStatus {
	list, err := s.service.ListAssignments(s.ctx, taskID)
	s.Require().NoError(err)
	out := make([]domain.AssignmentStatus, len(list))
	for i, a := range list {
		out[i] = a.Status
	}
	return out
}

func (s *LifecycleSuite) TestApprovalDebitsAdvertiser() {
	adv := s.newUser(domain.RoleAdvertiser, 200)
	task := s.approvedTask(adv, 10)

	s.True(task.Paid)
	s.Equal("50", s.balance(adv))
}

func (s *LifecycleSuite) TestApprovalWithoutFundsChangesNothing() {
	adv := s.newUser(domain.RoleAdvertiser, 100)
	task, err := s.service.CreateTask(s.ctx, domain.Principal{UserID: adv, Role: domain.RoleAdvertiser}, CreateTaskInput{
		Title: "Too big", RateToUser: decimal.NewFromInt(1), LimitCount: 100, AdvertiserCost: decimal.NewFromInt(2),
		StartAt: fixedNow, EndAt: fixedNow.Add(time.Hour),
	})
	s.Require().NoError(err)

	_, err = s.service.ApproveTask(s.ctx, admin, task.ID)
	s.ErrorIs(err, domain.ErrInsufficientFunds)

	got, err := s.service.GetTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskPending, got.Status)
	s.Equal("100", s.balance(adv))
}

func (s *LifecycleSuite) TestDeferredPaymentSettlesLater() {
	s.service.opts.DeferredPayment = true
	adv := s.newUser(domain.RoleAdvertiser, 10)
	task, err := s.service.CreateTask(s.ctx, domain.Principal{UserID: adv, Role: domain.RoleAdvertiser}, CreateTaskInput{
		Title: "Deferred", RateToUser: decimal.NewFromInt(1), LimitCount: 4, AdvertiserCost: decimal.NewFromInt(5),
		StartAt: fixedNow, EndAt: fixedNow.Add(time.Hour),
	})
	s.Require().NoError(err)

	task, err = s.service.ApproveTask(s.ctx, admin, task.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskApproved, task.Status)
	s.False(task.Paid)

	_, err = s.service.SettleTask(s.ctx, admin, task.ID)
	s.ErrorIs(err, domain.ErrInsufficientFunds)

	_, err = s.wallet.Credit(s.ctx, walletservice.CreditRequest{AccountID: adv, Amount: decimal.NewFromInt(10), Reason: domain.ReasonAdminAdjustment, Actor: domain.ActorAdmin})
	s.Require().NoError(err)
	task, err = s.service.SettleTask(s.ctx, admin, task.ID)
	s.Require().NoError(err)
	s.True(task.Paid)
	s.Equal("0", s.balance(adv))
}

func (s *LifecycleSuite) TestPauseAndResumeCascade() {
	adv := s.newUser(domain.RoleAdvertiser, 1000)
	task := s.approvedTask(adv, 10)
	for i := 0; i < 3; i++ {
		s.join(task.ID)
	}

	paused, err := s.service.PauseTask(s.ctx, admin, task.ID, "suspicious traffic")
	s.Require().NoError(err)
	s.Equal(domain.TaskPaused, paused.Status)
	s.Equal("suspicious traffic", paused.PauseReason)
	s.Equal([]domain.AssignmentStatus{domain.AssignmentPaused, domain.AssignmentPaused, domain.AssignmentPaused}, s.statuses(task.ID))

	resumed, err := s.service.ResumeTask(s.ctx, admin, task.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskApproved, resumed.Status)
	s.Empty(resumed.PauseReason)
	s.Equal([]domain.AssignmentStatus{domain.AssignmentActive, domain.AssignmentActive, domain.AssignmentActive}, s.statuses(task.ID))

	actions, err := s.store.Audit.ListByTarget(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Len(actions, 3)
	s.Equal(domain.ActionTaskResume, actions[2].Action)
}

func (s *LifecycleSuite) TestPausedAssignmentsCannotSubmit() {
	adv := s.newUser(domain.RoleAdvertiser, 1000)
	task := s.approvedTask(adv, 10)
	user := s.join(task.ID)
	_, err := s.service.PauseTask(s.ctx, admin, task.ID, "review")
	s.Require().NoError(err)

	_, err = s.service.SubmitProof(s.ctx, domain.Principal{UserID: user, Role: domain.RoleUser}, task.ID, "proof")
	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *LifecycleSuite) TestForceCompleteWithNoRemainingSlotsRefundsNothing() {
	adv := s.newUser(domain.RoleAdvertiser, 0)
	task := &domain.Task{
		ID: uuid.New(), AdvertiserID: adv, Title: "Full", RateToUser: decimal.NewFromInt(5),
		LimitCount: 10, CompletedCount: 10, AdvertiserCost: decimal.NewFromInt(7),
		Status: domain.TaskApproved, Paid: true, StartAt: fixedNow, EndAt: fixedNow.Add(time.Hour),
	}
	s.Require().NoError(s.store.Tasks.Create(s.ctx, task))

	out, err := s.service.CompleteTask(s.ctx, admin, task.ID, "campaign over", true)
	s.Require().NoError(err)
	s.True(out.Refund.IsZero())
	s.Equal(domain.TaskCompleted, out.Task.Status)
	s.Equal("0", s.balance(adv))
	s.Empty(s.store.Ledger.All(s.ctx))
}

func (s *LifecycleSuite) TestForceCompleteRefundsUnusedSlots() {
	adv := s.newUser(domain.RoleAdvertiser, 150)
	task := s.approvedTask(adv, 10)
	pending := s.join(task.ID)
	sub := s.submit(task.ID, pending)
	s.join(task.ID)

	out, err := s.service.CompleteTask(s.ctx, admin, task.ID, "advertiser request", true)
	s.Require().NoError(err)
	s.Equal("150", out.Refund.String())
	s.Equal("150", s.balance(adv))
	s.Equal([]domain.AssignmentStatus{domain.AssignmentCompleted, domain.AssignmentCompleted}, s.statuses(task.ID))

	expired, err := s.store.Submissions.Get(s.ctx, sub.ID)
	s.Require().NoError(err)
	s.Equal(domain.SubmissionExpired, expired.Status)

	_, err = s.service.ReviewSubmission(s.ctx, admin, sub.ID, domain.DecisionApprove, "")
	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *LifecycleSuite) TestCancelRejectsAssignments() {
	adv := s.newUser(domain.RoleAdvertiser, 150)
	task := s.approvedTask(adv, 10)
	s.join(task.ID)

	out, err := s.service.CancelTask(s.ctx, admin, task.ID, "policy violation", false)
	s.Require().NoError(err)
	s.Equal(domain.TaskCancelled, out.Task.Status)
	s.True(out.Refund.IsZero())
	s.Equal("0", s.balance(adv))
	s.Equal([]domain.AssignmentStatus{domain.AssignmentRejected}, s.statuses(task.ID))

	_, err = s.service.ResumeTask(s.ctx, admin, task.ID)
	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *LifecycleSuite) TestReviewCreditsAndCompletesNaturally() {
	adv := s.newUser(domain.RoleAdvertiser, 30)
	task := s.approvedTask(adv, 2)
	first, second := s.join(task.ID), s.join(task.ID)
	subA, subB := s.submit(task.ID, first), s.submit(task.ID, second)

	_, err := s.service.ReviewSubmission(s.ctx, admin, subA.ID, domain.DecisionApprove, "ok")
	s.Require().NoError(err)
	s.Equal("10", s.balance(first))

	got, err := s.service.GetTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(1, got.CompletedCount)
	s.Equal(domain.TaskApproved, got.Status)

	reviewed, err := s.service.ReviewSubmission(s.ctx, admin, subB.ID, domain.DecisionApprove, "ok")
	s.Require().NoError(err)
	s.Equal(domain.SubmissionApproved, reviewed.Status)
	s.NotNil(reviewed.ReviewedAt)

	got, err = s.service.GetTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(2, got.CompletedCount)
	s.Equal(domain.TaskCompleted, got.Status)
	s.Equal(NaturalCompletionReason, got.CompletionReason)

	list, err := s.service.ListAssignments(s.ctx, task.ID)
	s.Require().NoError(err)
	for _, a := range list {
		s.Equal(domain.AssignmentCompleted, a.Status)
		s.Equal(domain.PaymentCompleted, a.PaymentReceivedStatus)
		s.Equal("10", a.Payment.String())
	}
}

func (s *LifecycleSuite) TestRejectAllowsResubmission() {
	adv := s.newUser(domain.RoleAdvertiser, 30)
	task := s.approvedTask(adv, 2)
	user := s.join(task.ID)
	sub := s.submit(task.ID, user)

	_, err := s.service.SubmitProof(s.ctx, domain.Principal{UserID: user, Role: domain.RoleUser}, task.ID, "again")
	s.ErrorIs(err, domain.ErrConflict)

	rejected, err := s.service.ReviewSubmission(s.ctx, admin, sub.ID, domain.DecisionReject, "blurry")
	s.Require().NoError(err)
	s.Equal(domain.SubmissionRejected, rejected.Status)
	s.Equal([]domain.AssignmentStatus{domain.AssignmentActive}, s.statuses(task.ID))

	s.submit(task.ID, user)
	s.Equal([]domain.AssignmentStatus{domain.AssignmentPending}, s.statuses(task.ID))
}

func (s *LifecycleSuite) TestRejectWithoutResubmission() {
	s.service.opts.AllowResubmission = false
	adv := s.newUser(domain.RoleAdvertiser, 30)
	task := s.approvedTask(adv, 2)
	user := s.join(task.ID)
	sub := s.submit(task.ID, user)

	_, err := s.service.ReviewSubmission(s.ctx, admin, sub.ID, domain.DecisionReject, "fake")
	s.Require().NoError(err)
	s.Equal([]domain.AssignmentStatus{domain.AssignmentRejected}, s.statuses(task.ID))

	_, err = s.service.SubmitProof(s.ctx, domain.Principal{UserID: user, Role: domain.RoleUser}, task.ID, "again")
	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *LifecycleSuite) TestApprovalIsAtomicWithCredit() {
	adv := s.newUser(domain.RoleAdvertiser, 30)
	task := s.approvedTask(adv, 2)
	user := s.join(task.ID)
	sub := s.submit(task.ID, user)
	entriesBefore := len(s.store.Ledger.All(s.ctx))

	s.assignments.fail = true
	_, err := s.service.ReviewSubmission(s.ctx, admin, sub.ID, domain.DecisionApprove, "")
	s.EqualError(err, "injected store fault")

	s.Equal("0", s.balance(user))
	s.Len(s.store.Ledger.All(s.ctx), entriesBefore)
	got, err := s.service.GetTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Zero(got.CompletedCount)
	pending, err := s.store.Submissions.Get(s.ctx, sub.ID)
	s.Require().NoError(err)
	s.Equal(domain.SubmissionPending, pending.Status)

	s.assignments.fail = false
	_, err = s.service.ReviewSubmission(s.ctx, admin, sub.ID, domain.DecisionApprove, "")
	s.Require().NoError(err)
	s.Equal("10", s.balance(user))
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(LifecycleSuite))
}

// Concurrent approvals never push completedCount past the limit or pay for a slot that does not exist.
func TestConcurrentReviewsRespectLimit(t *testing.T) {
	ctx := context.Background()
	store := memrepo.New()
	wallet := walletservice.New(store.Accounts, store.Ledger, store.Audit, store.TXManager())
	service := New(store.Tasks, store.Assignments, store.Submissions, store.Users, store.Audit, wallet, store.TXManager(), Options{})
	service.now = func() time.Time { return fixedNow }

	adv := uuid.New()
	require.NoError(t, store.Tasks.Create(ctx, &domain.Task{
		ID: uuid.New(), AdvertiserID: adv, Title: "Race", RateToUser: decimal.NewFromInt(3), LimitCount: 3,
		Status: domain.TaskApproved, Paid: true, StartAt: fixedNow.Add(-time.Hour), EndAt: fixedNow.Add(time.Hour),
	}))
	tasks, err := store.Tasks.List(ctx, domain.TaskApproved)
	require.NoError(t, err)
	taskID := tasks[0].ID

	var subs []uuid.UUID
	for i := 0; i < 8; i++ {
		userID := uuid.New()
		_, err := store.Users.Create(ctx, &domain.User{ID: userID, Email: userID.String(), Role: domain.RoleUser, ReferralCode: userID.String()})
		require.NoError(t, err)
		_, err = wallet.CreateAccount(ctx, userID)
		require.NoError(t, err)
		require.NoError(t, store.Assignments.Create(ctx, &domain.Assignment{
			ID: uuid.New(), TaskID: taskID, UserID: userID, Status: domain.AssignmentPending, Payment: decimal.Zero,
		}))
		sub := &domain.Submission{ID: uuid.New(), TaskID: taskID, UserID: userID, ProofData: "p", Status: domain.SubmissionPending}
		require.NoError(t, store.Submissions.Create(ctx, sub))
		subs = append(subs, sub.ID)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		approved int
	)
	for _, id := range subs {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			if _, err := service.ReviewSubmission(ctx, admin, id, domain.DecisionApprove, ""); err == nil {
				mu.Lock()
				approved++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	task, err := service.GetTask(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, 3, approved)
	assert.Equal(t, 3, task.CompletedCount)
	assert.Equal(t, domain.TaskCompleted, task.Status)

	rewards := 0
	for _, e := range store.Ledger.All(ctx) {
		if e.Reason == domain.ReasonTaskReward {
			rewards++
		}
	}
	assert.Equal(t, 3, rewards)
}
