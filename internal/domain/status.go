package domain

type Role string

const (
	RoleUser       Role = "user"
	RoleAdvertiser Role = "advertiser"
	RoleAdmin      Role = "admin"
	// RoleSystem is used by the KYC subsystem and the scheduler.
	RoleSystem Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdvertiser, RoleAdmin, RoleSystem:
		return true
	}
	return false
}

type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

type EntryType string

const (
	EntryCredit EntryType = "credit"
	EntryDebit  EntryType = "debit"
)

type EntryReason string

const (
	ReasonTaskReward      EntryReason = "task_reward"
	ReasonReferralReward  EntryReason = "referral_reward"
	ReasonTaskCost        EntryReason = "task_cost"
	ReasonTaskRefund      EntryReason = "task_refund"
	ReasonReactivationFee EntryReason = "reactivation_fee"
	ReasonAdminAdjustment EntryReason = "admin_adjustment"
)

func (r EntryReason) Valid() bool {
	switch r {
	case ReasonTaskReward, ReasonReferralReward, ReasonTaskCost,
		ReasonTaskRefund, ReasonReactivationFee, ReasonAdminAdjustment:
		return true
	}
	return false
}

type Actor string

const (
	ActorUser   Actor = "user"
	ActorAdmin  Actor = "admin"
	ActorSystem Actor = "system"
)

func (a Actor) Valid() bool {
	return a == ActorUser || a == ActorAdmin || a == ActorSystem
}

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskApproved  TaskStatus = "approved"
	TaskPaused    TaskStatus = "paused"
	TaskCompleted TaskStatus = "completed"
	TaskCancelled TaskStatus = "cancelled"
)

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskPending:   {TaskApproved, TaskCancelled},
	TaskApproved:  {TaskPaused, TaskCompleted, TaskCancelled},
	TaskPaused:    {TaskApproved, TaskCancelled},
	TaskCompleted: nil,
	TaskCancelled: nil,
}

func (s TaskStatus) CanTransition(to TaskStatus) bool {
	return allowed(taskTransitions[s], to)
}

func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskCancelled
}

type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentPaused    AssignmentStatus = "paused"
	AssignmentRejected  AssignmentStatus = "rejected"
)

var assignmentTransitions = map[AssignmentStatus][]AssignmentStatus{
	AssignmentActive:    {AssignmentPending, AssignmentPaused, AssignmentCompleted, AssignmentRejected},
	AssignmentPending:   {AssignmentActive, AssignmentCompleted, AssignmentRejected},
	AssignmentPaused:    {AssignmentActive, AssignmentCompleted, AssignmentRejected},
	AssignmentCompleted: nil,
	AssignmentRejected:  nil,
}

func (s AssignmentStatus) CanTransition(to AssignmentStatus) bool {
	return allowed(assignmentTransitions[s], to)
}

func (s AssignmentStatus) Terminal() bool {
	return s == AssignmentCompleted || s == AssignmentRejected
}

// NonTerminalAssignmentStatuses is the cascade source set for task completion and cancellation.
var NonTerminalAssignmentStatuses = []AssignmentStatus{AssignmentActive, AssignmentPending, AssignmentPaused}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
	SubmissionExpired  SubmissionStatus = "expired"
)

var submissionTransitions = map[SubmissionStatus][]SubmissionStatus{
	SubmissionPending:  {SubmissionApproved, SubmissionRejected, SubmissionExpired},
	SubmissionApproved: nil,
	SubmissionRejected: nil,
	SubmissionExpired:  nil,
}

func (s SubmissionStatus) CanTransition(to SubmissionStatus) bool {
	return allowed(submissionTransitions[s], to)
}

type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

func allowed[T comparable](targets []T, to T) bool {
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}
