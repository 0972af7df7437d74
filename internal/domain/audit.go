package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ActionTaskApprove       = "task.approve"
	ActionTaskSettle        = "task.settle"
	ActionTaskPause         = "task.pause"
	ActionTaskResume        = "task.resume"
	ActionTaskComplete      = "task.complete"
	ActionTaskCancel        = "task.cancel"
	ActionSubmissionReview  = "submission.review"
	ActionWalletAdjust      = "wallet.adjust"
	ActionUserSuspend       = "user.suspend"
	ActionUserReactivate    = "user.reactivate"
	ActionReferralRewarded  = "referral.rewarded"
	ActionActivitySuspended = "activity.suspend"
)

// SystemActorID is recorded as the actor of actions taken by the scheduler or other internal callers.
var SystemActorID = uuid.Nil

func NewAdminAction(action string, actor Principal, targetID uuid.UUID, details any, at time.Time) (*AdminAction, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	return &AdminAction{
		ID:        uuid.New(),
		Action:    action,
		ActorID:   actor.UserID,
		ActorRole: actor.Role,
		TargetID:  targetID,
		Details:   raw,
		CreatedAt: at,
	}, nil
}

// SystemPrincipal is the actor used by batch jobs.
func SystemPrincipal() Principal {
	return Principal{UserID: SystemActorID, Email: "system", Role: RoleSystem}
}
