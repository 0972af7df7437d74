package service

import (
	"github.com/GlebRadaev/taskearn/internal/activity"
	"github.com/GlebRadaev/taskearn/internal/config"
	"github.com/GlebRadaev/taskearn/internal/handlers/admin"
	"github.com/GlebRadaev/taskearn/internal/handlers/kyc"
	"github.com/GlebRadaev/taskearn/internal/handlers/referrals"
	"github.com/GlebRadaev/taskearn/internal/handlers/tasks"
	"github.com/GlebRadaev/taskearn/internal/handlers/users"
	"github.com/GlebRadaev/taskearn/internal/handlers/wallet"
	"github.com/GlebRadaev/taskearn/internal/repo"
	"github.com/GlebRadaev/taskearn/internal/service/activityservice"
	"github.com/GlebRadaev/taskearn/internal/service/auditservice"
	"github.com/GlebRadaev/taskearn/internal/service/referralservice"
	"github.com/GlebRadaev/taskearn/internal/service/taskservice"
	"github.com/GlebRadaev/taskearn/internal/service/userservice"
	"github.com/GlebRadaev/taskearn/internal/service/walletservice"
)

type Services struct {
	UserService     users.Service
	WalletService   wallet.Service
	TaskService     tasks.Service
	ReferralService referrals.Service
	KYCService      kyc.Service
	ActivityService admin.ActivityService
	AuditService    admin.AuditService
	Runner          *activity.Runner
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	walletService := walletservice.New(repo.AccountRepo, repo.LedgerRepo, repo.AuditRepo, repo.TXManager)
	userService := userservice.New(repo.UserRepo, walletService, repo.TXManager)
	taskService := taskservice.New(repo.TaskRepo, repo.AssignmentRepo, repo.SubmissionRepo, repo.UserRepo,
		repo.AuditRepo, walletService, repo.TXManager, taskservice.Options{
			DeferredPayment:   cfg.DeferredTaskPayment,
			AllowResubmission: cfg.AllowResubmission,
		})
	referralService := referralservice.New(repo.UserRepo, repo.ReferralRepo, repo.AuditRepo, walletService,
		repo.TXManager, cfg.ReferralReward)
	activityService := activityservice.New(repo.UserRepo, repo.LedgerRepo, repo.ReferralRepo, repo.SuspensionRepo,
		repo.AuditRepo, walletService, repo.TXManager, activityservice.Policy{
			MinWeeklyEarnings:  cfg.MinWeeklyEarnings,
			MinWeeklyReferrals: cfg.MinWeeklyReferrals,
			ReactivationFee:    cfg.ReactivationFee,
		})

	return &Services{
		UserService:     userService,
		WalletService:   walletService,
		TaskService:     taskService,
		ReferralService: referralService,
		KYCService:      referralService,
		ActivityService: activityService,
		AuditService:    auditservice.New(repo.AuditRepo),
		Runner:          activity.New(activityService, cfg.ActivityWorkers, cfg.ActivitySchedule),
	}
}
