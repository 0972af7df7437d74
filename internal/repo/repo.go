package repo

import (
	"github.com/GlebRadaev/taskearn/internal/pg"
	accountrepo "github.com/GlebRadaev/taskearn/internal/repo/account-repo"
	assignmentrepo "github.com/GlebRadaev/taskearn/internal/repo/assignment-repo"
	auditrepo "github.com/GlebRadaev/taskearn/internal/repo/audit-repo"
	ledgerrepo "github.com/GlebRadaev/taskearn/internal/repo/ledger-repo"
	"github.com/GlebRadaev/taskearn/internal/repo/memrepo"
	referralrepo "github.com/GlebRadaev/taskearn/internal/repo/referral-repo"
	submissionrepo "github.com/GlebRadaev/taskearn/internal/repo/submission-repo"
	suspensionrepo "github.com/GlebRadaev/taskearn/internal/repo/suspension-repo"
	taskrepo "github.com/GlebRadaev/taskearn/internal/repo/task-repo"
	userrepo "github.com/GlebRadaev/taskearn/internal/repo/user-repo"
	"github.com/GlebRadaev/taskearn/internal/service/activityservice"
	"github.com/GlebRadaev/taskearn/internal/service/auditservice"
	"github.com/GlebRadaev/taskearn/internal/service/referralservice"
	"github.com/GlebRadaev/taskearn/internal/service/taskservice"
	"github.com/GlebRadaev/taskearn/internal/service/userservice"
	"github.com/GlebRadaev/taskearn/internal/service/walletservice"
)

// UserRepo is the union of what the services read and write on users.
type UserRepo interface {
	userservice.Repo
	referralservice.UserRepo
	activityservice.UserRepo
	taskservice.UserRepo
}

type LedgerRepo interface {
	walletservice.LedgerRepo
	activityservice.LedgerRepo
}

type AuditRepo interface {
	walletservice.AuditRepo
	auditservice.Repo
}

type ReferralRepo interface {
	referralservice.ReferralRepo
	activityservice.ReferralRepo
}

type Repositories struct {
	UserRepo       UserRepo
	AccountRepo    walletservice.AccountRepo
	LedgerRepo     LedgerRepo
	TaskRepo       taskservice.TaskRepo
	AssignmentRepo taskservice.AssignmentRepo
	SubmissionRepo taskservice.SubmissionRepo
	AuditRepo      AuditRepo
	SuspensionRepo activityservice.SuspensionRepo
	ReferralRepo   ReferralRepo
	TXManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		AccountRepo:    accountrepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn),
		TaskRepo:       taskrepo.New(conn),
		AssignmentRepo: assignmentrepo.New(conn),
		SubmissionRepo: submissionrepo.New(conn),
		AuditRepo:      auditrepo.New(conn),
		SuspensionRepo: suspensionrepo.New(conn),
		ReferralRepo:   referralrepo.New(conn),
		TXManager:      txManager,
	}
}

// NewMemory backs every repository with one in-process store.
func NewMemory(store *memrepo.Store) *Repositories {
	return &Repositories{
		UserRepo:       store.Users,
		AccountRepo:    store.Accounts,
		LedgerRepo:     store.Ledger,
		TaskRepo:       store.Tasks,
		AssignmentRepo: store.Assignments,
		SubmissionRepo: store.Submissions,
		AuditRepo:      store.Audit,
		SuspensionRepo: store.Suspensions,
		ReferralRepo:   store.Referrals,
		TXManager:      store.TXManager(),
	}
}
