package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/taskearn/docs"
	"github.com/GlebRadaev/taskearn/internal/domain"
	adminhandlers "github.com/GlebRadaev/taskearn/internal/handlers/admin"
	kychandlers "github.com/GlebRadaev/taskearn/internal/handlers/kyc"
	referralhandlers "github.com/GlebRadaev/taskearn/internal/handlers/referrals"
	taskhandlers "github.com/GlebRadaev/taskearn/internal/handlers/tasks"
	userhandlers "github.com/GlebRadaev/taskearn/internal/handlers/users"
	wallethandlers "github.com/GlebRadaev/taskearn/internal/handlers/wallet"
	"github.com/GlebRadaev/taskearn/internal/service"
	"github.com/GlebRadaev/taskearn/pkg/auth"
	"github.com/GlebRadaev/taskearn/pkg/metrics"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type UserHandler interface {
	Provision(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetEntries(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	CreateTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	JoinTask(w http.ResponseWriter, r *http.Request)
	SubmitProof(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	ApproveTask(w http.ResponseWriter, r *http.Request)
	SettleTask(w http.ResponseWriter, r *http.Request)
	PauseTask(w http.ResponseWriter, r *http.Request)
	ResumeTask(w http.ResponseWriter, r *http.Request)
	CompleteTask(w http.ResponseWriter, r *http.Request)
	CancelTask(w http.ResponseWriter, r *http.Request)
	ReviewSubmission(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
}

type KYCHandler interface {
	Verified(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Suspend(w http.ResponseWriter, r *http.Request)
	Reactivate(w http.ResponseWriter, r *http.Request)
	Suspensions(w http.ResponseWriter, r *http.Request)
	RunActivity(w http.ResponseWriter, r *http.Request)
	AuditTrail(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler     UserHandler
	WalletHandler   WalletHandler
	TaskHandler     TaskHandler
	ReferralHandler ReferralHandler
	KYCHandler      KYCHandler
	AdminHandler    AdminHandler

	jwt auth.JWTServiceInterface
}

func New(s *service.Services, jwt auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		UserHandler:     userhandlers.New(s.UserService),
		WalletHandler:   wallethandlers.New(s.WalletService),
		TaskHandler:     taskhandlers.New(s.TaskService),
		ReferralHandler: referralhandlers.New(s.ReferralService),
		KYCHandler:      kychandlers.New(s.KYCService),
		AdminHandler:    adminhandlers.New(s.ActivityService, s.Runner, s.AuditService),
		jwt:             jwt,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(h.jwt))

		r.Route("/users", func(r chi.Router) {
			r.Post("/provision", h.UserHandler.Provision)
			r.Get("/me", h.UserHandler.Me)
		})
		r.Route("/wallet", func(r chi.Router) {
			r.Get("/", h.WalletHandler.GetWallet)
			r.Get("/entries", h.WalletHandler.GetEntries)
		})
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.TaskHandler.ListTasks)
			r.Get("/{id}", h.TaskHandler.GetTask)
			r.With(auth.RequireRole(domain.RoleAdvertiser, domain.RoleAdmin)).Post("/", h.TaskHandler.CreateTask)
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleUser))
				r.Post("/{id}/join", h.TaskHandler.JoinTask)
				r.Post("/{id}/submissions", h.TaskHandler.SubmitProof)
			})
		})
		r.With(auth.RequireRole(domain.RoleUser)).Post("/referrals", h.ReferralHandler.Register)
		r.With(auth.RequireRole(domain.RoleSystem)).Post("/kyc/verified", h.KYCHandler.Verified)

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireRole(domain.RoleAdmin))
			r.Route("/tasks/{id}", func(r chi.Router) {
				r.Get("/assignments", h.TaskHandler.ListAssignments)
				r.Post("/approve", h.TaskHandler.ApproveTask)
				r.Post("/settle", h.TaskHandler.SettleTask)
				r.Post("/pause", h.TaskHandler.PauseTask)
				r.Post("/resume", h.TaskHandler.ResumeTask)
				r.Post("/complete", h.TaskHandler.CompleteTask)
				r.Post("/cancel", h.TaskHandler.CancelTask)
			})
			r.Post("/submissions/{id}/review", h.TaskHandler.ReviewSubmission)
			r.Post("/wallet/{userId}/adjust", h.WalletHandler.Adjust)
			r.Route("/users/{userId}", func(r chi.Router) {
				r.Post("/suspend", h.AdminHandler.Suspend)
				r.Post("/reactivate", h.AdminHandler.Reactivate)
				r.Get("/suspensions", h.AdminHandler.Suspensions)
			})
			r.Post("/activity/run", h.AdminHandler.RunActivity)
			r.Get("/audit/{targetId}", h.AdminHandler.AuditTrail)
		})
	})

	return r
}
