package admin

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/dto"
	"github.com/GlebRadaev/taskearn/internal/handlers/httperr"
	"github.com/GlebRadaev/taskearn/internal/handlers/request"
	"github.com/GlebRadaev/taskearn/internal/service/activityservice"
	"github.com/GlebRadaev/taskearn/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type ActivityService interface {
	Suspend(ctx context.Context, actor domain.Principal, userID uuid.UUID, in activityservice.SuspendInput) (*domain.SuspensionRecord, error)
	Reactivate(ctx context.Context, actor domain.Principal, userID uuid.UUID, chargeFee bool) (*domain.ReactivationRecord, error)
	History(ctx context.Context, actor domain.Principal, userID uuid.UUID) ([]domain.SuspensionRecord, error)
}

type Runner interface {
	Run(ctx context.Context) (*domain.EvaluationReport, error)
}

type AuditService interface {
	Trail(ctx context.Context, actor domain.Principal, targetID uuid.UUID) ([]domain.AdminAction, error)
}

type AdminHandler struct {
	activityService ActivityService
	runner          Runner
	auditService    AuditService
}

func New(activityService ActivityService, runner Runner, auditService AuditService) *AdminHandler {
	return &AdminHandler{
		activityService: activityService,
		runner:          runner,
		auditService:    auditService,
	}
}

// Suspend godoc
//
//	@Summary		Suspend a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		string					true	"User id"
//	@Param			request	body		dto.SuspendRequestDTO	true	"Reason and duration"
//	@Success		200		{object}	dto.SuspensionDTO		"Suspension record"
//	@Failure		404		{object}	utils.Response			"User not found"
//	@Failure		409		{object}	utils.Response			"Already suspended"
//	@Failure		422		{object}	utils.Response			"Validation failed"
//	@Router			/api/admin/users/{userId}/suspend [post]
func (h *AdminHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	userID, ok := request.UUIDParam(w, r, "userId")
	if !ok {
		return
	}
	var req dto.SuspendRequestDTO
	if !request.Decode(w, r, &req) {
		return
	}
	rec, err := h.activityService.Suspend(r.Context(), request.Principal(r), userID, activityservice.SuspendInput{
		Reason:       req.Reason,
		DurationDays: req.DurationDays,
		Permanent:    req.Permanent,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSuspension(rec))
}

// Reactivate godoc
//
//	@Summary		Reactivate a suspended user
//	@Description	Lifts the suspension. With charge_fee the configured reactivation fee is debited first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		string						true	"User id"
//	@Param			request	body		dto.ReactivateRequestDTO	true	"Fee flag"
//	@Success		200		{object}	dto.ReactivationDTO			"Reactivation record"
//	@Failure		402		{object}	utils.Response				"Fee not covered"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		409		{object}	utils.Response				"User is not suspended"
//	@Router			/api/admin/users/{userId}/reactivate [post]
func (h *AdminHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := request.UUIDParam(w, r, "userId")
	if !ok {
		return
	}
	var req dto.ReactivateRequestDTO
	if !request.Decode(w, r, &req) {
		return
	}
	rec, err := h.activityService.Reactivate(r.Context(), request.Principal(r), userID, req.ChargeFee)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReactivation(rec))
}

// Suspensions godoc
//
//	@Summary		Suspension history of a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userId	path	string				true	"User id"
//	@Success		200		{array}	dto.SuspensionDTO	"Records, oldest first"
//	@Router			/api/admin/users/{userId}/suspensions [get]
func (h *AdminHandler) Suspensions(w http.ResponseWriter, r *http.Request) {
	userID, ok := request.UUIDParam(w, r, "userId")
	if !ok {
		return
	}
	records, err := h.activityService.History(r.Context(), request.Principal(r), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSuspensions(records))
}

// RunActivity godoc
//
//	@Summary		Run the activity evaluator
//	@Description	Evaluates every verified, active account now and returns the run report.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.EvaluationReport	"Run report"
//	@Failure		409	{object}	utils.Response			"A run is already in progress"
//	@Failure		500	{object}	utils.Response			"Candidates could not be listed"
//	@Router			/api/admin/activity/run [post]
func (h *AdminHandler) RunActivity(w http.ResponseWriter, r *http.Request) {
	report, err := h.runner.Run(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// AuditTrail godoc
//
//	@Summary		Audit trail of an entity
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			targetId	path	string				true	"Task, submission, user or referral id"
//	@Success		200			{array}	dto.AdminActionDTO	"Actions, oldest first"
//	@Router			/api/admin/audit/{targetId} [get]
func (h *AdminHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	targetID, ok := request.UUIDParam(w, r, "targetId")
	if !ok {
		return
	}
	actions, err := h.auditService.Trail(r.Context(), request.Principal(r), targetID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdminActions(actions))
}
