package tasks

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/dto"
	"github.com/GlebRadaev/taskearn/internal/handlers/httperr"
	"github.com/GlebRadaev/taskearn/internal/handlers/request"
	"github.com/GlebRadaev/taskearn/internal/service/taskservice"
	"github.com/GlebRadaev/taskearn/pkg/utils"
)

//go:generate mockgen -source=tasks.go -destination=mock_tasks.go -package=tasks

type Service interface {
	CreateTask(ctx context.Context, actor domain.Principal, in taskservice.CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListTasks(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	ListAssignments(ctx context.Context, taskID uuid.UUID) ([]domain.Assignment, error)
	ApproveTask(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.Task, error)
	SettleTask(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.Task, error)
	PauseTask(ctx context.Context, actor domain.Principal, id uuid.UUID, reason string) (*domain.Task, error)
	ResumeTask(ctx context.Context, actor domain.Principal, id uuid.UUID) (*domain.Task, error)
	CompleteTask(ctx context.Context, actor domain.Principal, id uuid.UUID, reason string, refundRemaining bool) (*taskservice.Outcome, error)
	CancelTask(ctx context.Context, actor domain.Principal, id uuid.UUID, reason string, refundRemaining bool) (*taskservice.Outcome, error)
	JoinTask(ctx context.Context, actor domain.Principal, taskID uuid.UUID) (*domain.Assignment, error)
	SubmitProof(ctx context.Context, actor domain.Principal, taskID uuid.UUID, proofData string) (*domain.Submission, error)
	ReviewSubmission(ctx context.Context, actor domain.Principal, submissionID uuid.UUID, decision domain.ReviewDecision, feedback string) (*domain.Submission, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask godoc
//
//	@Summary		Create a task
//	@Description	Advertisers create tasks in the pending state. Nothing is charged until an admin approves.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTaskRequestDTO	true	"Task"
//	@Success		201		{object}	dto.TaskResponseDTO			"Created task"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		403		{object}	utils.Response				"Advertisers only"
//	@Failure		422		{object}	utils.Response				"Validation failed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequestDTO
	if !request.Decode(w, r, &req) {
		return
	}
	rate, err := decimal.NewFromString(req.RateToUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid rate_to_user")
		return
	}
	cost, err := decimal.NewFromString(req.AdvertiserCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid advertiser_cost")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), request.Principal(r), taskservice.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		RateToUser:     rate,
		LimitCount:     req.LimitCount,
		AdvertiserCost: cost,
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
		RequireKYC:     req.RequireKYC,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTaskResponse(task))
}

// ListTasks godoc
//
//	@Summary		List tasks
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string					false	"Filter by status"	Enums(pending, approved, paused, completed, cancelled)
//	@Success		200		{array}		dto.TaskResponseDTO		"Tasks"
//	@Failure		422		{object}	utils.Response			"Unknown status"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context(), domain.TaskStatus(r.URL.Query().Get("status")))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTaskList(tasks))
}

// GetTask godoc
//
//	@Summary		Get a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"Task id"
//	@Success		200	{object}	dto.TaskResponseDTO	"Task"
//	@Failure		404	{object}	utils.Response		"Task not found"
//	@Router			/api/tasks/{id} [get]
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := request.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTaskResponse(task))
}

// JoinTask godoc
//
//	@Summary		Join a task
//	@Description	Creates an active assignment for the caller.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"Task id"
//	@Success		201	{object}	dto.AssignmentDTO	"Assignment"
//	@Failure		403	{object}	utils.Response		"Suspended or unverified user"
//	@Failure		404	{object}	utils.Response		"Task not found"
//	@Failure		409	{object}	utils.Response		"Already joined or task not open"
//	@Router			/api/tasks/{id}/join [post]
func (h *TaskHandler) JoinTask(w http.ResponseWriter, r *http.Request) {
	id, ok := request.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	assignment, err := h.taskService.JoinTask(r.Context(), request.Principal(r), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAssignment(assignment))
}

// SubmitProof godoc
//
//	@Summary		Submit proof of work
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Task id"
//	@Param			request	body		dto.SubmitProofRequestDTO	true	"Proof"
//	@Success		201		{object}	dto.SubmissionDTO			"Submission"
//	@Failure		404		{object}	utils.Response				"No assignment for this task"
//	@Failure		409		{object}	utils.Response				"Submission already pending"
//	@Router			/api/tasks/{id}/submissions [post]
func (h *TaskHandler) SubmitProof(w http.ResponseWriter, r *http.Request) {
	id, ok := request.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.SubmitProofRequestDTO
	if !request.Decode(w, r, &req) {
		return
	}
	submission, err := h.taskService.SubmitProof(r.Context(), request.Principal(r), id, req.ProofData)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSubmission(submission))
}

// ListAssignments godoc
//
//	@Summary		List assignments of a task
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"Task id"
//	@Success		200	{array}		dto.AssignmentDTO	"Assignments"
//	@Failure		404	{object}	utils.Response		"Task not found"
//	@Router			/api/admin/tasks/{id}/assignments [get]
func (h *TaskHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := request.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	assignments, err := h.taskService.ListAssignments(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAssignments(assignments))
}

func (h *TaskHandler) respondTask(w http.ResponseWriter, task *domain.Task, err error) {
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTaskResponse(task))
}

// ApproveTask godoc
//
//	@Summary		Approve a task
//	@Description	Debits limit_count * advertiser_cost from the advertiser. With deferred payment the task goes live unpaid when funds are short.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"Task id"
//	@Success		200	{object}	dto.TaskResponseDTO	"Approved task"
//	@Failure		402	{object}	utils.Response		"Advertiser cannot cover the cost"
//	@Failure		409	{object}	utils.Response		"Task is not pending"
//	@Router			/api/admin/tasks/{id}/approve [post]
func (h *TaskHandler) ApproveTask(w http.ResponseWriter, r *http.Request) {
	id, ok := request.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	task, err := h.taskService.ApproveTask(r.Context(), request.Principal(r), id)
	h.respondTask(w, task, err)
}

// SettleTask godoc
//
//	@Summary		Settle a deferred task
//	@Description	Retries the cost debit of an approved but unpaid task.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"Task id"
//	@Success		200	{object}	dto.TaskResponseDTO	"Paid task"
//	@Failure		402	{object}	utils.Response		"Advertiser cannot cover the cost"
//	@Failure		409	{object}	utils.Response		"Task already paid"
//	@Router			/api/admin/tasks/{id}/settle [post]
func (h *TaskHandler) SettleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := request.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	task, err := h.taskService.SettleTask(r.Context(), request.Principal(r), id)
	h.respondTask(w, task, err)
}

// PauseTask godoc
//
//	@Summary		Pause a task
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Task id"
//	@Param			request	body		dto.PauseRequestDTO	true	"Reason"
//	@Success		200		{object}	dto.TaskResponseDTO	"Paused task"
//	@Failure		409		{object}	utils.Response		"Task is not approved"
//	@Router			/api/admin/tasks/{id}/pause [post]
func (h *TaskHandler) PauseTask(w http.ResponseWriter, r *http.Request) {
	id, ok := request.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.PauseRequestDTO
	if !request.Decode(w, r, &req) {
		return
	}
	task, err := h.taskService.PauseTask(r.Context(), request.Principal(r), id, req.Reason)
	h.respondTask(w, task, err)
}

// ResumeTask godoc
//
//	@Summary		Resume a paused task
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"Task id"
//	@Success		200	{object}	dto.TaskResponseDTO	"Approved task"
//	@Failure		409	{object}	utils.Response		"Task is not paused"
//	@Router			/api/admin/tasks/{id}/resume [post]
func (h *TaskHandler) ResumeTask(w http.ResponseWriter, r *http.Request) {
	id, ok := request.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	task, err := h.taskService.ResumeTask(r.Context(), request.Principal(r), id)
	h.respondTask(w, task, err)
}

type closeFn func(ctx context.Context, actor domain.Principal, id uuid.UUID, reason string, refundRemaining bool) (*taskservice.Outcome, error)

func (h *TaskHandler) closeTask(w http.ResponseWriter, r *http.Request, fn closeFn) {
	id, ok := request.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.CloseRequestDTO
	if !request.Decode(w, r, &req) {
		return
	}
	outcome, err := fn(r.Context(), request.Principal(r), id, req.Reason, req.RefundRemaining)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OutcomeResponseDTO{
		Task:   dto.NewTaskResponse(outcome.Task),
		Refund: outcome.Refund.StringFixed(2),
	})
}

// CompleteTask godoc
//
//	@Summary		Complete a task
//	@Description	Force completion. Open assignments are completed, pending submissions expire and unused slots may be refunded.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Task id"
//	@Param			request	body		dto.CloseRequestDTO		true	"Reason and refund flag"
//	@Success		200		{object}	dto.OutcomeResponseDTO	"Completed task and refund"
//	@Failure		409		{object}	utils.Response			"Task cannot be completed"
//	@Router			/api/admin/tasks/{id}/complete [post]
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	h.closeTask(w, r, h.taskService.CompleteTask)
}

// CancelTask godoc
//
//	@Summary		Cancel a task
//	@Description	Cancellation rejects open assignments, expires pending submissions and may refund unused slots.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Task id"
//	@Param			request	body		dto.CloseRequestDTO		true	"Reason and refund flag"
//	@Success		200		{object}	dto.OutcomeResponseDTO	"Cancelled task and refund"
//	@Failure		409		{object}	utils.Response			"Task already closed"
//	@Router			/api/admin/tasks/{id}/cancel [post]
func (h *TaskHandler) CancelTask(w http.ResponseWriter, r *http.Request) {
	h.closeTask(w, r, h.taskService.CancelTask)
}

// ReviewSubmission godoc
//
//	@Summary		Review a submission
//	@Description	Approval credits rate_to_user to the worker and may complete the task when the last slot is used.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Submission id"
//	@Param			request	body		dto.ReviewRequestDTO	true	"Decision"
//	@Success		200		{object}	dto.SubmissionDTO		"Reviewed submission"
//	@Failure		404		{object}	utils.Response			"Submission not found"
//	@Failure		409		{object}	utils.Response			"Already reviewed or no slots left"
//	@Router			/api/admin/submissions/{id}/review [post]
func (h *TaskHandler) ReviewSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := request.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.ReviewRequestDTO
	if !request.Decode(w, r, &req) {
		return
	}
	submission, err := h.taskService.ReviewSubmission(r.Context(), request.Principal(r), id, domain.ReviewDecision(req.Decision), req.Feedback)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSubmission(submission))
}
