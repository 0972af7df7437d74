package activity

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/pkg/metrics"
)

//go:generate mockgen -source=runner.go -destination=mock_runner.go -package=activity

type Evaluator interface {
	Candidates(ctx context.Context) ([]uuid.UUID, error)
	Evaluate(ctx context.Context, userID uuid.UUID) domain.EvaluationResult
}

const DefaultWorkers = 8

type Runner struct {
	evaluator Evaluator
	workers   int
	schedule  string
	running   atomic.Bool
	now       func() time.Time
}

func New(evaluator Evaluator, workers int, schedule string) *Runner {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Runner{
		evaluator: evaluator,
		workers:   workers,
		schedule:  schedule,
		now:       time.Now,
	}
}

// Run evaluates every candidate once. Only a failure to list candidates fails the run;
// per-account failures land in the report.
func (r *Runner) Run(ctx context.Context) (*domain.EvaluationReport, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("activity evaluation already running: %w", domain.ErrConflict)
	}
	defer r.running.Store(false)

	report := &domain.EvaluationReport{RunID: uuid.New(), StartedAt: r.now()}
	log := zap.L().With(zap.String("run_id", report.RunID.String()))

	candidates, err := r.evaluator.Candidates(ctx)
	if err != nil {
		log.Error("Failed to list evaluation candidates", zap.Error(err))
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	log.Info("Activity evaluation started", zap.Int("candidates", len(candidates)))

	results := make([]domain.EvaluationResult, len(candidates))
	for i, id := range candidates {
		results[i] = domain.EvaluationResult{UserID: id, Outcome: domain.OutcomeError, Error: "not evaluated"}
	}

	pool := NewPool(ctx, r.workers)
	for i, id := range candidates {
		i, id := i, id
		// each job owns its slot, Close orders the writes before the tally below
		err := pool.Submit(ctx, func(ctx context.Context) error {
			results[i] = r.evaluator.Evaluate(ctx, id)
			return nil
		})
		if err != nil {
			log.Warn("Evaluation interrupted", zap.Error(err))
			break
		}
	}
	pool.Close()

	report.Results = results
	for _, res := range results {
		switch res.Outcome {
		case domain.OutcomeSuspended:
			report.Suspended++
		case domain.OutcomeOK:
			report.OK++
		default:
			report.Errors++
		}
	}
	report.FinishedAt = r.now()
	metrics.ObserveEvaluationRun(report.FinishedAt.Sub(report.StartedAt))

	log.Info("Activity evaluation finished",
		zap.Int("suspended", report.Suspended),
		zap.Int("ok", report.OK),
		zap.Int("errors", report.Errors))
	return report, nil
}

// Start registers the run on the cron schedule. An empty schedule disables it.
// The returned stop function waits for a running evaluation.
func (r *Runner) Start(ctx context.Context) (func(), error) {
	if r.schedule == "" {
		zap.L().Info("Activity evaluator schedule disabled")
		return func() {}, nil
	}

	c := cron.New()
	_, err := c.AddFunc(r.schedule, func() {
		if _, err := r.Run(ctx); err != nil {
			zap.L().Error("Scheduled activity evaluation failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid activity schedule %q: %w", r.schedule, err)
	}
	c.Start()
	zap.L().Info("Activity evaluator started", zap.String("schedule", r.schedule))

	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return func() {
		<-c.Stop().Done()
	}, nil
}
