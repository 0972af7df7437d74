package activity

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Job is one unit of work handed to the pool.
type Job func(ctx context.Context) error

// Pool runs jobs on a fixed number of workers. The queue holds as many jobs as there are workers,
// so Submit blocks once everyone is busy.
type Pool struct {
	jobs   chan Job
	group  errgroup.Group
	once   sync.Once
	failed atomic.Int64
}

func NewPool(ctx context.Context, size int) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{jobs: make(chan Job, size)}
	for id := 1; id <= size; id++ {
		id := id
		p.group.Go(func() error {
			p.work(ctx, id)
			return nil
		})
	}
	return p
}

func (p *Pool) work(ctx context.Context, id int) {
	for job := range p.jobs {
		if err := job(ctx); err != nil {
			p.failed.Add(1)
			zap.L().Error("Pool job failed", zap.Int("worker", id), zap.Error(err))
		}
	}
}

func (p *Pool) Submit(ctx context.Context, job Job) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.jobs <- job:
		return nil
	}
}

// Close stops intake, waits for queued jobs and returns how many of them failed.
func (p *Pool) Close() int64 {
	p.once.Do(func() {
		close(p.jobs)
	})
	_ = p.group.Wait()
	return p.failed.Load()
}
