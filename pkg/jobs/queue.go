package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a unit of background work. Handlers receive the payload and
// report failure through the returned error.
type Job struct {
	Type    string
	Payload interface{}
}

// Handler processes one job type.
type Handler func(ctx context.Context, payload interface{}) error

// Queue is a bounded in-process work queue with a fixed worker pool.
// Failed jobs are logged and dropped, never retried.
type Queue struct {
	jobs     chan Job
	handlers map[string]Handler
	workers  int
	log      *zap.Logger

	mu      sync.RWMutex
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	started bool
}

func NewQueue(workers, buffer int, log *zap.Logger) *Queue {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = 64
	}

	return &Queue{
		jobs:     make(chan Job, buffer),
		handlers: make(map[string]Handler),
		workers:  workers,
		log:      log,
	}
}

// Register binds a handler to a job type. Must be called before Start.
func (q *Queue) Register(jobType string, h Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[jobType] = h
}

func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	q.cancel = cancel
	q.started = true

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
}

// Stop signals the workers to exit and waits up to timeout for
// in-flight handlers to finish.
func (q *Queue) Stop(timeout time.Duration) {
	q.mu.Lock()
	if !q.started {
		q.mu.Unlock()
		return
	}
	q.started = false
	cancel := q.cancel
	q.mu.Unlock()

	cancel()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		q.log.Warn("job queue stop timed out")
	}
}

// Enqueue submits a job without blocking. When the buffer is full the
// job is dropped and logged.
func (q *Queue) Enqueue(job Job) {
	select {
	case q.jobs <- job:
	default:
		q.log.Warn("job queue full, dropping job", zap.String("type", job.Type))
	}
}

func (q *Queue) worker(ctx context.Context, id int) {
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job := <-q.jobs:
			q.mu.RLock()
			h, ok := q.handlers[job.Type]
			q.mu.RUnlock()

			if !ok {
				q.log.Warn("no handler registered for job",
					zap.String("type", job.Type), zap.Int("worker", id))
				continue
			}

			if err := h(ctx, job.Payload); err != nil {
				q.log.Error("job failed",
					zap.String("type", job.Type),
					zap.Int("worker", id),
					zap.Error(err))
			}
		}
	}
}
