// Package worker provides the in-process queue backing deferred statement
// recording. Jobs are buffered on a channel and drained by one background
// goroutine; a durable broker can replace this behind the same Enqueue
// interface.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/heartmarshall/xapi-statements/internal/service/statement"
)

// ErrQueueFull is returned by Enqueue when the buffer has no room left.
var ErrQueueFull = errors.New("statement queue full")

type processor interface {
	Process(ctx context.Context, job statement.CreateJob) error
}

// Queue buffers statement jobs and processes them in the background.
type Queue struct {
	log  *slog.Logger
	proc processor
	jobs chan statement.CreateJob
	wg   sync.WaitGroup
}

// NewQueue creates a queue with the given buffer size.
func NewQueue(logger *slog.Logger, proc processor, size int) *Queue {
	if size <= 0 {
		size = 128
	}
	return &Queue{
		log:  logger.With("component", "statement_queue"),
		proc: proc,
		jobs: make(chan statement.CreateJob, size),
	}
}

// Enqueue buffers one job. It never blocks: a full buffer returns
// ErrQueueFull so the caller can fall back to synchronous recording.
func (q *Queue) Enqueue(ctx context.Context, job statement.CreateJob) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the background drain loop. It returns immediately; the
// loop stops when ctx is cancelled or Stop is called.
func (q *Queue) Start(ctx context.Context) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-q.jobs:
				if !ok {
					return
				}
				if err := q.proc.Process(ctx, job); err != nil {
					// A bad payload is dropped, not retried. Validation
					// failures on the async path are only visible here.
					q.log.Error("queued statement rejected", slog.String("error", err.Error()))
				}
			}
		}
	}()
}

// Stop closes the queue and waits for the drain loop to finish the jobs
// already buffered.
func (q *Queue) Stop() {
	close(q.jobs)
	q.wg.Wait()
}
