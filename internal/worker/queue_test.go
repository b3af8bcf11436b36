package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/heartmarshall/xapi-statements/internal/service/statement"
)

type processorMock struct {
	mu     sync.Mutex
	jobs   []statement.CreateJob
	err    error
	signal chan struct{}
}

func newProcessorMock() *processorMock {
	return &processorMock{signal: make(chan struct{}, 16)}
}

func (p *processorMock) Process(ctx context.Context, job statement.CreateJob) error {
	p.mu.Lock()
	p.jobs = append(p.jobs, job)
	p.mu.Unlock()
	p.signal <- struct{}{}
	return p.err
}

func (p *processorMock) processed() []statement.CreateJob {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.jobs
}

func waitFor(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for job to be processed")
	}
}

func TestQueue_ProcessesEnqueuedJobs(t *testing.T) {
	t.Parallel()

	proc := newProcessorMock()
	q := NewQueue(slog.Default(), proc, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	job := statement.CreateJob{Caller: statement.CallerContext{Email: "jane@example.com"}}
	if err := q.Enqueue(ctx, job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	waitFor(t, proc.signal)
	got := proc.processed()
	if len(got) != 1 || got[0].Caller.Email != "jane@example.com" {
		t.Errorf("processed jobs: %+v", got)
	}
}

func TestQueue_FullBufferRejects(t *testing.T) {
	t.Parallel()

	// Not started: nothing drains the buffer.
	q := NewQueue(slog.Default(), newProcessorMock(), 1)

	ctx := context.Background()
	if err := q.Enqueue(ctx, statement.CreateJob{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.Enqueue(ctx, statement.CreateJob{}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestQueue_StopDrainsBufferedJobs(t *testing.T) {
	t.Parallel()

	proc := newProcessorMock()
	q := NewQueue(slog.Default(), proc, 4)

	ctx := context.Background()
	for range 3 {
		if err := q.Enqueue(ctx, statement.CreateJob{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	q.Start(ctx)
	q.Stop()

	if got := len(proc.processed()); got != 3 {
		t.Errorf("processed: got %d, want 3", got)
	}
}

func TestQueue_ProcessingErrorDoesNotStopLoop(t *testing.T) {
	t.Parallel()

	proc := newProcessorMock()
	proc.err = errors.New("validation failed")
	q := NewQueue(slog.Default(), proc, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	for range 2 {
		if err := q.Enqueue(ctx, statement.CreateJob{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	waitFor(t, proc.signal)
	waitFor(t, proc.signal)

	if got := len(proc.processed()); got != 2 {
		t.Errorf("processed: got %d, want 2", got)
	}
}
