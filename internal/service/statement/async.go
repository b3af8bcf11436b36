package statement

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNoQueue is returned by CreateAsync when the service was wired without a
// background queue.
var ErrNoQueue = errors.New("statement queue not configured")

// CreateJob is one queued statement-recording request.
type CreateJob struct {
	Raw    RawStatement
	Caller CallerContext
}

// CreateAsync hands the payload to the background queue and returns without
// waiting for persistence. A full validation pass still happens later, on
// the worker, inside the same pipeline Create uses.
func (s *Service) CreateAsync(ctx context.Context, raw RawStatement, caller CallerContext) error {
	if s.queue == nil {
		return ErrNoQueue
	}
	if err := s.queue.Enqueue(ctx, CreateJob{Raw: raw, Caller: caller}); err != nil {
		return err
	}
	s.log.Debug("statement enqueued", slog.String("verb", verbID(raw)))
	return nil
}

// Process records one queued job. The background worker calls this for every
// job it dequeues.
func (s *Service) Process(ctx context.Context, job CreateJob) error {
	_, err := s.Create(ctx, job.Raw, job.Caller)
	return err
}

func verbID(raw RawStatement) string {
	if raw.Verb == nil {
		return ""
	}
	return raw.Verb.ID
}
