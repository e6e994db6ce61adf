// Package queue implements a Redis-backed job queue with at-least-once
// delivery. A producer pushes JSON jobs onto per-key lists. A worker pool moves
// each job onto a processing list while it runs, retries failures with
// exponential backoff and dead-letters jobs that keep failing.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// maxBackoff caps the delay between two attempts of the same job.
const maxBackoff = time.Hour

// Job is the envelope stored in Redis.
type Job struct {
	ID         string          `json:"id"`
	Key        string          `json:"key"`
	Payload    json.RawMessage `json:"payload"`
	Attempts   int             `json:"attempts"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
	LastError  string          `json:"last_error,omitempty"`

	// raw is the encoding the job was popped with, needed to acknowledge it.
	raw string
}

// NewJob wraps payload into a job for the queue named key.
func NewJob(key string, payload interface{}, now time.Time) (*Job, error) {
	if key == "" {
		return nil, fmt.Errorf("job key is required")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", key, err)
	}

	return &Job{
		ID:         uuid.NewString(),
		Key:        key,
		Payload:    raw,
		EnqueuedAt: now.UTC(),
	}, nil
}

func decodeJob(data string) (*Job, error) {
	var job Job
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("failed to decode job: %w", err)
	}
	job.raw = data
	return &job, nil
}

// Handler processes the payload of one job. Returning an error schedules a retry.
type Handler interface {
	Handle(ctx context.Context, payload json.RawMessage) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) error

func (f HandlerFunc) Handle(ctx context.Context, payload json.RawMessage) error {
	return f(ctx, payload)
}

// Backoff returns the delay before the given attempt is retried: base, 2*base,
// 4*base, and so on, capped at one hour.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	return delay
}
