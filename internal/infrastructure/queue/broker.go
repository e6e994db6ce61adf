package queue

import (
	"context"
	"time"
)

// Broker moves jobs in and out of storage. A popped job stays on the
// consumer's processing list until it is acknowledged, so a consumer that dies
// mid-job leaves it behind for Recover.
type Broker interface {
	// Push appends job to the list of its key.
	Push(ctx context.Context, job *Job) error
	// Pop blocks up to timeout for a job on any of keys and parks it on the
	// processing list of consumer. It returns nil, nil when the timeout elapses.
	Pop(ctx context.Context, consumer string, keys []string, timeout time.Duration) (*Job, error)
	// Ack removes a popped job from the processing list of consumer.
	Ack(ctx context.Context, consumer string, job *Job) error
	// Recover moves jobs left on the processing lists of worker's consumers
	// back to their queues.
	Recover(ctx context.Context, worker string, keys []string) (int, error)
	// Schedule parks job until at.
	Schedule(ctx context.Context, job *Job, at time.Time) error
	// PromoteDue moves parked jobs whose time has come back to their lists.
	PromoteDue(ctx context.Context, now time.Time) (int, error)
}

// DeadLetter is a job that will not be retried again.
type DeadLetter struct {
	Job      *Job
	Error    string
	FailedAt time.Time
}

// DeadLetterStore keeps jobs that exhausted their attempts.
type DeadLetterStore interface {
	Save(ctx context.Context, letter *DeadLetter) error
}
