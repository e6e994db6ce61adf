package queue

import (
	"context"
	"time"

	"gympoint/internal/shared/logger"
)

// Producer turns payloads into jobs and hands them to a broker.
type Producer struct {
	broker Broker
	logger logger.Interface
	now    func() time.Time
}

func NewProducer(broker Broker, logger logger.Interface) *Producer {
	return &Producer{
		broker: broker,
		logger: logger,
		now:    time.Now,
	}
}

// Enqueue submits payload to the queue named key.
func (p *Producer) Enqueue(ctx context.Context, key string, payload interface{}) error {
	job, err := NewJob(key, payload, p.now())
	if err != nil {
		return err
	}

	if err := p.broker.Push(ctx, job); err != nil {
		p.logger.Errorw("failed to enqueue job", "error", err, "queue", key, "job_id", job.ID)
		return err
	}

	p.logger.Debugw("job enqueued", "queue", key, "job_id", job.ID)
	return nil
}
