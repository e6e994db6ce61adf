package queue

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"gympoint/internal/infrastructure/scheduler"
	"gympoint/internal/shared/goroutine"
	"gympoint/internal/shared/logger"
)

// WorkerConfig tunes the worker pool.
type WorkerConfig struct {
	// ID prefixes the consumer names. Unfinished jobs of consumers with the
	// same ID are recovered when the worker starts.
	ID              string
	Concurrency     int
	MaxAttempts     int
	Backoff         time.Duration
	PollTimeout     time.Duration
	PromoteInterval time.Duration
}

func (c WorkerConfig) withDefaults() WorkerConfig {
	if c.ID == "" {
		c.ID = "worker"
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	if c.Backoff <= 0 {
		c.Backoff = 10 * time.Second
	}
	if c.PollTimeout <= 0 {
		c.PollTimeout = 5 * time.Second
	}
	if c.PromoteInterval <= 0 {
		c.PromoteInterval = time.Second
	}
	return c
}

// Worker consumes jobs from a broker and dispatches them to handlers by key.
type Worker struct {
	broker      Broker
	deadLetters DeadLetterStore
	handlers    map[string]Handler
	config      WorkerConfig
	logger      logger.Interface
	now         func() time.Time
}

func NewWorker(broker Broker, deadLetters DeadLetterStore, config WorkerConfig, logger logger.Interface) *Worker {
	return &Worker{
		broker:      broker,
		deadLetters: deadLetters,
		handlers:    make(map[string]Handler),
		config:      config.withDefaults(),
		logger:      logger,
		now:         time.Now,
	}
}

// Register routes jobs enqueued under key to handler. Register must be
// called before Run.
func (w *Worker) Register(key string, handler Handler) {
	w.handlers[key] = handler
}

// Keys returns the registered queue keys in a stable order.
func (w *Worker) Keys() []string {
	keys := make([]string, 0, len(w.handlers))
	for key := range w.handlers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Run recovers jobs this worker left unfinished, then consumes jobs until ctx
// is cancelled and waits for in-flight jobs.
func (w *Worker) Run(ctx context.Context) error {
	keys := w.Keys()
	if len(keys) == 0 {
		return fmt.Errorf("no job handlers registered")
	}

	recovered, err := w.broker.Recover(ctx, w.config.ID, keys)
	if err != nil {
		return fmt.Errorf("failed to recover unfinished jobs: %w", err)
	}
	if recovered > 0 {
		w.logger.Warnw("requeued unfinished jobs", "count", recovered, "worker_id", w.config.ID)
	}

	sched, err := scheduler.NewSchedulerManager(w.logger)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	promote := scheduler.BatchJobFunc(func(ctx context.Context) (int, error) {
		return w.broker.PromoteDue(ctx, w.now())
	})
	if err := sched.RegisterBatchJob("queue-promote-delayed", w.config.PromoteInterval, promote); err != nil {
		return fmt.Errorf("failed to register promote job: %w", err)
	}

	w.logger.Infow("queue worker started",
		"worker_id", w.config.ID,
		"queues", keys,
		"concurrency", w.config.Concurrency,
		"max_attempts", w.config.MaxAttempts,
	)

	var wg sync.WaitGroup
	for i := 0; i < w.config.Concurrency; i++ {
		consumer := fmt.Sprintf("%s:%d", w.config.ID, i)
		goroutine.SafeGoWG(w.logger, &wg, "queue-consumer-"+consumer, func() {
			w.consume(ctx, consumer, keys)
		})
	}
	sched.Start()

	<-ctx.Done()
	wg.Wait()
	if err := sched.Stop(); err != nil {
		w.logger.Warnw("scheduler stopped with error", "error", err)
	}

	w.logger.Infow("queue worker stopped")
	return nil
}

func (w *Worker) consume(ctx context.Context, consumer string, keys []string) {
	for ctx.Err() == nil {
		job, err := w.broker.Pop(ctx, consumer, keys, w.config.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Errorw("failed to pop job", "error", err, "consumer", consumer)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		if job == nil {
			continue
		}

		// Jobs already taken off the list finish even during shutdown.
		jobCtx := context.WithoutCancel(ctx)
		if !w.process(jobCtx, job) {
			// Left on the processing list, recovered on the next start.
			continue
		}
		if err := w.broker.Ack(jobCtx, consumer, job); err != nil {
			w.logger.Errorw("failed to ack job", "error", err, "job_id", job.ID)
		}
	}
}

// process runs job and reports whether its outcome is stored: handled,
// scheduled for retry or dead-lettered.
func (w *Worker) process(ctx context.Context, job *Job) bool {
	log := w.logger.With("job_id", job.ID, "queue", job.Key, "attempt", job.Attempts+1)

	handler, ok := w.handlers[job.Key]
	if !ok {
		log.Errorw("no handler registered for job")
		return w.deadLetter(ctx, job, "no handler registered for "+job.Key)
	}

	start := w.now()
	err := w.invoke(ctx, handler, job)
	if err == nil {
		log.Infow("job processed", "duration", w.now().Sub(start))
		return true
	}

	job.Attempts++
	job.LastError = err.Error()

	if job.Attempts >= w.config.MaxAttempts {
		log.Errorw("job failed permanently", "error", err)
		return w.deadLetter(ctx, job, err.Error())
	}

	retryAt := w.now().Add(Backoff(w.config.Backoff, job.Attempts))
	log.Warnw("job failed, retry scheduled", "error", err, "retry_at", retryAt)
	if err := w.broker.Schedule(ctx, job, retryAt); err != nil {
		log.Errorw("failed to schedule job retry", "error", err)
		return w.deadLetter(ctx, job, job.LastError)
	}
	return true
}

func (w *Worker) invoke(ctx context.Context, handler Handler, job *Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Errorw("job handler panicked",
				"job_id", job.ID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return handler.Handle(ctx, job.Payload)
}

func (w *Worker) deadLetter(ctx context.Context, job *Job, reason string) bool {
	if w.deadLetters == nil {
		w.logger.Warnw("dead letter store not configured, job dropped", "job_id", job.ID)
		return true
	}
	letter := &DeadLetter{Job: job, Error: reason, FailedAt: w.now().UTC()}
	if err := w.deadLetters.Save(ctx, letter); err != nil {
		w.logger.Errorw("failed to store dead letter", "error", err, "job_id", job.ID)
		return false
	}
	return true
}
