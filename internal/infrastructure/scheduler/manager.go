// Package scheduler runs periodic batch jobs on gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"gympoint/internal/shared/biztime"
	"gympoint/internal/shared/logger"
)

// BatchJob processes one batch per call and reports how many items it handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// BatchJobFunc adapts a function to BatchJob.
type BatchJobFunc func(ctx context.Context) (int, error)

func (f BatchJobFunc) Execute(ctx context.Context) (int, error) {
	return f(ctx)
}

// SchedulerManager owns a gocron scheduler and the jobs registered on it.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler in the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterBatchJob runs job every interval, starting immediately. A run that
// is still busy when the next tick fires makes that tick skip.
func (m *SchedulerManager) RegisterBatchJob(name string, interval time.Duration, job BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval+30*time.Second)
			defer cancel()
			m.runBatch(ctx, name, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered batch job", "name", name, "interval", interval)
	return nil
}

func (m *SchedulerManager) runBatch(ctx context.Context, name string, job BatchJob) {
	startTime := time.Now()

	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("batch job failed",
			"name", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}
	if count > 0 {
		m.logger.Debugw("batch job processed items",
			"name", name,
			"count", count,
			"duration", time.Since(startTime),
		)
	}
}

// Start begins running registered jobs. Calling it twice is a no-op.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs and shuts the scheduler down.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
