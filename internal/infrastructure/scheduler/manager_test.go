package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gympoint/internal/shared/logger"
)

func TestSchedulerManager_RunsBatchJob(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewLogger())
	require.NoError(t, err)

	var runs atomic.Int32
	require.NoError(t, m.RegisterBatchJob("count", 10*time.Millisecond, BatchJobFunc(func(ctx context.Context) (int, error) {
		runs.Add(1)
		return 1, nil
	})))

	m.Start()
	m.Start()
	assert.True(t, m.IsStarted())

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
	assert.NoError(t, m.Stop())
}

func TestSchedulerManager_FailingJobKeepsRunning(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewLogger())
	require.NoError(t, err)

	var runs atomic.Int32
	require.NoError(t, m.RegisterBatchJob("failing", 10*time.Millisecond, BatchJobFunc(func(ctx context.Context) (int, error) {
		runs.Add(1)
		return 0, errors.New("redis down")
	})))

	m.Start()
	defer m.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestSchedulerManager_SingletonRuns(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewLogger())
	require.NoError(t, err)

	var running, overlapped atomic.Int32
	require.NoError(t, m.RegisterBatchJob("slow", 5*time.Millisecond, BatchJobFunc(func(ctx context.Context) (int, error) {
		if running.Add(1) > 1 {
			overlapped.Add(1)
		}
		time.Sleep(30 * time.Millisecond)
		running.Add(-1)
		return 0, nil
	})))

	m.Start()
	time.Sleep(150 * time.Millisecond)
	require.NoError(t, m.Stop())

	assert.Zero(t, overlapped.Load())
}
