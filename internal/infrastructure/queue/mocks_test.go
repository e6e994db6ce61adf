package queue

import (
	"context"
	"sync"
	"time"

	"gympoint/internal/shared/logger"
)

type scheduledJob struct {
	job *Job
	at  time.Time
}

type fakeBroker struct {
	mu        sync.Mutex
	ready     chan *Job
	pushed    []*Job
	scheduled []scheduledJob
	promotes  int
	acked     []string
	consumers []string
	recovered []string
	recoverN  int
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{ready: make(chan *Job, 16)}
}

func (b *fakeBroker) Push(ctx context.Context, job *Job) error {
	b.mu.Lock()
	b.pushed = append(b.pushed, job)
	b.mu.Unlock()
	b.ready <- job
	return nil
}

func (b *fakeBroker) Pop(ctx context.Context, consumer string, keys []string, timeout time.Duration) (*Job, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case job := <-b.ready:
		b.mu.Lock()
		b.consumers = append(b.consumers, consumer)
		b.mu.Unlock()
		return job, nil
	case <-time.After(timeout):
		return nil, nil
	}
}

func (b *fakeBroker) Ack(ctx context.Context, consumer string, job *Job) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.acked = append(b.acked, job.ID)
	return nil
}

func (b *fakeBroker) Recover(ctx context.Context, worker string, keys []string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recovered = append(b.recovered, worker)
	return b.recoverN, nil
}

func (b *fakeBroker) Schedule(ctx context.Context, job *Job, at time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	copied := *job
	b.scheduled = append(b.scheduled, scheduledJob{job: &copied, at: at})
	return nil
}

func (b *fakeBroker) PromoteDue(ctx context.Context, now time.Time) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.promotes++
	return 0, nil
}

func (b *fakeBroker) ackedIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.acked...)
}

func (b *fakeBroker) promoteCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.promotes
}

func (b *fakeBroker) scheduledJobs() []scheduledJob {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]scheduledJob(nil), b.scheduled...)
}

type fakeDeadLetters struct {
	mu      sync.Mutex
	letters []*DeadLetter
	err     error
}

func (s *fakeDeadLetters) Save(ctx context.Context, letter *DeadLetter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.letters = append(s.letters, letter)
	return nil
}

func (s *fakeDeadLetters) all() []*DeadLetter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*DeadLetter(nil), s.letters...)
}

type mockLogger struct{}

func newMockLogger() logger.Interface { return &mockLogger{} }

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
