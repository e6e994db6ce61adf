package goroutine

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"gympoint/internal/shared/logger"
)

type recordingLogger struct {
	logger.Interface
	errors atomic.Int32
}

func (l *recordingLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.errors.Add(1)
}

func TestSafeGoWG_RecoversPanic(t *testing.T) {
	log := &recordingLogger{}
	var wg sync.WaitGroup

	SafeGoWG(log, &wg, "panicky", func() {
		panic("boom")
	})
	wg.Wait()

	assert.Equal(t, int32(1), log.errors.Load())
}

func TestSafeGo_RunsFunction(t *testing.T) {
	log := &recordingLogger{}
	done := make(chan struct{})

	SafeGo(log, "worker", func() {
		close(done)
	})
	<-done

	assert.Equal(t, int32(0), log.errors.Load())
}
