package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
	cmdtest "github.com/davidmoltin/command-center/pkg/testutil"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// mockExpirer is a mock implementation for testing
type mockExpirer struct {
	mu      sync.Mutex
	calls   int
	batches [][]string
}

func (m *mockExpirer) ExpireIdle() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if len(m.batches) == 0 {
		return nil
	}
	next := m.batches[0]
	m.batches = m.batches[1:]
	return next
}

func (m *mockExpirer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestSessionReaperReap(t *testing.T) {
	expirer := &mockExpirer{batches: [][]string{{"s1", "s2"}}}
	m, _ := metrics.NewForTesting()

	var notified []string
	w := NewSessionReaper(expirer, func(id string) { notified = append(notified, id) }, m, logger.NewForTesting(), time.Hour)

	assert.Equal(t, 2, w.reap())
	assert.Equal(t, []string{"s1", "s2"}, notified)

	assert.Equal(t, 0, w.reap())
	assert.Len(t, notified, 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.WorkerJobsProcessed.WithLabelValues("session_reaper", "success")))
}

func TestSessionReaperRunsOnInterval(t *testing.T) {
	expirer := &mockExpirer{}
	w := NewSessionReaper(expirer, nil, nil, logger.NewForTesting(), 10*time.Millisecond)

	w.Start(context.Background())
	assert.Eventually(t, func() bool { return expirer.Calls() >= 2 }, 2*time.Second, 5*time.Millisecond)
	w.Stop()

	calls := expirer.Calls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, expirer.Calls())
}

func TestSessionReaperStopsOnContextCancel(t *testing.T) {
	w := NewSessionReaper(&mockExpirer{}, nil, nil, logger.NewForTesting(), time.Hour)

	ctx, cancel := cmdtest.CancelableContext(t)
	w.Start(ctx)
	cancel()

	select {
	case <-w.doneCh:
	case <-time.After(2 * time.Second):
		t.Fatal("reaper did not stop after context cancellation")
	}
}

func TestSessionReaperDefaultInterval(t *testing.T) {
	w := NewSessionReaper(&mockExpirer{}, nil, nil, logger.NewForTesting(), 0)
	assert.Equal(t, time.Minute, w.checkInterval)
}
