package workers

import (
	"context"
	"time"

	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
)

const sessionReaperType = "session_reaper"

// SessionExpirer removes idle sessions and returns their ids
type SessionExpirer interface {
	ExpireIdle() []string
}

// SessionReaper periodically removes idle sessions and stops their timers
type SessionReaper struct {
	sessions      SessionExpirer
	onExpire      func(sessionID string)
	metrics       *metrics.Metrics
	logger        *logger.Logger
	checkInterval time.Duration
	stopCh        chan struct{}
	doneCh        chan struct{}
}

// NewSessionReaper creates a new session reaper. onExpire and m may be nil.
func NewSessionReaper(
	sessions SessionExpirer,
	onExpire func(sessionID string),
	m *metrics.Metrics,
	logger *logger.Logger,
	checkInterval time.Duration,
) *SessionReaper {
	if checkInterval == 0 {
		checkInterval = time.Minute // Default to 1 minute
	}

	return &SessionReaper{
		sessions:      sessions,
		onExpire:      onExpire,
		metrics:       m,
		logger:        logger,
		checkInterval: checkInterval,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
}

// Start starts the worker in the background
func (w *SessionReaper) Start(ctx context.Context) {
	w.logger.Info("Starting session reaper",
		logger.String("interval", w.checkInterval.String()),
	)

	go w.run(ctx)
}

// Stop stops the worker gracefully
func (w *SessionReaper) Stop() {
	w.logger.Info("Stopping session reaper")
	close(w.stopCh)
	<-w.doneCh
	w.logger.Info("Session reaper stopped")
}

// run is the main worker loop
func (w *SessionReaper) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.reap()
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// reap expires idle sessions once
func (w *SessionReaper) reap() int {
	start := time.Now()
	w.logger.Debug("Checking for idle sessions")

	expired := w.sessions.ExpireIdle()
	for _, id := range expired {
		if w.onExpire != nil {
			w.onExpire(id)
		}
	}

	if w.metrics != nil {
		w.metrics.WorkerJobsProcessed.WithLabelValues(sessionReaperType, "success").Inc()
		w.metrics.WorkerJobDuration.WithLabelValues(sessionReaperType).Observe(time.Since(start).Seconds())
	}
	if len(expired) > 0 {
		w.logger.Info("Expired idle sessions", logger.Int("count", len(expired)))
	}
	return len(expired)
}
