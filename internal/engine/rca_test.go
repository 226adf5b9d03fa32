package engine

import (
	"testing"
	"time"

	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRCA(t *testing.T) (*RCARun, *ManualScheduler, *recordingSink) {
	t.Helper()

	alert, ok := catalog.Default().AlertByID("6")
	require.True(t, ok)

	sched := NewManualScheduler()
	sink := &recordingSink{}
	run := NewRCARun(RCAConfig{
		Alert:     alert,
		Scheduler: sched,
		Sink:      sink,
		Logger:    logger.NewForTesting(),
	})
	return run, sched, sink
}

func TestRCAStagedReveal(t *testing.T) {
	run, sched, _ := newTestRCA(t)
	require.NoError(t, run.Start())

	rep := run.Report()
	assert.Equal(t, 0, rep.Progress)
	assert.Empty(t, rep.Findings)
	assert.False(t, rep.Complete)

	steps := []struct {
		progress int
		findings int
	}{
		{33, 1},
		{66, 2},
		{100, 3},
	}
	for _, step := range steps {
		sched.Advance(DefaultRCAStageInterval - time.Millisecond)
		assert.Less(t, run.Report().Progress, step.progress)

		sched.Advance(time.Millisecond)
		rep = run.Report()
		assert.Equal(t, step.progress, rep.Progress)
		assert.Len(t, rep.Findings, step.findings)
	}

	assert.True(t, rep.Complete)
	assert.Equal(t, "6", rep.AlertID)
	assert.Equal(t, 0, sched.Pending())
}

func TestRCAStagesFireInOrder(t *testing.T) {
	run, sched, sink := newTestRCA(t)
	require.NoError(t, run.Start())

	sched.Advance(3 * DefaultRCAStageInterval)

	var progress []int
	for _, e := range sink.Events() {
		require.Equal(t, EventRCAProgress, e.Type)
		progress = append(progress, e.RCA.Progress)
	}
	assert.Equal(t, []int{0, 33, 66, 100}, progress)
	assert.ErrorIs(t, run.Start(), ErrAlreadyStarted)
}

func TestRCAStop(t *testing.T) {
	run, sched, _ := newTestRCA(t)
	require.NoError(t, run.Start())

	sched.Advance(DefaultRCAStageInterval)
	run.Stop()
	sched.Advance(time.Minute)

	rep := run.Report()
	assert.Equal(t, 33, rep.Progress)
	assert.False(t, rep.Complete)
}

func TestFindings(t *testing.T) {
	alert, ok := catalog.Default().AlertByID("1")
	require.True(t, ok)

	findings := Findings(alert)
	require.Len(t, findings, 3)
	assert.Contains(t, findings[0], "Bab el-Mandeb")
	assert.Contains(t, findings[1], alert.Impact)
	assert.Contains(t, findings[2], "Premium Synthetic Motor Oil 5W-30")
	assert.Contains(t, findings[2], "38%")
}
