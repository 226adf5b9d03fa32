package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualSchedulerOrdering(t *testing.T) {
	s := NewManualScheduler()
	var fired []string

	s.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	s.AfterFunc(time.Second, func() {
		fired = append(fired, "a")
		s.AfterFunc(500*time.Millisecond, func() { fired = append(fired, "a2") })
	})
	stopped := s.AfterFunc(time.Second, func() { fired = append(fired, "never") })

	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())

	s.Advance(3 * time.Second)
	assert.Equal(t, []string{"a", "a2", "b"}, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestIDGenerators(t *testing.T) {
	ids := NewIDGenerator()
	assert.Regexp(t, `^ORD\d{6}$`, ids.OrderID())
	assert.NotEqual(t, ids.NewID(), ids.NewID())

	seq := NewSequentialIDs("wf")
	assert.Equal(t, "wf-1", seq.NewID())
	assert.Equal(t, "wf-2", seq.NewID())
	assert.Equal(t, "ORD000001", seq.OrderID())
}
