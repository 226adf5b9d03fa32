package engine

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Timer is a pending scheduled callback
type Timer interface {
	// Stop cancels the callback. It reports false if the callback already ran or was stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Clock returns the current time
type Clock func() time.Time

// IDGenerator produces entity ids and purchase order numbers
type IDGenerator interface {
	NewID() string
	OrderID() string
}

type realScheduler struct{}

// NewScheduler returns a Scheduler backed by time.AfterFunc
func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type randomIDs struct{}

// NewIDGenerator returns the production generator: uuids for entities and
// "ORD" plus six random digits for orders
func NewIDGenerator() IDGenerator {
	return randomIDs{}
}

func (randomIDs) NewID() string {
	return uuid.NewString()
}

func (randomIDs) OrderID() string {
	return fmt.Sprintf("ORD%06d", rand.IntN(1_000_000))
}

// SequentialIDs is a deterministic IDGenerator
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	ids    int
	orders int
}

// NewSequentialIDs creates a generator yielding "<prefix>-1", "<prefix>-2", ... and
// "ORD000001", "ORD000002", ...
func NewSequentialIDs(prefix string) *SequentialIDs {
	return &SequentialIDs{prefix: prefix}
}

func (s *SequentialIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids++
	return fmt.Sprintf("%s-%d", s.prefix, s.ids)
}

func (s *SequentialIDs) OrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders++
	return fmt.Sprintf("ORD%06d", s.orders)
}

// ManualScheduler is a Scheduler whose time only moves when Advance is called.
// Callbacks run on the goroutine calling Advance.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	s   *ManualScheduler
	at  time.Duration
	seq int
	f   func()
}

// NewManualScheduler creates a ManualScheduler at time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{s: m, at: m.now + d, seq: m.seq, f: f}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves time forward by d, firing due callbacks in deadline order.
// Callbacks scheduled while advancing fire too when they fall inside the window.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d

	for {
		next := m.popDue(target)
		if next == nil {
			break
		}
		m.now = next.at
		m.mu.Unlock()
		next.f()
		m.mu.Lock()
	}

	m.now = target
	m.mu.Unlock()
}

// Pending returns the number of callbacks not yet fired or stopped
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// popDue removes and returns the earliest timer due at or before target (lock held)
func (m *ManualScheduler) popDue(target time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}

	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at == m.pending[j].at {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].at < m.pending[j].at
	})

	next := m.pending[0]
	if next.at > target {
		return nil
	}
	m.pending = m.pending[1:]
	return next
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for i, p := range t.s.pending {
		if p == t {
			t.s.pending = append(t.s.pending[:i], t.s.pending[i+1:]...)
			return true
		}
	}
	return false
}
