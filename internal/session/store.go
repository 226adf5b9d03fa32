package session

import (
	"sync"
	"time"

	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/engine"
	"github.com/davidmoltin/command-center/pkg/logger"
)

// DefaultTTL is how long a session survives without requests
const DefaultTTL = 30 * time.Minute

// Store is an in-memory registry of sessions
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
}

// NewStore creates a store. Zero-valued options get production defaults.
func NewStore(opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = engine.NewScheduler()
	}
	if opts.IDs == nil {
		opts.IDs = engine.NewIDGenerator()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}

	return &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// TTL returns the idle timeout
func (st *Store) TTL() time.Duration {
	return st.opts.TTL
}

// Create registers a new session with default filters and an empty cart
func (st *Store) Create() *Session {
	s := newSession(st.opts.IDs.NewID(), &st.opts)

	st.mu.Lock()
	st.sessions[s.id] = s
	n := len(st.sessions)
	st.mu.Unlock()

	if st.opts.Metrics != nil {
		st.opts.Metrics.SessionsActive.Set(float64(n))
	}
	st.opts.Logger.Info("Session created", logger.SessionID(s.id))
	return s
}

// Get returns a session and marks it as active
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(st.opts.Clock())
	return s, nil
}

// Delete removes a session and stops its timers
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	n := len(st.sessions)
	st.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Close()

	if st.opts.Metrics != nil {
		st.opts.Metrics.SessionsActive.Set(float64(n))
	}
	st.opts.Logger.Info("Session deleted", logger.SessionID(id))
	return nil
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// ExpireIdle removes sessions idle for longer than the TTL and returns their ids
func (st *Store) ExpireIdle() []string {
	now := st.opts.Clock()

	st.mu.Lock()
	var expired []*Session
	for id, s := range st.sessions {
		if s.idleSince(now) > st.opts.TTL {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	n := len(st.sessions)
	st.mu.Unlock()

	ids := make([]string, 0, len(expired))
	for _, s := range expired {
		s.Close()
		ids = append(ids, s.id)
	}

	if st.opts.Metrics != nil {
		st.opts.Metrics.SessionsActive.Set(float64(n))
		st.opts.Metrics.SessionsExpired.Add(float64(len(ids)))
	}
	return ids
}

// CloseAll stops every session's timers and empties the store
func (st *Store) CloseAll() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	if st.opts.Metrics != nil {
		st.opts.Metrics.SessionsActive.Set(0)
	}
}
