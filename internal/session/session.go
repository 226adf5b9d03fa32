// Package session owns the per-browser state of the command center: the filter
// selection, the grocery cart, running workflow simulations and RCA reveals.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/engine"
	"github.com/davidmoltin/command-center/internal/grocery"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrAlertNotFound    = errors.New("alert not found")
	ErrWorkflowNotFound = errors.New("workflow not found")
	ErrRCANotFound      = errors.New("rca not started for alert")
	ErrNoActions        = errors.New("no known actions selected")
)

// SinkFactory returns the event sink for a session
type SinkFactory func(sessionID string) engine.Sink

// Options are the dependencies shared by every session of a store
type Options struct {
	TTL          time.Duration
	StartupDelay time.Duration
	RCAInterval  time.Duration

	Catalog   *catalog.Catalog
	Scheduler engine.Scheduler
	IDs       engine.IDGenerator
	Clock     engine.Clock
	Sinks     SinkFactory
	Metrics   *metrics.Metrics
	Logger    *logger.Logger
}

// WorkflowRequest describes a "Trigger Workflow" action from the alert detail view
type WorkflowRequest struct {
	AlertID     string
	Name        string
	Description string
	ActionIDs   []string
}

// Summary is the externally visible state of a session
type Summary struct {
	ID        string                 `json:"id"`
	Filters   models.FilterSelection `json:"filters"`
	Workflows []string               `json:"workflows"`
	RCAAlerts []string               `json:"rca_alerts"`
	Cart      models.CartSummary     `json:"cart"`
	CreatedAt time.Time              `json:"created_at"`
	LastSeen  time.Time              `json:"last_seen"`
}

// Session is the state of one dashboard user
type Session struct {
	mu sync.Mutex

	id   string
	opts *Options
	sink engine.Sink
	log  *logger.Logger

	filters   models.FilterSelection
	cart      *grocery.Cart
	workflows map[string]*engine.Sequencer
	order     []string
	rca       map[string]*engine.RCARun

	createdAt time.Time
	lastSeen  time.Time
}

func newSession(id string, opts *Options) *Session {
	now := opts.Clock()
	sink := engine.Sink(engine.SinkFunc(func(engine.Event) {}))
	if opts.Sinks != nil {
		sink = opts.Sinks(id)
	}

	return &Session{
		id:        id,
		opts:      opts,
		sink:      sink,
		log:       opts.Logger.ForSession(id),
		filters:   models.DefaultFilterSelection(),
		cart:      grocery.NewCart(opts.IDs.NewID),
		workflows: make(map[string]*engine.Sequencer),
		rca:       make(map[string]*engine.RCARun),
		createdAt: now,
		lastSeen:  now,
	}
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Cart returns the session's cart
func (s *Session) Cart() *grocery.Cart {
	return s.cart
}

// Filters returns the current filter selection
func (s *Session) Filters() models.FilterSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilter changes one facet, applying the cascade reset
func (s *Session) SetFilter(facet models.Facet, value string) models.FilterSelection {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = s.filters.Set(facet, value)
	if s.opts.Metrics != nil {
		s.opts.Metrics.FilterChangesTotal.WithLabelValues(string(facet)).Inc()
	}
	return s.filters
}

// StartWorkflow creates and starts a sequencer for the selected actions of an alert
func (s *Session) StartWorkflow(req WorkflowRequest) (*engine.Sequencer, error) {
	alert, ok := s.opts.Catalog.AlertByID(req.AlertID)
	if !ok {
		return nil, ErrAlertNotFound
	}
	actions := s.opts.Catalog.ActionsByID(req.AlertID, req.ActionIDs)
	if len(actions) == 0 {
		return nil, ErrNoActions
	}

	seq := engine.NewSequencer(engine.SequencerConfig{
		Name:         req.Name,
		Description:  req.Description,
		Alert:        alert,
		Actions:      actions,
		StartupDelay: s.opts.StartupDelay,
		Scheduler:    s.opts.Scheduler,
		IDs:          s.opts.IDs,
		Clock:        s.opts.Clock,
		Sink:         s.sink,
		Logger:       s.log,
	})

	s.mu.Lock()
	s.workflows[seq.ID()] = seq
	s.order = append(s.order, seq.ID())
	s.mu.Unlock()

	if err := seq.Start(); err != nil {
		return nil, err
	}
	if s.opts.Metrics != nil {
		s.opts.Metrics.WorkflowsTotal.WithLabelValues("started").Inc()
	}
	return seq, nil
}

// Workflow returns a sequencer by id
func (s *Session) Workflow(id string) (*engine.Sequencer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, ok := s.workflows[id]
	if !ok {
		return nil, ErrWorkflowNotFound
	}
	return seq, nil
}

// Workflows returns every sequencer in creation order
func (s *Session) Workflows() []*engine.Sequencer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*engine.Sequencer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.workflows[id])
	}
	return out
}

// StopWorkflow cancels a sequencer's pending callbacks and forgets it
func (s *Session) StopWorkflow(id string) error {
	s.mu.Lock()
	seq, ok := s.workflows[id]
	if ok {
		delete(s.workflows, id)
		for i, wid := range s.order {
			if wid == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		return ErrWorkflowNotFound
	}
	seq.Stop()
	if s.opts.Metrics != nil {
		s.opts.Metrics.WorkflowsTotal.WithLabelValues("stopped").Inc()
	}
	return nil
}

// StartRCA begins the staged reveal for an alert. Reopening an alert restarts it.
func (s *Session) StartRCA(alertID string) (models.RCAReport, error) {
	alert, ok := s.opts.Catalog.AlertByID(alertID)
	if !ok {
		return models.RCAReport{}, ErrAlertNotFound
	}

	run := engine.NewRCARun(engine.RCAConfig{
		Alert:     alert,
		Interval:  s.opts.RCAInterval,
		Scheduler: s.opts.Scheduler,
		Sink:      s.sink,
		Logger:    s.log,
	})

	s.mu.Lock()
	prev := s.rca[alertID]
	s.rca[alertID] = run
	s.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
	if err := run.Start(); err != nil {
		return models.RCAReport{}, err
	}
	if s.opts.Metrics != nil {
		s.opts.Metrics.RCARunsTotal.Inc()
	}
	return run.Report(), nil
}

// RCA returns the current reveal state for an alert
func (s *Session) RCA(alertID string) (models.RCAReport, error) {
	s.mu.Lock()
	run, ok := s.rca[alertID]
	s.mu.Unlock()

	if !ok {
		return models.RCAReport{}, ErrRCANotFound
	}
	return run.Report(), nil
}

// Summary returns a snapshot of the session
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	rca := make([]string, 0, len(s.rca))
	for _, a := range s.opts.Catalog.Alerts {
		if _, ok := s.rca[a.ID]; ok {
			rca = append(rca, a.ID)
		}
	}

	return Summary{
		ID:        s.id,
		Filters:   s.filters,
		Workflows: append([]string{}, s.order...),
		RCAAlerts: rca,
		Cart:      s.cart.Summary(),
		CreatedAt: s.createdAt,
		LastSeen:  s.lastSeen,
	}
}

// Close stops every pending timer owned by the session
func (s *Session) Close() {
	s.mu.Lock()
	workflows := s.workflows
	runs := s.rca
	s.workflows = make(map[string]*engine.Sequencer)
	s.order = nil
	s.rca = make(map[string]*engine.RCARun)
	s.mu.Unlock()

	for _, seq := range workflows {
		seq.Stop()
	}
	for _, run := range runs {
		run.Stop()
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
