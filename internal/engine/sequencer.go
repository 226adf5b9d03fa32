// Package engine runs the scripted multi-agent procurement workflow and the staged
// root-cause analysis reveal shown for an alert.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/pkg/logger"
)

// DefaultStartupDelay is the pause between Start and the trace being generated
const DefaultStartupDelay = time.Second

var (
	// ErrAlreadyStarted is returned when Start is called more than once
	ErrAlreadyStarted = errors.New("workflow already started")
	// ErrStopped is returned when starting a stopped sequencer
	ErrStopped = errors.New("workflow stopped")
	// ErrNotCompleted is returned for follow-up messages sent before the trace completes
	ErrNotCompleted = errors.New("workflow has not completed")
)

// Fixed ratios of the scripted procurement run, in percent of the required quantity
const (
	primarySplitPct   = 60
	secondarySplitPct = 40
	onHandPct         = 50
	orderPct          = 80
)

const (
	insufficientComponent = "Base Oil (Group III)"
	sufficientComponent   = "Performance Additive Package"
)

var defaultProduct = models.AffectedProduct{
	Name:    "Premium Motor Oil",
	HSNCode: "2710.19",
	SKUs:    []string{"MO-5W30-001"},
}

// stepTitles are the orchestrator steps logged for every executed action
var stepTitles = []string{
	"Identify workflow",
	"Create execution plan",
	"Parse purchase order",
	"Locate specification document",
	"Parse specification document",
	"Check inventory",
	"Order missing material",
}

// SequencerConfig configures a Sequencer. Zero-valued dependencies get production defaults.
type SequencerConfig struct {
	ID           string
	Name         string
	Description  string
	Alert        models.Alert
	Actions      []models.RecommendedAction
	StartupDelay time.Duration

	Scheduler Scheduler
	IDs       IDGenerator
	Clock     Clock
	Sink      Sink
	Logger    *logger.Logger
}

// Sequencer produces the timed agent trace for a set of executed recommended actions
type Sequencer struct {
	mu sync.Mutex

	cfg   SequencerConfig
	trace models.WorkflowTrace

	// required holds the parsed required quantity per dataset
	required []int

	timer   Timer
	started bool
	stopped bool
}

// NewSequencer creates an idle sequencer
func NewSequencer(cfg SequencerConfig) *Sequencer {
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewScheduler()
	}
	if cfg.IDs == nil {
		cfg.IDs = NewIDGenerator()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Sink == nil {
		cfg.Sink = discardSink
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	if cfg.StartupDelay <= 0 {
		cfg.StartupDelay = DefaultStartupDelay
	}
	if cfg.ID == "" {
		cfg.ID = cfg.IDs.NewID()
	}
	cfg.Actions = append([]models.RecommendedAction(nil), cfg.Actions...)
	cfg.Logger = cfg.Logger.ForWorkflow(cfg.ID, cfg.Alert.ID)

	return &Sequencer{
		cfg: cfg,
		trace: models.WorkflowTrace{
			ID:           cfg.ID,
			Name:         cfg.Name,
			Description:  cfg.Description,
			AlertID:      cfg.Alert.ID,
			State:        models.WorkflowStateIdle,
			AgentActions: []models.AgentAction{},
			Messages:     []models.ChatMessage{},
		},
	}
}

// ID returns the workflow id
func (s *Sequencer) ID() string {
	return s.cfg.ID
}

// Start schedules trace generation after the startup delay
func (s *Sequencer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	s.timer = s.cfg.Scheduler.AfterFunc(s.cfg.StartupDelay, s.run)

	s.cfg.Logger.Info("Workflow scheduled",
		logger.String("name", s.cfg.Name),
		logger.Int("actions", len(s.cfg.Actions)),
		logger.Duration("startup_delay", s.cfg.StartupDelay),
	)
	return nil
}

// Stop cancels any pending callback. A stopped sequencer never emits again.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.cfg.Logger.Debug("Workflow stopped", logger.String("state", string(s.trace.State)))
}

// State returns the current lifecycle state
func (s *Sequencer) State() models.WorkflowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trace.State
}

// Trace returns a snapshot of the trace
func (s *Sequencer) Trace() models.WorkflowTrace {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.trace
	t.AgentActions = append([]models.AgentAction{}, s.trace.AgentActions...)
	t.Messages = append([]models.ChatMessage{}, s.trace.Messages...)
	t.Datasets = append([]models.WorkflowDataset(nil), s.trace.Datasets...)
	return t
}

// SendMessage appends a follow-up user message and its acknowledgement.
// Whitespace-only input is ignored.
func (s *Sequencer) SendMessage(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trace.State != models.WorkflowStateCompleted {
		return ErrNotCompleted
	}
	if s.stopped {
		return ErrStopped
	}

	s.appendMessage(models.MessageTypeUser, "", text)
	s.appendMessage(models.MessageTypeAssistant, models.AgentOrchestrator, fmt.Sprintf(
		"Understood: \"%s\". All %d purchase orders from %s remain on track and I will flag any change in supplier status.",
		text, len(s.trace.Datasets), s.cfg.Name,
	))
	return nil
}

// VoiceInput reports that voice capture is not available. The trace is unchanged.
func (s *Sequencer) VoiceInput() models.Notification {
	n := models.Notification{
		Level:   "warning",
		Message: "Voice input is not supported in this environment",
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		s.publish(Event{Type: EventNotification, Notification: &n})
	}
	return n
}

// run generates the whole trace in one pass
func (s *Sequencer) run() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.trace.State != models.WorkflowStateIdle {
		return
	}

	start := time.Now()
	s.setState(models.WorkflowStateProcessing)

	s.appendMessage(models.MessageTypeUser, "", fmt.Sprintf("Execute %s: %s", s.cfg.Name, s.cfg.Description))
	s.appendMessage(models.MessageTypeAssistant, models.AgentOrchestrator, fmt.Sprintf(
		"Starting %s for \"%s\" with %d selected strategies.",
		s.cfg.Name, s.cfg.Alert.Title, len(s.cfg.Actions),
	))

	for i, action := range s.cfg.Actions {
		ds, required := s.deriveDataset(i, action)
		s.trace.Datasets = append(s.trace.Datasets, ds)
		s.required = append(s.required, required)
		s.runAction(action, ds, required)
	}

	s.appendMessage(models.MessageTypeAssistant, models.AgentOrchestrator, s.summary())
	s.setState(models.WorkflowStateCompleted)
	s.appendAction(models.AgentTypeOrchestrator, "End",
		fmt.Sprintf("%d purchase orders placed", len(s.trace.Datasets)))

	s.cfg.Logger.Info("Workflow completed",
		logger.Int("datasets", len(s.trace.Datasets)),
		logger.Int("agent_actions", len(s.trace.AgentActions)),
		logger.Int("messages", len(s.trace.Messages)),
		logger.Duration("duration", time.Since(start)),
	)
}

// deriveDataset builds the synthetic procurement figures for the i-th action
func (s *Sequencer) deriveDataset(i int, action models.RecommendedAction) (models.WorkflowDataset, int) {
	products := s.cfg.Alert.AffectedProducts
	product := defaultProduct
	if len(products) > 0 {
		product = products[i%len(products)]
	}

	sku := defaultProduct.SKUs[0]
	if len(product.SKUs) > 0 {
		sku = product.SKUs[0]
	}
	secondary := sku
	if len(product.SKUs) > 1 {
		secondary = product.SKUs[1]
	}

	required := RequiredQuantity(action.Description)
	return models.WorkflowDataset{
		ProductName:      product.Name,
		ProductHSN:       product.HSNCode,
		ProductSKU:       sku,
		SecondarySKU:     secondary,
		RequiredQty:      strconv.Itoa(required),
		OrderID:          s.cfg.IDs.OrderID(),
		InsufficientItem: insufficientComponent,
		SufficientItem:   sufficientComponent,
	}, required
}

// RequiredQuantity maps keywords in an action description to a required quantity in MT.
// The first matching keyword wins.
func RequiredQuantity(description string) int {
	switch {
	case strings.Contains(description, "Base Oil"):
		return 150
	case strings.Contains(description, "Additive"):
		return 80
	case strings.Contains(description, "Viscosity"):
		return 95
	default:
		return 120
	}
}

func percentOf(qty, pct int) int {
	return qty * pct / 100
}

// runAction logs the seven orchestrator steps for one action with their chat messages
func (s *Sequencer) runAction(action models.RecommendedAction, ds models.WorkflowDataset, required int) {
	for step, title := range stepTitles {
		agentType := models.AgentTypeTool
		if step < 2 {
			agentType = models.AgentTypeOrchestrator
		}

		var output string
		switch step {
		case 0:
			output = fmt.Sprintf("Strategy %s: %s", action.ID, action.Action)
		case 1:
			output = fmt.Sprintf("Plan: procure %d MT for %s", required, ds.ProductSKU)
		case 2:
			output = fmt.Sprintf("PO line %s x %s MT", ds.ProductSKU, ds.RequiredQty)
			s.appendMessage(models.MessageTypeAssistant, models.AgentTool, fmt.Sprintf(
				"Extracted purchase order for %s (HSN %s): SKU %s, required quantity %s MT.",
				ds.ProductName, ds.ProductHSN, ds.ProductSKU, ds.RequiredQty,
			))
		case 3:
			output = fmt.Sprintf("Spec document for %s", ds.ProductSKU)
			s.appendMessage(models.MessageTypeAssistant, models.AgentTool, fmt.Sprintf(
				"Located the product specification for %s covering SKUs %s and %s.",
				ds.ProductName, ds.ProductSKU, ds.SecondarySKU,
			))
		case 4:
			output = fmt.Sprintf("%d%% / %d%% component split", primarySplitPct, secondarySplitPct)
			s.appendMessage(models.MessageTypeAssistant, models.AgentTool, fmt.Sprintf(
				"Specification breakdown for %s MT: %d MT of %s (%d%%) and %d MT of %s (%d%%).",
				ds.RequiredQty,
				percentOf(required, primarySplitPct), ds.InsufficientItem, primarySplitPct,
				percentOf(required, secondarySplitPct), ds.SufficientItem, secondarySplitPct,
			))
		case 5:
			output = fmt.Sprintf("Shortage on %s", ds.InsufficientItem)
			s.appendMessage(models.MessageTypeAssistant, models.AgentInventory, fmt.Sprintf(
				"Inventory check: %s has 0 MT available (insufficient); %s has %d MT available (sufficient).",
				ds.InsufficientItem, ds.SufficientItem, percentOf(required, onHandPct),
			))
		case 6:
			output = fmt.Sprintf("Order %s placed", ds.OrderID)
			s.appendMessage(models.MessageTypeAssistant, models.AgentProcurement, fmt.Sprintf(
				"Purchase order %s placed for %d MT of %s to cover the %s shortfall.",
				ds.OrderID, percentOf(required, orderPct), ds.InsufficientItem, ds.ProductSKU,
			))
		}

		s.appendAction(agentType, title, output)
	}
}

// summary renders the consolidated message listing every placed order
func (s *Sequencer) summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workflow complete. %d purchase orders placed:", len(s.trace.Datasets))
	for i, ds := range s.trace.Datasets {
		action := s.cfg.Actions[i]
		fmt.Fprintf(&b, "\n- %s: %s (SKU %s), %d MT, cost %s, timeline %s, impact %s",
			ds.OrderID, ds.ProductName, ds.ProductSKU,
			percentOf(s.required[i], orderPct),
			action.Cost, action.Timeline, action.Impact,
		)
	}
	return b.String()
}

func (s *Sequencer) setState(state models.WorkflowState) {
	s.trace.State = state
	s.cfg.Logger.Info("Workflow state changed", logger.String("state", string(state)))
	s.publish(Event{Type: EventStateChanged, State: state})
}

func (s *Sequencer) appendAction(agentType models.AgentType, title, output string) {
	a := models.AgentAction{
		ID:        s.cfg.IDs.NewID(),
		AgentType: agentType,
		Title:     title,
		Status:    models.ActionStatusCompleted,
		Timestamp: s.cfg.Clock(),
	}
	if output != "" {
		a.Outputs = []string{output}
	}
	s.trace.AgentActions = append(s.trace.AgentActions, a)
	s.cfg.Logger.Debug("Agent action", logger.String("title", title))
	s.publish(Event{Type: EventAgentAction, Action: &a})
}

func (s *Sequencer) appendMessage(msgType models.MessageType, agent models.Agent, content string) {
	m := models.ChatMessage{
		ID:        s.cfg.IDs.NewID(),
		Type:      msgType,
		Content:   content,
		Timestamp: s.cfg.Clock(),
		Agent:     agent,
	}
	s.trace.Messages = append(s.trace.Messages, m)
	s.cfg.Logger.Debug("Chat message", logger.String("type", string(msgType)), logger.String("agent", string(agent)))
	s.publish(Event{Type: EventChatMessage, Message: &m})
}

func (s *Sequencer) publish(e Event) {
	e.WorkflowID = s.cfg.ID
	e.AlertID = s.cfg.Alert.ID
	s.cfg.Sink.Publish(e)
}
