package engine

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/pkg/logger"
)

// DefaultRCAStageInterval is the delay between two RCA stages
const DefaultRCAStageInterval = 1500 * time.Millisecond

// rcaProgress is the progress shown at each stage; stage N reveals N findings
var rcaProgress = []int{0, 33, 66, 100}

// RCAConfig configures an RCARun
type RCAConfig struct {
	Alert     models.Alert
	Interval  time.Duration
	Scheduler Scheduler
	Sink      Sink
	Logger    *logger.Logger
}

// RCARun reveals the root-cause analysis of an alert in timed stages
type RCARun struct {
	mu sync.Mutex

	cfg      RCAConfig
	findings []string
	stage    int
	timer    Timer
	started  bool
	stopped  bool
}

// NewRCARun creates an RCA run at stage zero
func NewRCARun(cfg RCAConfig) *RCARun {
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewScheduler()
	}
	if cfg.Sink == nil {
		cfg.Sink = discardSink
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultRCAStageInterval
	}
	cfg.Logger = cfg.Logger.With(logger.AlertID(cfg.Alert.ID))

	return &RCARun{
		cfg:      cfg,
		findings: Findings(cfg.Alert),
	}
}

// Start publishes the initial stage and schedules the next one
func (r *RCARun) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return ErrStopped
	}
	if r.started {
		return ErrAlreadyStarted
	}
	r.started = true

	r.cfg.Logger.Info("RCA started")
	r.publish()
	r.timer = r.cfg.Scheduler.AfterFunc(r.cfg.Interval, r.advance)
	return nil
}

// Stop cancels the pending stage
func (r *RCARun) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
	}
}

// Report returns the progress revealed so far
func (r *RCARun) Report() models.RCAReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.report()
}

// advance moves one stage forward and schedules the following stage from here,
// so stage N always fires after stage N-1
func (r *RCARun) advance() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped || r.stage >= len(rcaProgress)-1 {
		return
	}
	r.stage++
	r.publish()

	if r.stage < len(rcaProgress)-1 {
		r.timer = r.cfg.Scheduler.AfterFunc(r.cfg.Interval, r.advance)
		return
	}
	r.cfg.Logger.Info("RCA completed", logger.Int("findings", len(r.findings)))
}

func (r *RCARun) report() models.RCAReport {
	revealed := r.stage
	if revealed > len(r.findings) {
		revealed = len(r.findings)
	}
	return models.RCAReport{
		AlertID:  r.cfg.Alert.ID,
		Progress: rcaProgress[r.stage],
		Stage:    r.stage,
		Complete: r.stage == len(rcaProgress)-1,
		Findings: append([]string{}, r.findings[:revealed]...),
	}
}

func (r *RCARun) publish() {
	rep := r.report()
	r.cfg.Logger.Debug("RCA progress", logger.Int("progress", rep.Progress))
	r.cfg.Sink.Publish(Event{Type: EventRCAProgress, AlertID: r.cfg.Alert.ID, RCA: &rep})
}

// Findings derives the three RCA findings of an alert from its catalog fields
func Findings(a models.Alert) []string {
	cause := fmt.Sprintf("Root cause: %s", a.Description)
	exposure := fmt.Sprintf("Exposure: %s in %s (%s severity)", a.Impact, a.Region, a.Severity)

	hotspot := "Affected products: no product-level exposure recorded"
	if len(a.AffectedProducts) > 0 {
		top := a.AffectedProducts[0]
		for _, p := range a.AffectedProducts[1:] {
			if p.ImpactPercentage > top.ImpactPercentage {
				top = p
			}
		}
		hotspot = fmt.Sprintf("Most affected: %s (HSN %s) at %d%% impact", top.Name, top.HSNCode, top.ImpactPercentage)
		if len(top.Routes) > 0 {
			hotspot += fmt.Sprintf(" via %s", strings.Join(top.Routes, ", "))
		}
	}

	return []string{cause, exposure, hotspot}
}
