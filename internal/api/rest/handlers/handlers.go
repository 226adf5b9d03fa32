package handlers

import (
	"github.com/davidmoltin/command-center/internal/dashboard"
	"github.com/davidmoltin/command-center/internal/grocery"
	"github.com/davidmoltin/command-center/internal/session"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
)

// Handlers aggregates all HTTP handlers
type Handlers struct {
	Health    *HealthHandler
	Dashboard *DashboardHandler
	Grocery   *GroceryHandler
	Session   *SessionHandler
	Workflow  *WorkflowHandler
	Cart      *CartHandler
}

// Dependencies holds everything the handlers need
type Dependencies struct {
	Engine    *dashboard.Engine
	Inventory *grocery.Inventory
	Sessions  *session.Store
	Metrics   *metrics.Metrics

	// Redis is nil when cross-instance fan-out is disabled
	Redis   HealthChecker
	Version string

	// OnSessionDeleted is called after an explicit session delete
	OnSessionDeleted func(sessionID string)
}

// NewHandlers creates a new handlers instance
func NewHandlers(log *logger.Logger, deps Dependencies) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(log, deps.Redis, deps.Version),
		Dashboard: NewDashboardHandler(log, deps.Engine, deps.Metrics),
		Grocery:   NewGroceryHandler(log, deps.Inventory),
		Session:   NewSessionHandler(log, deps.Sessions, deps.Engine, deps.OnSessionDeleted),
		Workflow:  NewWorkflowHandler(log, deps.Sessions, deps.Metrics),
		Cart:      NewCartHandler(log, deps.Sessions, deps.Inventory, deps.Metrics),
	}
}
