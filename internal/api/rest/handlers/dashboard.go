package handlers

import (
	"net/http"

	"github.com/davidmoltin/command-center/internal/dashboard"
	"github.com/davidmoltin/command-center/internal/export"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
	"github.com/go-chi/chi/v5"
)

// DashboardHandler serves the stateless dashboard derivations
type DashboardHandler struct {
	logger  *logger.Logger
	engine  *dashboard.Engine
	metrics *metrics.Metrics
}

// NewDashboardHandler creates a new dashboard handler. m may be nil.
func NewDashboardHandler(log *logger.Logger, engine *dashboard.Engine, m *metrics.Metrics) *DashboardHandler {
	return &DashboardHandler{
		logger:  log,
		engine:  engine,
		metrics: m,
	}
}

// queryFacets is ordered so that product and region are applied before their dependents
var queryFacets = []models.Facet{
	models.FacetProduct,
	models.FacetRegion,
	models.FacetPlant,
	models.FacetSKU,
	models.FacetSupplier,
}

// selectionFromQuery builds a selection from query parameters. Missing facets keep their sentinel.
func selectionFromQuery(r *http.Request) models.FilterSelection {
	q := r.URL.Query()
	sel := models.DefaultFilterSelection()

	for _, facet := range queryFacets {
		if v := q.Get(string(facet)); v != "" {
			sel = sel.Set(facet, v)
		}
	}
	return sel
}

// Options handles GET /api/v1/options
func (h *DashboardHandler) Options(w http.ResponseWriter, r *http.Request) {
	sel := selectionFromQuery(r)
	respondJSON(w, http.StatusOK, h.engine.Options(sel.Product, sel.Region))
}

// Dashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.View(selectionFromQuery(r)))
}

// Export handles GET /api/v1/dashboard/export
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	view := h.engine.View(selectionFromQuery(r))
	f, err := export.DashboardWorkbook(view)
	if err == nil {
		h.countExport("dashboard")
	}
	respondWorkbook(w, h.logger, export.Filename("dashboard", view.Filters.Region), f, err)
}

// GetAlert handles GET /api/v1/alerts/{id}
func (h *DashboardHandler) GetAlert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, ok := h.engine.AlertDetail(id)
	if !ok {
		respondError(w, http.StatusNotFound, "alert not found")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

func (h *DashboardHandler) countExport(kind string) {
	if h.metrics != nil {
		h.metrics.ExportsTotal.WithLabelValues(kind).Inc()
	}
}
