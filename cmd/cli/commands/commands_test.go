package commands

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davidmoltin/command-center/internal/api/rest"
	"github.com/davidmoltin/command-center/internal/api/rest/handlers"
	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/dashboard"
	"github.com/davidmoltin/command-center/internal/export"
	"github.com/davidmoltin/command-center/internal/grocery"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/internal/session"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func runJSON(t *testing.T, v interface{}, args ...string) {
	t.Helper()
	out, err := run(t, append(args, "--json")...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

func newTestAPI(t *testing.T) string {
	t.Helper()

	log := logger.NewForTesting()
	m, _ := metrics.NewForTesting()
	cat := catalog.Default()

	store := session.NewStore(session.Options{
		StartupDelay: time.Millisecond,
		Metrics:      m,
		Logger:       log,
	})
	t.Cleanup(store.CloseAll)

	h := handlers.NewHandlers(log, handlers.Dependencies{
		Engine:    dashboard.NewEngine(cat),
		Inventory: grocery.NewInventory(cat.Pantry),
		Sessions:  store,
		Metrics:   m,
		Version:   "test",
	})
	router := rest.NewRouter(log, h, nil, m, rest.Options{})
	router.SetupRoutes()

	srv := httptest.NewServer(router.Handler())
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestOptionsCommand(t *testing.T) {
	var opts models.FilterOptions
	runJSON(t, &opts, "options", "--product", catalog.ProductMotorOil, "--region", catalog.RegionEMEA)

	require.NotEmpty(t, opts.Plants)
	assert.Equal(t, models.AllPlants, opts.Plants[0])
	assert.Contains(t, opts.Plants, "Hamburg Blending Plant")

	out, err := run(t, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "Plants:")
	assert.Contains(t, out, "Suppliers:")
}

func TestDashboardCommand(t *testing.T) {
	var view models.DashboardView
	runJSON(t, &view, "dashboard", "--region", catalog.RegionEMEA)

	assert.Equal(t, catalog.RegionEMEA, view.Filters.Region)
	assert.Len(t, view.KPIs, len(models.KPIOrder))

	want := dashboard.NewEngine(catalog.Default()).Alerts(view.Filters)
	require.NotEmpty(t, want)
	assert.Len(t, view.Alerts, len(want))
}

func TestAlertsCommands(t *testing.T) {
	var alerts []models.Alert
	runJSON(t, &alerts, "alerts", "list")
	assert.Len(t, alerts, len(catalog.Default().Alerts))

	out, err := run(t, "alerts", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Red Sea Shipping Disruption")

	_, err = run(t, "alerts", "show", "404")
	assert.ErrorContains(t, err, `alert "404" not found`)
}

func TestRCACommand(t *testing.T) {
	var out rcaOutput
	runJSON(t, &out, "rca", "6")
	assert.Equal(t, "6", out.AlertID)
	assert.Len(t, out.Findings, 3)

	_, err := run(t, "rca", "404")
	assert.Error(t, err)
}

func TestGroceryCommands(t *testing.T) {
	var items []models.InventoryItem
	runJSON(t, &items, "grocery", "inventory", "--category", catalog.CategoryDairy)
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, catalog.CategoryDairy, it.Category)
	}

	var suggestions []models.InventoryItem
	runJSON(t, &suggestions, "grocery", "suggestions")
	ids := make([]string, 0, len(suggestions))
	for _, it := range suggestions {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"inv-1", "inv-5", "inv-8", "inv-10"}, ids)

	out, err := run(t, "grocery", "inventory")
	require.NoError(t, err)
	assert.Contains(t, out, "Sparkling Water")
}

func TestSimulateLocal(t *testing.T) {
	var trace models.WorkflowTrace
	runJSON(t, &trace, "simulate", "1", "--actions", "1-1,1-2", "--name", "Supplier Diversification")

	assert.Equal(t, models.WorkflowStateCompleted, trace.State)
	assert.Equal(t, "Supplier Diversification", trace.Name)
	assert.Len(t, trace.Datasets, 2)

	runJSON(t, &trace, "simulate", "1", "--actions", "1-1", "--message", "Any delays?")
	assert.Len(t, trace.Messages, 10)
	assert.Equal(t, "Any delays?", trace.Messages[8].Content)

	out, err := run(t, "simulate", "1", "--actions", "1-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Agent log:")
	assert.Contains(t, out, "completed")
}

func TestSimulateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown alert", []string{"simulate", "404", "--actions", "1-1"}, `alert "404" not found`},
		{"foreign actions", []string{"simulate", "1", "--actions", "2-1"}, "none of"},
		{"missing actions", []string{"simulate", "1"}, "actions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSimulateRealtime(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the real startup delay")
	}

	out, err := run(t, "simulate", "3", "--actions", "3-1", "--realtime", "--timeout", "10s")
	require.NoError(t, err)
	assert.Contains(t, out, "state: processing")
	assert.Contains(t, out, "state: completed")
}

func TestSimulateRemote(t *testing.T) {
	url := newTestAPI(t)

	var trace models.WorkflowTrace
	runJSON(t, &trace, "simulate", "1", "--actions", "1-1", "--remote", "--api-url", url, "--message", "Status?")

	assert.Equal(t, models.WorkflowStateCompleted, trace.State)
	assert.Len(t, trace.Messages, 10)
}

func TestStatusCommand(t *testing.T) {
	url := newTestAPI(t)

	var ready map[string]interface{}
	runJSON(t, &ready, "status", "--api-url", url)
	assert.Equal(t, "ready", ready["status"])
	assert.Equal(t, "test", ready["version"])

	_, err := run(t, "status", "--api-url", "http://127.0.0.1:1")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	url := newTestAPI(t)

	cfg := filepath.Join(t.TempDir(), "ccenter.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("api:\n  url: "+url+"\noutput:\n  json: true\n"), 0o600))

	out, err := run(t, "status", "--config", cfg)
	require.NoError(t, err)

	var ready map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &ready), out)
	assert.Equal(t, "ready", ready["status"])

	_, err = run(t, "status", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestXLSXExports(t *testing.T) {
	dir := t.TempDir()
	dash := filepath.Join(dir, "dashboard.xlsx")
	orders := filepath.Join(dir, "orders.xlsx")

	_, err := run(t, "dashboard", "--region", catalog.RegionEMEA, "--xlsx", dash)
	require.NoError(t, err)
	_, err = run(t, "simulate", "1", "--actions", "1-1,1-2", "--xlsx", orders)
	require.NoError(t, err)

	book, err := excelize.OpenFile(dash)
	require.NoError(t, err)
	defer book.Close()
	assert.Equal(t, []string{export.SheetKPIs, export.SheetAlerts, export.SheetInsights}, book.GetSheetList())

	book, err = excelize.OpenFile(orders)
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(export.SheetOrders)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
