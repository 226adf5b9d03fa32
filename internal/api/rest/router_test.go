package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/davidmoltin/command-center/internal/api/rest/handlers"
	customMiddleware "github.com/davidmoltin/command-center/internal/api/rest/middleware"
	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/dashboard"
	"github.com/davidmoltin/command-center/internal/engine"
	"github.com/davidmoltin/command-center/internal/export"
	"github.com/davidmoltin/command-center/internal/grocery"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/internal/session"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
	"github.com/davidmoltin/command-center/pkg/testutil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type mockHealthChecker struct {
	healthCheckFunc func(ctx context.Context) error
}

func (m *mockHealthChecker) HealthCheck(ctx context.Context) error {
	if m.healthCheckFunc != nil {
		return m.healthCheckFunc(ctx)
	}
	return nil
}

type testServer struct {
	handler http.Handler
	sched   *engine.ManualScheduler
	store   *session.Store
	metrics *metrics.Metrics
	deleted []string
}

func newTestServer(t *testing.T, redis handlers.HealthChecker, limiter *customMiddleware.RateLimiter) *testServer {
	t.Helper()

	log := logger.NewForTesting()
	m, reg := metrics.NewForTesting()
	ts := &testServer{sched: engine.NewManualScheduler(), metrics: m}

	ts.store = session.NewStore(session.Options{
		Scheduler: ts.sched,
		IDs:       engine.NewSequentialIDs("id"),
		Metrics:   m,
		Logger:    log,
	})

	cat := catalog.Default()
	h := handlers.NewHandlers(log, handlers.Dependencies{
		Engine:    dashboard.NewEngine(cat),
		Inventory: grocery.NewInventory(cat.Pantry),
		Sessions:  ts.store,
		Metrics:   m,
		Redis:     redis,
		Version:   "test",
		OnSessionDeleted: func(id string) {
			ts.deleted = append(ts.deleted, id)
		},
	})

	router := NewRouter(log, h, nil, m, Options{
		MaxRequestSize: 1 << 16,
		Limiter:        limiter,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
	router.SetupRoutes()
	ts.handler = router.Handler()
	return ts
}

func (ts *testServer) createSession(t *testing.T) string {
	t.Helper()

	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, "/api/v1/sessions", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusCreated)
	return testutil.DecodeJSON[session.Summary](t, w).ID
}

func TestHealthEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		redis      handlers.HealthChecker
		wantStatus int
		wantRedis  string
	}{
		{"redis disabled", nil, http.StatusOK, "disabled"},
		{"redis healthy", &mockHealthChecker{}, http.StatusOK, "healthy"},
		{
			"redis down",
			&mockHealthChecker{healthCheckFunc: func(ctx context.Context) error { return errors.New("refused") }},
			http.StatusServiceUnavailable,
			"unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.redis, nil)

			w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/health", nil))
			testutil.AssertHTTPStatus(t, w, http.StatusOK)

			w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/ready", nil))
			testutil.AssertHTTPStatus(t, w, tt.wantStatus)
			resp := testutil.DecodeJSON[handlers.HealthResponse](t, w)
			assert.Equal(t, tt.wantRedis, resp.Checks["redis"])
			assert.Equal(t, "test", resp.Version)
		})
	}
}

func TestStatelessDashboard(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	q := url.Values{"product": {catalog.ProductMotorOil}, "region": {catalog.RegionEMEA}}
	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/options?"+q.Encode(), nil))
	testutil.AssertJSONResponse(t, w, http.StatusOK, models.FilterOptions{
		Plants:    []string{models.AllPlants, "Hamburg Blending Plant", "Barcelona Plant"},
		SKUs:      []string{models.AllSKUs, "MO-5W30-001", "MO-10W40-002"},
		Suppliers: []string{models.AllSuppliers, "Shell Base Oils", "Infineum"},
	})

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/dashboard?"+q.Encode(), nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	view := testutil.DecodeJSON[models.DashboardView](t, w)
	assert.Equal(t, catalog.ProductMotorOil, view.Filters.Product)
	assert.Equal(t, models.AllPlants, view.Filters.Plant)
	assert.NotEmpty(t, view.KPIs)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/alerts/1", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	detail := testutil.DecodeJSON[models.AlertDetail](t, w)
	assert.Equal(t, "1", detail.Alert.ID)
	assert.NotEmpty(t, detail.Actions)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/alerts/404", nil))
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "alert not found")
}

func TestGroceryEndpoints(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/grocery/inventory?category=Dairy", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	inv := testutil.DecodeJSON[handlers.InventoryResponse](t, w)
	assert.Equal(t, []string{"Dairy", "Produce", "Bakery", "Pantry", "Beverages"}, inv.Categories)
	assert.Len(t, inv.Items, 3)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/grocery/suggestions", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	sugg := testutil.DecodeJSON[map[string][]models.InventoryItem](t, w)
	require.Len(t, sugg["items"], 4)
	assert.Equal(t, "inv-1", sugg["items"][0].ID)
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	id := ts.createSession(t)
	assert.Equal(t, "id-1", id)

	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/sessions/"+id, nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	assert.Equal(t, models.DefaultFilterSelection(), testutil.DecodeJSON[session.Summary](t, w).Filters)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodDelete, "/api/v1/sessions/"+id, nil))
	testutil.AssertHTTPStatus(t, w, http.StatusNoContent)
	assert.Equal(t, []string{id}, ts.deleted)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/sessions/"+id, nil))
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "session not found")

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodDelete, "/api/v1/sessions/"+id, nil))
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "session not found")
}

func TestSessionFilters(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	id := ts.createSession(t)
	path := "/api/v1/sessions/" + id + "/filters"

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantErr    string
	}{
		{"set product", handlers.SetFilterRequest{Facet: "product", Value: catalog.ProductMotorOil}, http.StatusOK, ""},
		{"set plant", handlers.SetFilterRequest{Facet: "plant", Value: "Hamburg Blending Plant"}, http.StatusOK, ""},
		{"unknown facet", handlers.SetFilterRequest{Facet: "colour", Value: "red"}, http.StatusBadRequest, "Facet must be a filter facet"},
		{"blank value", handlers.SetFilterRequest{Facet: "region", Value: " "}, http.StatusBadRequest, "Value must not be blank"},
		{"missing facet", map[string]string{"value": "EMEA"}, http.StatusBadRequest, "Facet is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPut, path, tt.body))
			if tt.wantErr != "" {
				testutil.AssertErrorResponse(t, w, tt.wantStatus, tt.wantErr)
				return
			}
			testutil.AssertHTTPStatus(t, w, tt.wantStatus)
		})
	}

	// Region change cascades to the plant
	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPut, path,
		handlers.SetFilterRequest{Facet: "region", Value: catalog.RegionEMEA}))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	view := testutil.DecodeJSON[models.DashboardView](t, w)
	assert.Equal(t, catalog.ProductMotorOil, view.Filters.Product)
	assert.Equal(t, catalog.RegionEMEA, view.Filters.Region)
	assert.Equal(t, models.AllPlants, view.Filters.Plant)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/sessions/"+id+"/dashboard", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	assert.Equal(t, view, testutil.DecodeJSON[models.DashboardView](t, w))
}

func TestWorkflowFlow(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	id := ts.createSession(t)
	base := "/api/v1/sessions/" + id + "/workflows"

	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, base, handlers.CreateWorkflowRequest{
		AlertID:     "1",
		Name:        "Supplier Diversification",
		Description: "Secure alternative base oil supply",
		ActionIDs:   []string{"1-1"},
	}))
	testutil.AssertHTTPStatus(t, w, http.StatusAccepted)
	trace := testutil.DecodeJSON[models.WorkflowTrace](t, w)
	assert.Equal(t, models.WorkflowStateIdle, trace.State)
	wf := base + "/" + trace.ID

	// Follow-ups are rejected until the run completes
	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, wf+"/messages", handlers.SendMessageRequest{Content: "status?"}))
	testutil.AssertErrorResponse(t, w, http.StatusConflict, "")

	ts.sched.Advance(engine.DefaultStartupDelay)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, wf, nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	trace = testutil.DecodeJSON[models.WorkflowTrace](t, w)
	assert.Equal(t, models.WorkflowStateCompleted, trace.State)
	require.Len(t, trace.Messages, 8)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, wf+"/messages", handlers.SendMessageRequest{Content: "status?"}))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	trace = testutil.DecodeJSON[models.WorkflowTrace](t, w)
	require.Len(t, trace.Messages, 10)
	assert.Equal(t, "status?", trace.Messages[8].Content)
	assert.Equal(t, 1.0, promtestutil.ToFloat64(ts.metrics.WorkflowMessages.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(ts.metrics.WorkflowMessages.WithLabelValues("rejected")))

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, wf+"/voice", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	assert.Equal(t, "warning", testutil.DecodeJSON[models.Notification](t, w).Level)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodDelete, wf, nil))
	testutil.AssertHTTPStatus(t, w, http.StatusNoContent)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, wf, nil))
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "workflow not found")
}

func TestExports(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/dashboard/export?region=EMEA", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "dashboard-emea.xlsx")

	book, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	rows, err := book.GetRows(export.SheetKPIs)
	require.NoError(t, err)
	assert.Len(t, rows, len(models.KPIOrder)+1)
	book.Close()

	id := ts.createSession(t)
	base := "/api/v1/sessions/" + id + "/workflows"
	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, base, handlers.CreateWorkflowRequest{
		AlertID:   "1",
		Name:      "Supplier Diversification",
		ActionIDs: []string{"1-1", "1-2"},
	}))
	testutil.AssertHTTPStatus(t, w, http.StatusAccepted)
	wf := base + "/" + testutil.DecodeJSON[models.WorkflowTrace](t, w).ID + "/export"

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, wf, nil))
	testutil.AssertErrorResponse(t, w, http.StatusConflict, "")

	ts.sched.Advance(engine.DefaultStartupDelay)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, wf, nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)

	book, err = excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer book.Close()
	rows, err = book.GetRows(export.SheetOrders)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, base+"/nope/export", nil))
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "workflow not found")

	assert.Equal(t, 1.0, promtestutil.ToFloat64(ts.metrics.ExportsTotal.WithLabelValues("dashboard")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(ts.metrics.ExportsTotal.WithLabelValues("workflow")))
}

func TestWorkflowCreateErrors(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	id := ts.createSession(t)
	base := "/api/v1/sessions/" + id + "/workflows"

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantErr    string
	}{
		{"unknown alert", handlers.CreateWorkflowRequest{AlertID: "404", Name: "wf", ActionIDs: []string{"1-1"}}, http.StatusNotFound, "alert not found"},
		{"actions of another alert", handlers.CreateWorkflowRequest{AlertID: "1", Name: "wf", ActionIDs: []string{"2-1"}}, http.StatusBadRequest, "no known actions"},
		{"no actions", handlers.CreateWorkflowRequest{AlertID: "1", Name: "wf"}, http.StatusBadRequest, "ActionIDs is required"},
		{"missing name", handlers.CreateWorkflowRequest{AlertID: "1", ActionIDs: []string{"1-1"}}, http.StatusBadRequest, "Name must not be blank"},
		{"malformed body", "not an object", http.StatusBadRequest, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, base, tt.body))
			testutil.AssertErrorResponse(t, w, tt.wantStatus, tt.wantErr)
		})
	}

	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, "/api/v1/sessions/nope/workflows", handlers.CreateWorkflowRequest{}))
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "session not found")
}

func TestRCAFlow(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	id := ts.createSession(t)
	path := "/api/v1/sessions/" + id + "/alerts/6/rca"

	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, path, nil))
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "rca not started")

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, path, nil))
	testutil.AssertHTTPStatus(t, w, http.StatusCreated)
	assert.Equal(t, 0, testutil.DecodeJSON[models.RCAReport](t, w).Progress)

	ts.sched.Advance(engine.DefaultRCAStageInterval)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, path, nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	rep := testutil.DecodeJSON[models.RCAReport](t, w)
	assert.Equal(t, 33, rep.Progress)
	assert.Len(t, rep.Findings, 1)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, "/api/v1/sessions/"+id+"/alerts/404/rca", nil))
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "alert not found")
}

func TestCartFlow(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	id := ts.createSession(t)
	items := "/api/v1/sessions/" + id + "/cart/items"

	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, items, handlers.AddItemRequest{InventoryID: "inv-1"}))
	testutil.AssertHTTPStatus(t, w, http.StatusCreated)
	added := testutil.DecodeJSON[handlers.AddItemResponse](t, w)
	assert.Equal(t, "Whole Milk", added.Item.Name)
	assert.Equal(t, 1, added.Item.Quantity)

	// Adding the same name merges into the existing line
	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, items, handlers.AddItemRequest{InventoryID: "inv-1"}))
	testutil.AssertHTTPStatus(t, w, http.StatusCreated)
	merged := testutil.DecodeJSON[handlers.AddItemResponse](t, w)
	assert.Equal(t, added.Item.ID, merged.Item.ID)
	assert.Equal(t, 2, merged.Cart.TotalItems)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPost, items, handlers.AddItemRequest{Name: "Eggs", Category: "Dairy", Price: 2.5}))
	testutil.AssertHTTPStatus(t, w, http.StatusCreated)
	eggs := testutil.DecodeJSON[handlers.AddItemResponse](t, w).Item

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodPatch, items+"/"+added.Item.ID, handlers.UpdateItemRequest{Delta: -5}))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	cart := testutil.DecodeJSON[models.CartSummary](t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Eggs", cart.Items[0].Name)
	assert.Equal(t, 2.5, cart.TotalCost)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodDelete, items+"/"+eggs.ID, nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	assert.Empty(t, testutil.DecodeJSON[models.CartSummary](t, w).Items)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/sessions/"+id+"/cart", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	assert.Equal(t, 0, testutil.DecodeJSON[models.CartSummary](t, w).TotalItems)
	assert.Equal(t, 3.0, promtestutil.ToFloat64(ts.metrics.CartOperations.WithLabelValues("add")))
}

func TestCartErrors(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	id := ts.createSession(t)
	items := "/api/v1/sessions/" + id + "/cart/items"

	tests := []struct {
		name       string
		method     string
		target     string
		body       interface{}
		wantStatus int
		wantErr    string
	}{
		{"unknown inventory item", http.MethodPost, items, handlers.AddItemRequest{InventoryID: "inv-99"}, http.StatusNotFound, "item not found"},
		{"empty item", http.MethodPost, items, handlers.AddItemRequest{}, http.StatusBadRequest, "is required when"},
		{"negative price", http.MethodPost, items, handlers.AddItemRequest{Name: "Eggs", Price: -1}, http.StatusBadRequest, "Price"},
		{"unknown line", http.MethodPatch, items + "/nope", handlers.UpdateItemRequest{Delta: 1}, http.StatusNotFound, "item not found"},
		{"zero delta", http.MethodPatch, items + "/nope", handlers.UpdateItemRequest{}, http.StatusBadRequest, "Delta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, tt.method, tt.target, tt.body))
			testutil.AssertErrorResponse(t, w, tt.wantStatus, tt.wantErr)
		})
	}
}

func TestRateLimitedAPI(t *testing.T) {
	ts := newTestServer(t, nil, customMiddleware.NewRateLimiter(0.001, 1, logger.NewForTesting()))

	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/grocery/suggestions", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)

	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/api/v1/grocery/suggestions", nil))
	testutil.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Rate limit exceeded")

	// Health checks are outside the limited group
	w = testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/health", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	ts.createSession(t)

	w := testutil.Serve(t, ts.handler, testutil.MakeJSONRequest(t, http.MethodGet, "/metrics", nil))
	testutil.AssertHTTPStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "sessions_active")
}
