package export

import (
	"bytes"
	"testing"

	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/dashboard"
	"github.com/davidmoltin/command-center/internal/engine"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func render(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))

	out, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}

func TestDashboardWorkbook(t *testing.T) {
	eng := dashboard.NewEngine(catalog.Default())
	view := eng.View(models.DefaultFilterSelection().Set(models.FacetRegion, catalog.RegionEMEA))

	f, err := DashboardWorkbook(view)
	require.NoError(t, err)
	out := render(t, f)

	assert.Equal(t, []string{SheetKPIs, SheetAlerts, SheetInsights}, out.GetSheetList())

	rows, err := out.GetRows(SheetKPIs)
	require.NoError(t, err)
	require.Len(t, rows, len(models.KPIOrder)+1)
	assert.Equal(t, "Key", rows[0][0])
	assert.Equal(t, models.KPIRevenue, rows[1][0])
	assert.Equal(t, view.KPIs[0].Value, rows[1][2])

	rows, err = out.GetRows(SheetAlerts)
	require.NoError(t, err)
	assert.Len(t, rows, len(view.Alerts)+1)

	rows, err = out.GetRows(SheetInsights)
	require.NoError(t, err)
	assert.Equal(t, []string{"Region", catalog.RegionEMEA}, rows[2])
}

func TestWorkflowWorkbook(t *testing.T) {
	cat := catalog.Default()
	alert, ok := cat.AlertByID("1")
	require.True(t, ok)

	sched := engine.NewManualScheduler()
	seq := engine.NewSequencer(engine.SequencerConfig{
		Name:      "Supplier Diversification",
		Alert:     alert,
		Actions:   cat.ActionsByID("1", []string{"1-1", "1-2"}),
		Scheduler: sched,
		IDs:       engine.NewSequentialIDs("wf"),
		Logger:    logger.NewNop(),
	})
	require.NoError(t, seq.Start())
	sched.Advance(engine.DefaultStartupDelay)
	trace := seq.Trace()

	f, err := WorkflowWorkbook(trace)
	require.NoError(t, err)
	out := render(t, f)

	rows, err := out.GetRows(SheetOrders)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Order ID", rows[0][0])
	assert.Equal(t, trace.Datasets[0].OrderID, rows[1][0])
	assert.Equal(t, trace.Datasets[1].ProductName, rows[2][1])

	rows, err = out.GetRows(SheetChat)
	require.NoError(t, err)
	assert.Len(t, rows, len(trace.Messages)+1)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"dashboard"}, "dashboard.xlsx"},
		{[]string{"dashboard", "EMEA North"}, "dashboard-emea_north.xlsx"},
		{[]string{"workflow", "Motor Oil (2710.19)"}, "workflow-motor_oil_271019.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.parts...))
		})
	}
}
