// Package export renders dashboard views and workflow purchase orders as Excel workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/davidmoltin/command-center/internal/models"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the workbooks written by this package
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names
const (
	SheetKPIs     = "KPIs"
	SheetAlerts   = "Alerts"
	SheetInsights = "Insights"
	SheetOrders   = "Purchase Orders"
	SheetChat     = "Chat"
)

// table is one sheet: a bold header row followed by data rows
type table struct {
	name   string
	header []string
	rows   [][]interface{}
}

// DashboardWorkbook builds a workbook with the KPIs, alerts and insights of a view
func DashboardWorkbook(view models.DashboardView) (*excelize.File, error) {
	sel := view.Filters

	kpis := table{name: SheetKPIs, header: []string{"Key", "Title", "Value", "Unit", "Trend", "Change"}}
	for _, k := range view.KPIs {
		kpis.rows = append(kpis.rows, []interface{}{k.Key, k.Title, k.Value, k.Unit, string(k.Trend), k.TrendValue})
	}

	alerts := table{name: SheetAlerts, header: []string{"ID", "Severity", "Title", "Region", "Impact", "Detected"}}
	for _, a := range view.Alerts {
		alerts.rows = append(alerts.rows, []interface{}{a.ID, string(a.Severity), a.Title, a.Region, a.Impact, a.TimeDetected})
	}

	insights := table{name: SheetInsights, header: []string{"Field", "Value"}}
	insights.rows = append(insights.rows,
		[]interface{}{"Product", sel.Product},
		[]interface{}{"Region", sel.Region},
		[]interface{}{"Plant", sel.Plant},
		[]interface{}{"Title", view.Insights.Title},
		[]interface{}{"Summary", view.Insights.Summary},
		[]interface{}{"Confidence", view.Insights.Confidence},
	)
	for _, f := range view.Insights.KeyFindings {
		insights.rows = append(insights.rows, []interface{}{"Finding", f})
	}
	for _, r := range view.Insights.Recommendations {
		insights.rows = append(insights.rows, []interface{}{"Recommendation", r})
	}

	return build(kpis, alerts, insights)
}

// WorkflowWorkbook builds a workbook with the purchase orders and chat of a workflow run
func WorkflowWorkbook(trace models.WorkflowTrace) (*excelize.File, error) {
	orders := table{name: SheetOrders, header: []string{
		"Order ID", "Product", "HSN", "SKU", "Secondary SKU", "Required Qty", "Short Item", "Covered Item",
	}}
	for _, ds := range trace.Datasets {
		orders.rows = append(orders.rows, []interface{}{
			ds.OrderID, ds.ProductName, ds.ProductHSN, ds.ProductSKU, ds.SecondarySKU,
			ds.RequiredQty, ds.InsufficientItem, ds.SufficientItem,
		})
	}

	chat := table{name: SheetChat, header: []string{"Time", "Type", "Agent", "Content"}}
	for _, m := range trace.Messages {
		chat.rows = append(chat.rows, []interface{}{
			m.Timestamp.UTC().Format("2006-01-02 15:04:05"), string(m.Type), string(m.Agent), m.Content,
		})
	}

	return build(orders, chat)
}

// Write renders a workbook to w and closes it
func Write(w io.Writer, f *excelize.File) error {
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Save writes a workbook to path and closes it
func Save(path string, f *excelize.File) error {
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Filename returns a download name such as "dashboard-emea.xlsx"
func Filename(parts ...string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('-')
		}
		for _, r := range strings.ToLower(p) {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
				b.WriteRune(r)
			case r == ' ' || r == '-' || r == '_':
				b.WriteByte('_')
			}
		}
	}
	return b.String() + ".xlsx"
}

func build(tables ...table) (*excelize.File, error) {
	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, t := range tables {
		if i == 0 {
			err = f.SetSheetName("Sheet1", t.name)
		} else {
			_, err = f.NewSheet(t.name)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", t.name, err)
		}

		if err := writeTable(f, t, bold); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to fill sheet %s: %w", t.name, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeTable(f *excelize.File, t table, headerStyle int) error {
	header := make([]interface{}, len(t.header))
	for i, h := range t.header {
		header[i] = h
	}
	if err := f.SetSheetRow(t.name, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(t.name, 1, 1, headerStyle); err != nil {
		return err
	}

	for i, row := range t.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.name, cell, &row); err != nil {
			return err
		}
	}

	last, err := excelize.ColumnNumberToName(len(t.header))
	if err != nil {
		return err
	}
	return f.SetColWidth(t.name, "A", last, 18)
}
