package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/davidmoltin/command-center/internal/export"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

func newDashboardCmd(env *cliEnv) *cobra.Command {
	var filters filterFlags
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show KPIs, alerts and insights for a selection",
		Long: `Show the dashboard derived from a filter selection.

Examples:
  ccenter dashboard
  ccenter dashboard --product "Additives (3811.21)" --region Americas
  ccenter dashboard --region EMEA --json
  ccenter dashboard --region APAC --xlsx apac.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := env.engine.View(filters.selection())
			if xlsxPath != "" {
				book, err := export.DashboardWorkbook(view)
				if err != nil {
					return err
				}
				if err := saveWorkbook(cmd.ErrOrStderr(), xlsxPath, book); err != nil {
					return err
				}
			}
			return env.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				printDashboard(w, view)
			})
		},
	}

	filters.register(cmd, true)
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the dashboard to an Excel workbook")
	return cmd
}

func saveWorkbook(stderr io.Writer, path string, f *excelize.File) error {
	if err := export.Save(path, f); err != nil {
		return err
	}
	fmt.Fprintln(stderr, "Wrote", path)
	return nil
}

func printDashboard(w io.Writer, view models.DashboardView) {
	sel := view.Filters
	fmt.Fprintf(w, "Selection: %s / %s / %s\n\n", sel.Product, sel.Region, sel.Plant)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KPI\tVALUE\tTREND")
	for _, k := range view.KPIs {
		fmt.Fprintf(tw, "%s\t%s%s\t%s %s\n", k.Title, k.Value, k.Unit, k.Trend, k.TrendValue)
	}
	tw.Flush()

	fmt.Fprintln(w)
	printAlerts(w, view.Alerts)

	fmt.Fprintf(w, "\n%s\n%s\n", view.Insights.Title, view.Insights.Summary)
	for _, f := range view.Insights.KeyFindings {
		fmt.Fprintf(w, "  - %s\n", f)
	}
}
