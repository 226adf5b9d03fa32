package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/davidmoltin/command-center/internal/models"
	"github.com/spf13/cobra"
)

func newAlertsCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List and inspect supply-chain alerts",
	}

	cmd.AddCommand(newAlertsListCmd(env), newAlertsShowCmd(env))
	return cmd
}

func newAlertsListCmd(env *cliEnv) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts matching a selection",
		Long: `List alerts matching a product, region and plant selection.

Examples:
  ccenter alerts list
  ccenter alerts list --region EMEA
  ccenter alerts list --product "Motor Oil (2710.19)" --plant "Hamburg Blending Plant"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alerts := env.engine.Alerts(filters.selection())
			return env.render(cmd.OutOrStdout(), alerts, func(w io.Writer) {
				printAlerts(w, alerts)
			})
		},
	}

	filters.register(cmd, true)
	return cmd
}

func newAlertsShowCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "show <alert-id>",
		Short: "Show an alert with its recommended actions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, ok := env.engine.AlertDetail(args[0])
			if !ok {
				return fmt.Errorf("alert %q not found", args[0])
			}
			return env.render(cmd.OutOrStdout(), detail, func(w io.Writer) {
				printAlertDetail(w, detail)
			})
		},
	}
}

func printAlerts(w io.Writer, alerts []models.Alert) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "No alerts match the selection.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSEVERITY\tREGION\tTITLE")
	for _, a := range alerts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.ID, a.Severity, a.Region, a.Title)
	}
	tw.Flush()
}

func printAlertDetail(w io.Writer, detail models.AlertDetail) {
	a := detail.Alert
	fmt.Fprintf(w, "[%s] %s (%s)\n", a.ID, a.Title, a.Severity)
	fmt.Fprintf(w, "%s\n", a.Description)
	fmt.Fprintf(w, "Impact: %s\nRegion: %s\nDetected: %s\n", a.Impact, a.Region, a.TimeDetected)

	for _, p := range a.AffectedProducts {
		fmt.Fprintf(w, "  Product: %s (HSN %s) %v\n", p.Name, p.HSNCode, p.SKUs)
	}

	if len(detail.Actions) == 0 {
		return
	}

	fmt.Fprintln(w, "\nRecommended actions:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tACTION\tCOST\tCONFIDENCE\tTIMELINE")
	for _, act := range detail.Actions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\n", act.ID, act.Action, act.Cost, act.Confidence, act.Timeline)
	}
	tw.Flush()
}
