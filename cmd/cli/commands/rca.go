package commands

import (
	"fmt"
	"io"

	"github.com/davidmoltin/command-center/internal/engine"
	"github.com/spf13/cobra"
)

type rcaOutput struct {
	AlertID  string   `json:"alert_id"`
	Title    string   `json:"title"`
	Findings []string `json:"findings"`
}

func newRCACmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "rca <alert-id>",
		Short: "Show the root-cause findings for an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alert, ok := env.engine.Catalog().AlertByID(args[0])
			if !ok {
				return fmt.Errorf("alert %q not found", args[0])
			}
			out := rcaOutput{
				AlertID:  alert.ID,
				Title:    alert.Title,
				Findings: engine.Findings(alert),
			}
			return env.render(cmd.OutOrStdout(), out, func(w io.Writer) {
				fmt.Fprintf(w, "Root cause analysis for alert %s: %s\n", out.AlertID, out.Title)
				for i, f := range out.Findings {
					fmt.Fprintf(w, "  %d. %s\n", i+1, f)
				}
			})
		},
	}
}
