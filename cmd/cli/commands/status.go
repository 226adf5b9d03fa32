package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/davidmoltin/command-center/internal/cli"
	"github.com/spf13/cobra"
)

func newStatusCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the Command Center API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := cli.NewClient(env.apiURL())

			if err := client.HealthCheck(cmd.Context()); err != nil {
				return fmt.Errorf("API server at %s is not healthy: %w", env.apiURL(), err)
			}
			ready, err := client.Ready(cmd.Context())
			if err != nil {
				return err
			}

			return env.render(cmd.OutOrStdout(), ready, func(w io.Writer) {
				printReady(w, env.apiURL(), ready)
			})
		},
	}
}

func printReady(w io.Writer, url string, ready *cli.ReadyStatus) {
	fmt.Fprintf(w, "API: %s\n", url)
	fmt.Fprintf(w, "Status: %s\n", ready.Status)
	if ready.Version != "" {
		fmt.Fprintf(w, "Version: %s\n", ready.Version)
	}

	names := make([]string, 0, len(ready.Checks))
	for name := range ready.Checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %s\n", name, ready.Checks[name])
	}
}
