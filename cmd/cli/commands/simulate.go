package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/davidmoltin/command-center/internal/cli"
	"github.com/davidmoltin/command-center/internal/engine"
	"github.com/davidmoltin/command-center/internal/export"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	actions     []string
	name        string
	description string
	message     string
	realtime    bool
	remote      bool
	xlsxPath    string
	timeout     time.Duration
}

func newSimulateCmd(env *cliEnv) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate <alert-id>",
		Short: "Run the scripted workflow for an alert's recommended actions",
		Long: `Run the scripted agent workflow for selected recommended actions of an alert.

By default the run is simulated in-process with virtual time and the final trace
is printed. --realtime replays it with real delays and streams each event.
--remote runs it on a Command Center API server instead.

Examples:
  ccenter simulate 1 --actions 1-1
  ccenter simulate 1 --actions 1-1,1-2 --message "Any delays?"
  ccenter simulate 3 --actions 3-1 --realtime
  ccenter simulate 1 --actions 1-1 --remote --api-url http://localhost:8080`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alertID := args[0]
			if opts.name == "" {
				opts.name = "Workflow for alert " + alertID
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			var (
				trace models.WorkflowTrace
				err   error
			)
			if opts.remote {
				trace, err = simulateRemote(ctx, env.apiURL(), alertID, opts)
			} else {
				trace, err = simulateLocal(ctx, env, cmd.OutOrStdout(), alertID, opts)
			}
			if err != nil {
				return err
			}
			if opts.xlsxPath != "" {
				book, err := export.WorkflowWorkbook(trace)
				if err != nil {
					return err
				}
				if err := saveWorkbook(cmd.ErrOrStderr(), opts.xlsxPath, book); err != nil {
					return err
				}
			}

			return env.render(cmd.OutOrStdout(), trace, func(w io.Writer) {
				printTrace(w, trace)
			})
		},
	}

	cmd.Flags().StringSliceVar(&opts.actions, "actions", nil, "Recommended action ids to execute (required)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Workflow name")
	cmd.Flags().StringVar(&opts.description, "description", "", "Workflow description")
	cmd.Flags().StringVar(&opts.message, "message", "", "Follow-up chat message sent after completion")
	cmd.Flags().BoolVar(&opts.realtime, "realtime", false, "Replay with real delays and stream events")
	cmd.Flags().BoolVar(&opts.remote, "remote", false, "Run on the API server given by --api-url")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "Also write the purchase orders to an Excel workbook")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Maximum time to wait for completion")
	cmd.MarkFlagRequired("actions")

	return cmd
}

func simulateLocal(ctx context.Context, env *cliEnv, out io.Writer, alertID string, opts *simulateOptions) (models.WorkflowTrace, error) {
	cat := env.engine.Catalog()

	alert, ok := cat.AlertByID(alertID)
	if !ok {
		return models.WorkflowTrace{}, fmt.Errorf("alert %q not found", alertID)
	}
	actions := cat.ActionsByID(alertID, opts.actions)
	if len(actions) == 0 {
		return models.WorkflowTrace{}, fmt.Errorf("none of %v are actions of alert %s", opts.actions, alertID)
	}

	cfg := engine.SequencerConfig{
		Name:        opts.name,
		Description: opts.description,
		Alert:       alert,
		Actions:     actions,
		Logger:      logger.NewNop(),
	}

	done := make(chan struct{})
	var once sync.Once
	var manual *engine.ManualScheduler
	if opts.realtime {
		stream := !env.jsonOutput()
		cfg.Sink = engine.SinkFunc(func(e engine.Event) {
			if stream {
				printEvent(out, e)
			}
			if e.Type == engine.EventStateChanged && e.State == models.WorkflowStateCompleted {
				once.Do(func() { close(done) })
			}
		})
	} else {
		manual = engine.NewManualScheduler()
		cfg.Scheduler = manual
	}

	seq := engine.NewSequencer(cfg)
	defer seq.Stop()

	if err := seq.Start(); err != nil {
		return models.WorkflowTrace{}, err
	}

	if manual != nil {
		manual.Advance(engine.DefaultStartupDelay)
	} else {
		select {
		case <-done:
		case <-ctx.Done():
			return models.WorkflowTrace{}, fmt.Errorf("workflow did not complete: %w", ctx.Err())
		}
	}

	if opts.message != "" {
		if err := seq.SendMessage(opts.message); err != nil {
			return models.WorkflowTrace{}, err
		}
	}
	return seq.Trace(), nil
}

func simulateRemote(ctx context.Context, apiURL, alertID string, opts *simulateOptions) (models.WorkflowTrace, error) {
	client := cli.NewClient(apiURL)

	if err := client.HealthCheck(ctx); err != nil {
		return models.WorkflowTrace{}, fmt.Errorf("%w (is the API server running at %s?)", err, apiURL)
	}

	sessionID, err := client.CreateSession(ctx)
	if err != nil {
		return models.WorkflowTrace{}, err
	}
	defer client.DeleteSession(context.Background(), sessionID)

	started, err := client.StartWorkflow(ctx, sessionID, cli.WorkflowRequest{
		AlertID:     alertID,
		Name:        opts.name,
		Description: opts.description,
		ActionIDs:   opts.actions,
	})
	if err != nil {
		return models.WorkflowTrace{}, err
	}

	trace, err := client.WaitForWorkflow(ctx, sessionID, started.ID, 250*time.Millisecond)
	if err != nil {
		return models.WorkflowTrace{}, err
	}

	if opts.message != "" {
		if trace, err = client.SendMessage(ctx, sessionID, started.ID, opts.message); err != nil {
			return models.WorkflowTrace{}, err
		}
	}
	return *trace, nil
}

func printEvent(w io.Writer, e engine.Event) {
	switch {
	case e.Action != nil:
		fmt.Fprintf(w, "[%s] %s: %s\n", e.Action.Status, e.Action.AgentType, e.Action.Title)
	case e.Message != nil:
		fmt.Fprintf(w, "  %s\n", firstLine(e.Message.Content))
	case e.Type == engine.EventStateChanged:
		fmt.Fprintf(w, "state: %s\n", e.State)
	}
}

func printTrace(w io.Writer, trace models.WorkflowTrace) {
	fmt.Fprintf(w, "Workflow %s (%s) for alert %s: %s\n", trace.Name, trace.ID, trace.AlertID, trace.State)

	fmt.Fprintln(w, "\nAgent log:")
	for _, a := range trace.AgentActions {
		fmt.Fprintf(w, "  [%s] %-12s %s\n", a.Status, a.AgentType, a.Title)
		for _, o := range a.Outputs {
			fmt.Fprintf(w, "      %s\n", o)
		}
	}

	fmt.Fprintln(w, "\nChat:")
	for _, m := range trace.Messages {
		who := string(m.Type)
		if m.Agent != "" {
			who = string(m.Agent)
		}
		for i, line := range strings.Split(m.Content, "\n") {
			if i == 0 {
				fmt.Fprintf(w, "  %-12s %s\n", who+":", line)
			} else {
				fmt.Fprintf(w, "  %-12s %s\n", "", line)
			}
		}
	}
}

func firstLine(s string) string {
	first, _, _ := strings.Cut(s, "\n")
	return first
}
