package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/dashboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	cfgFile    string
	apiURL     string
	outputJSON bool
}

// NewRootCmd builds the ccenter command tree
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "ccenter",
		Short: "Supply Chain Command Center CLI",
		Long: `The Command Center CLI explores the supply-chain dashboard, alerts and
scripted workflow simulations from the command line.

Examples:
  ccenter options --product "Motor Oil (2710.19)" --region EMEA
  ccenter dashboard --region APAC
  ccenter alerts list --region EMEA
  ccenter alerts show 1
  ccenter simulate 1 --actions 1-1,1-2
  ccenter rca 6
  ccenter grocery suggestions
  ccenter status`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, opts, cmd.ErrOrStderr())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.ccenter.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "http://localhost:8080", "Command Center API URL")
	rootCmd.PersistentFlags().BoolVar(&opts.outputJSON, "json", false, "Output results in JSON format")

	// Bind flags to viper
	v.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api-url"))
	v.BindPFlag("output.json", rootCmd.PersistentFlags().Lookup("json"))

	env := &cliEnv{viper: v, engine: dashboard.NewEngine(catalog.Default())}

	rootCmd.AddCommand(
		newOptionsCmd(env),
		newDashboardCmd(env),
		newAlertsCmd(env),
		newSimulateCmd(env),
		newRCACmd(env),
		newGroceryCmd(env),
		newStatusCmd(env),
	)

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func initConfig(v *viper.Viper, opts *globalOptions, stderr io.Writer) error {
	if opts.cfgFile != "" {
		// Use config file from the flag
		v.SetConfigFile(opts.cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		// Search config in home directory with name ".ccenter" (without extension)
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".ccenter")
	}

	// Read in environment variables that match
	v.SetEnvPrefix("CCENTER")
	v.AutomaticEnv()

	// If a config file is found, read it in
	if err := v.ReadInConfig(); err == nil {
		if !v.GetBool("output.json") {
			fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
		}
	} else if opts.cfgFile != "" {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// cliEnv is shared by every subcommand
type cliEnv struct {
	viper  *viper.Viper
	engine *dashboard.Engine
}

func (e *cliEnv) jsonOutput() bool {
	return e.viper.GetBool("output.json")
}

func (e *cliEnv) apiURL() string {
	return e.viper.GetString("api.url")
}

// render prints v as JSON when --json is set, otherwise calls text
func (e *cliEnv) render(w io.Writer, v interface{}, text func(io.Writer)) error {
	if e.jsonOutput() {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	text(w)
	return nil
}
