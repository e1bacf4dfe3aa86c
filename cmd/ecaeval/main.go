package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eca-density/internal/config"
	_ "eca-density/internal/rules/constant"
	_ "eca-density/internal/rules/elementary"
	_ "eca-density/internal/rules/gkl"
	_ "eca-density/internal/rules/majority"
	_ "eca-density/internal/rules/parity"
	_ "eca-density/internal/rules/table"
)

var version = "0.1.0-dev"

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	set        map[string]string
}

// load builds the configuration: defaults, then --config, then --set, then
// --log-level.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyOverrides(o.set); err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "ecaeval",
		Short: "Evaluate cellular automaton rules on density classification",
		Long: `ecaeval simulates one-dimensional binary cellular automata with cyclic
boundaries and scores local rules on the density-classification task:
a rule is correct on a trial when the automaton converges to all 0s for an
initial density below the threshold, and to all 1s otherwise.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringToStringVar(&opts.set, "set", nil, "configuration override key=value (repeatable)")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newRulesCmd(opts),
		newEncodeCmd(opts),
		newTraceCmd(opts),
		newParamsCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ecaeval version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
