// Command nutricli runs one-shot NutriCoach operations from the terminal.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"nutricoach/pkg/log"
)

const defaultTimeout = 60 * time.Second

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	timeout time.Duration
	logger  log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "nutricli",
		Short: "NutriCoach from the command line",
		Long: `nutricli asks a provider about a food, classifies advice text,
prints the daily tip, or assesses a food against the USDA database.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			opts.logger = log.Init(log.ZapConfig{
				Level:    level,
				Mode:     "development",
				Encoding: "console",
			})
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "Request timeout")

	cmd.AddCommand(
		newAskCmd(opts),
		newClassifyCmd(),
		newTipCmd(opts),
		newAssessCmd(opts),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
