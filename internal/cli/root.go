// Package cli wires the cobra command tree and owns the top-level error
// tier: scan failures are printed as a single line and the process still
// exits successfully after the pause prompt.
package cli

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"hwscan/internal/version"
)

// NewRootCmd builds the hwscan command. Running it without a subcommand
// performs a scan.
func NewRootCmd() *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:           "hwscan",
		Short:         "Collect local hardware and OS inventory into CSV and JSON reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file path (default: hwscan.yaml next to the executable, then ~/.hwscan/config.yaml)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Reports directory (default: reports/ next to the executable)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Report base name, skipping the interactive prompt")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Never prompt; use --name or the default name and skip the exit pause")
	cmd.Flags().BoolVar(&opts.noPause, "no-pause", false, "Skip the exit pause")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Per-command timeout (0 disables)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(NewVersionCmd())

	cmd.Version = version.Version
	cmd.SetVersionTemplate(fmt.Sprintf("%s (%s/%s)\n", version.Version, runtime.GOOS, runtime.GOARCH))

	return cmd
}
