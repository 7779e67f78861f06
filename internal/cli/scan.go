package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"hwscan/internal/collect"
	"hwscan/internal/config"
	"hwscan/internal/gpu"
	"hwscan/internal/logging"
	"hwscan/internal/mgmt"
	"hwscan/internal/prompt"
	"hwscan/internal/report"
	"hwscan/internal/runner"
)

type scanOptions struct {
	configPath     string
	output         string
	name           string
	logLevel       string
	nonInteractive bool
	noPause        bool
	timeout        time.Duration
}

// runScan is the top-level error tier: any failure is reported as a single
// "Error: ..." line on stdout, the exit pause still happens, and the
// process exits 0 either way.
func runScan(cmd *cobra.Command, opts *scanOptions) error {
	if err := scan(cmd, opts); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
	}
	if !opts.nonInteractive && !opts.noPause {
		prompt.WaitForExit(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return nil
}

func scan(cmd *cobra.Command, opts *scanOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, opts, &cfg)

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Close()

	scanID := uuid.NewString()
	log := logger.With(map[string]any{"scan_id": scanID})
	started := time.Now()

	platform := collect.DetectPlatform()
	log.Info("scan.start", "Starting inventory scan", map[string]any{
		"platform": string(platform),
	})

	run := runner.NewShellRunner(time.Duration(cfg.Commands.TimeoutSeconds)*time.Second, log)
	querier := mgmt.NewGHWQuerier()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rec := collect.New(platform, run, log, querier).Collect(ctx)
	enumerator := gpu.NewEnumerator(platform, run, log, querier, cfg.GPU.PreferNVML)
	gpu.MergeInto(rec, enumerator.Enumerate(ctx))

	input := opts.name
	if input == "" && !opts.nonInteractive {
		input, err = prompt.ReportName(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Reports.DefaultName)
		if err != nil {
			return err
		}
	}
	base := report.Filename(input, cfg.Reports.DefaultName, time.Now())

	dir := cfg.Reports.Dir
	if dir == "" {
		dir, err = report.DefaultDir()
		if err != nil {
			return fmt.Errorf("failed to locate reports directory: %w", err)
		}
	}

	writer := report.NewWriter(dir, log)
	csvPath, jsonPath, err := writer.Write(rec, base)
	if err != nil {
		return err
	}

	if cfg.Reports.Manifest {
		hostname, _ := rec.GetString("Hostname")
		if _, merr := writer.WriteManifest(scanID, hostname, started, time.Now(), base, []string{csvPath, jsonPath}); merr != nil {
			// The manifest is supplementary; a failure must not void the scan.
			log.Warn("manifest.failed", "Manifest write failed", map[string]any{
				"error": merr.Error(),
			})
		}
	}

	printSummary(cmd.OutOrStdout(), rec, csvPath, jsonPath)
	return nil
}

func applyFlagOverrides(cmd *cobra.Command, opts *scanOptions, cfg *config.Config) {
	if cmd.Flags().Changed("output") {
		cfg.Reports.Dir = opts.output
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Commands.TimeoutSeconds = int(opts.timeout.Seconds())
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
}

func newLogger(cfg config.LoggingConfig) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		return logging.NewFileLogger(level, cfg.File)
	}
	return logging.NewLogger(level), nil
}
