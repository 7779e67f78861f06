// Package collect populates the inventory record: common OS facts first,
// then an ordered per-platform table of command-backed fact producers.
package collect

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"hwscan/internal/logging"
	"hwscan/internal/mgmt"
	"hwscan/internal/record"
	"hwscan/internal/runner"
)

// scanDateLayout is the literal Scan_Date format: YYYY-MM-DD HH:MM:SS.
const scanDateLayout = "2006-01-02 15:04:05"

// Collector runs one collection pass over the local machine.
type Collector struct {
	platform Platform
	runner   runner.Runner
	logger   *logging.Logger
	mgmt     mgmt.Querier

	// seams for tests
	hostInfo func(ctx context.Context) (*host.InfoStat, error)
	now      func() time.Time
}

// New creates a collector for the given platform.
func New(platform Platform, run runner.Runner, logger *logging.Logger, querier mgmt.Querier) *Collector {
	return &Collector{
		platform: platform,
		runner:   run,
		logger:   logger,
		mgmt:     querier,
		hostInfo: host.InfoWithContext,
		now:      time.Now,
	}
}

// Collect populates a fresh record: the five common fields, then the
// platform-specific fields in table order. GPU fields are merged separately
// by the gpu package.
func (c *Collector) Collect(ctx context.Context) *record.Record {
	rec := record.New()
	c.commonFacts(ctx, rec)

	switch c.platform {
	case PlatformLinux:
		c.runFacts(ctx, rec, linuxFacts())
	case PlatformDarwin:
		c.runFacts(ctx, rec, darwinFacts())
	case PlatformWindows:
		c.windowsFacts(ctx, rec)
	default:
		c.logger.Debug("collect.platform.unknown", "Unrecognized platform, common fields only", map[string]any{
			"goos": runtime.GOOS,
		})
	}

	c.logger.Info("collect.done", "Fact collection finished", map[string]any{
		"platform": string(c.platform),
		"fields":   rec.Len(),
	})
	return rec
}

// commonFacts fills OS, Hostname, OS_Version, Architecture, and Scan_Date.
// These are never left empty: library failures fall back to runtime facts
// or the Unknown sentinel.
func (c *Collector) commonFacts(ctx context.Context, rec *record.Record) {
	info, err := c.hostInfo(ctx)
	if err != nil {
		c.logger.Warn("collect.hostinfo.failed", "Host info query failed, using fallbacks", map[string]any{
			"error": err.Error(),
		})
		info = &host.InfoStat{}
	}

	osName := info.Platform
	if osName == "" {
		osName = runtime.GOOS
	}
	hostname := info.Hostname
	if hostname == "" {
		if h, herr := os.Hostname(); herr == nil {
			hostname = h
		} else {
			hostname = runner.Unknown
		}
	}
	osVersion := info.PlatformVersion
	if osVersion == "" {
		osVersion = info.KernelVersion
	}
	if osVersion == "" {
		osVersion = runner.Unknown
	}
	arch := info.KernelArch
	if arch == "" {
		arch = runtime.GOARCH
	}

	rec.Set("OS", osName)
	rec.Set("Hostname", hostname)
	rec.Set("OS_Version", osVersion)
	rec.Set("Architecture", arch)
	rec.Set("Scan_Date", c.now().Format(scanDateLayout))
}
