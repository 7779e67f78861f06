package gpu

import (
	"context"

	"hwscan/internal/collect"
	"hwscan/internal/logging"
	"hwscan/internal/mgmt"
	"hwscan/internal/record"
	"hwscan/internal/runner"
	"hwscan/internal/units"
)

// Linux text probe chain, tried in order; the first non-empty output wins.
const (
	lspciCommand     = `lspci | grep -E 'vga|3d|2d'`
	nvidiaSMICommand = "nvidia-smi --query-gpu=gpu_name,memory.total,driver_version --format=csv,noheader"
	glxinfoCommand   = `glxinfo | grep 'OpenGL renderer'`
)

const windowsFallbackCommand = "wmic path win32_VideoController get name,adapterram,driverversion"

// Enumerator produces the ordered GPU descriptor sequence for a platform.
type Enumerator struct {
	platform   collect.Platform
	runner     runner.Runner
	logger     *logging.Logger
	mgmt       mgmt.Querier
	nvml       nvmlProbe
	preferNVML bool
}

// NewEnumerator creates an enumerator. preferNVML enables the structured
// NVML probe on Linux before the text command chain; it has no effect in
// builds without the nvml tag.
func NewEnumerator(platform collect.Platform, run runner.Runner, logger *logging.Logger, querier mgmt.Querier, preferNVML bool) *Enumerator {
	return &Enumerator{
		platform:   platform,
		runner:     run,
		logger:     logger,
		mgmt:       querier,
		nvml:       newNVMLProbe(),
		preferNVML: preferNVML,
	}
}

// Enumerate returns zero or more descriptors in probe order. Unrecognized
// platforms yield none.
func (e *Enumerator) Enumerate(ctx context.Context) []Descriptor {
	switch e.platform {
	case collect.PlatformWindows:
		return e.windowsGPUs(ctx)
	case collect.PlatformLinux:
		return e.linuxGPUs(ctx)
	case collect.PlatformDarwin:
		return e.darwinGPUs(ctx)
	default:
		return nil
	}
}

// windowsGPUs yields one structured descriptor per video controller from
// the management interface, or a single raw wmic text wrapper when the
// interface is unavailable.
func (e *Enumerator) windowsGPUs(ctx context.Context) []Descriptor {
	snap, err := e.mgmt.Snapshot()
	if err != nil {
		e.logger.Debug("gpu.mgmt.unavailable", "Structured interface unavailable, using wmic", map[string]any{
			"error": err.Error(),
		})
		res := e.runner.Output(ctx, windowsFallbackCommand)
		return []Descriptor{{Name: res.OrSentinel()}}
	}

	descriptors := make([]Descriptor, 0, len(snap.VideoControllers))
	for _, vc := range snap.VideoControllers {
		d := Descriptor{
			Structured: true,
			Name:       vc.Name,
			Driver:     vc.DriverVersion,
			Memory:     runner.Unknown,
		}
		if vc.MemoryBytes > 0 {
			d.Memory = record.FormatValue(units.BytesToGB(float64(vc.MemoryBytes))) + " GB"
		}
		descriptors = append(descriptors, d)
	}
	return descriptors
}

// linuxGPUs tries the structured NVML probe first when enabled, then the
// text command chain. The chain stops at the first probe that produced
// non-empty output; structured CSV from nvidia-smi is not parsed further.
func (e *Enumerator) linuxGPUs(ctx context.Context) []Descriptor {
	if e.preferNVML {
		if descriptors, ok := e.nvml.probe(e.logger); ok && len(descriptors) > 0 {
			return descriptors
		}
	}

	for _, command := range []string{lspciCommand, nvidiaSMICommand, glxinfoCommand} {
		res := e.runner.Output(ctx, command)
		if res.OK && res.Text != "" {
			return []Descriptor{{Name: res.Text}}
		}
	}
	return []Descriptor{{Name: runner.NotAvailable}}
}

// darwinGPUs wraps the full display profile dump in a single descriptor.
func (e *Enumerator) darwinGPUs(ctx context.Context) []Descriptor {
	res := e.runner.Output(ctx, "system_profiler SPDisplaysDataType")
	return []Descriptor{{Name: res.OrSentinel()}}
}
