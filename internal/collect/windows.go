package collect

import (
	"context"
	"fmt"
	"strings"

	"hwscan/internal/record"
	"hwscan/internal/runner"
	"hwscan/internal/units"
)

// windowsFacts prefers the structured management interface and falls back
// to wmic text tables when the probe fails. Fallback values are raw tool
// output, header line included, with no numeric conversion.
func (c *Collector) windowsFacts(ctx context.Context, rec *record.Record) {
	snap, err := c.mgmt.Snapshot()
	if err != nil {
		c.logger.Debug("collect.mgmt.unavailable", "Structured interface unavailable, using wmic", map[string]any{
			"error": err.Error(),
		})
		c.runFacts(ctx, rec, windowsFallbackFacts())
		return
	}

	rec.Set("Serial_Number", orNotAvailable(snap.SerialNumber))
	rec.Set("Manufacturer", orNotAvailable(snap.Manufacturer))
	rec.Set("Model", orNotAvailable(snap.Model))
	rec.Set("CPU", orNotAvailable(snap.CPUName))

	if snap.TotalMemoryBytes > 0 {
		rec.Set("RAM_GB", units.BytesToGB(float64(snap.TotalMemoryBytes)))
	} else {
		rec.Set("RAM_GB", runner.Unknown)
	}

	disks := make([]string, 0, len(snap.Disks))
	for _, d := range snap.Disks {
		sizeGB := units.BytesToGB(float64(d.SizeBytes))
		disks = append(disks, fmt.Sprintf("%s (%s GB)", d.Model, record.FormatValue(sizeGB)))
	}
	if len(disks) > 0 {
		rec.Set("Storage", strings.Join(disks, ", "))
	} else {
		rec.Set("Storage", runner.NotAvailable)
	}
}

func windowsFallbackFacts() []fact {
	return []fact{
		{key: "Serial_Number", command: "wmic bios get serialnumber"},
		{key: "Model", command: "wmic computersystem get model"},
		{key: "CPU", command: "wmic cpu get name"},
		{key: "RAM_GB", command: "wmic computersystem get totalphysicalmemory"},
		{key: "Storage", command: "wmic diskdrive get size,model"},
	}
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return runner.NotAvailable
	}
	return strings.TrimSpace(s)
}
