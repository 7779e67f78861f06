package gpu

import (
	"fmt"

	"hwscan/internal/record"
	"hwscan/internal/runner"
)

// MergeInto appends GPU descriptors to the record. Indices are 1-based and
// contiguous in enumeration order: structured descriptors become three keys
// (GPU_<n>_Name, GPU_<n>_Memory, GPU_<n>_Driver), text wrappers one
// (GPU_<n>). Empty structured fields fall back to the Unknown sentinel.
func MergeInto(rec *record.Record, descriptors []Descriptor) {
	for i, d := range descriptors {
		n := i + 1
		if d.Structured {
			rec.Set(fmt.Sprintf("GPU_%d_Name", n), orUnknown(d.Name))
			rec.Set(fmt.Sprintf("GPU_%d_Memory", n), orUnknown(d.Memory))
			rec.Set(fmt.Sprintf("GPU_%d_Driver", n), orUnknown(d.Driver))
			continue
		}
		rec.Set(fmt.Sprintf("GPU_%d", n), d.Name)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return runner.Unknown
	}
	return s
}
