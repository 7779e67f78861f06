//go:build !nvml

package gpu

import "hwscan/internal/logging"

// nvmlProbe is a no-op in builds without the nvml tag; Linux enumeration
// goes straight to the text command chain.
type nvmlProbe struct{}

func newNVMLProbe() nvmlProbe {
	return nvmlProbe{}
}

func (nvmlProbe) probe(logger *logging.Logger) ([]Descriptor, bool) {
	logger.Debug("gpu.nvml.disabled", "Built without nvml tag, skipping NVML probe", nil)
	return nil, false
}
