//go:build nvml

package gpu

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"hwscan/internal/logging"
	"hwscan/internal/record"
	"hwscan/internal/runner"
	"hwscan/internal/units"
)

// NVMLInterface narrows the NVML surface used by the probe so tests can
// substitute a mock.
type NVMLInterface interface {
	Init() nvml.Return
	Shutdown() nvml.Return
	DeviceGetCount() (int, nvml.Return)
	DeviceGetHandleByIndex(index int) (DeviceInterface, nvml.Return)
	SystemGetDriverVersion() (string, nvml.Return)
}

// DeviceInterface narrows the per-device NVML surface.
type DeviceInterface interface {
	GetName() (string, nvml.Return)
	GetMemoryInfo() (nvml.Memory, nvml.Return)
}

type realNVML struct{}

func (realNVML) Init() nvml.Return     { return nvml.Init() }
func (realNVML) Shutdown() nvml.Return { return nvml.Shutdown() }

func (realNVML) DeviceGetCount() (int, nvml.Return) {
	return nvml.DeviceGetCount()
}

func (realNVML) DeviceGetHandleByIndex(index int) (DeviceInterface, nvml.Return) {
	device, ret := nvml.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return deviceWrapper{device: device}, ret
}

func (realNVML) SystemGetDriverVersion() (string, nvml.Return) {
	return nvml.SystemGetDriverVersion()
}

type deviceWrapper struct {
	device nvml.Device
}

func (w deviceWrapper) GetName() (string, nvml.Return) {
	return w.device.GetName()
}

func (w deviceWrapper) GetMemoryInfo() (nvml.Memory, nvml.Return) {
	return w.device.GetMemoryInfo()
}

// nvmlProbe is the structured Linux GPU strategy, available in builds with
// the nvml tag.
type nvmlProbe struct {
	api NVMLInterface
}

func newNVMLProbe() nvmlProbe {
	return nvmlProbe{api: realNVML{}}
}

// probe returns structured descriptors for every NVML device. A false
// result means the caller should fall through to the text command chain.
func (p nvmlProbe) probe(logger *logging.Logger) ([]Descriptor, bool) {
	if ret := p.api.Init(); ret != nvml.SUCCESS {
		logger.Debug("gpu.nvml.init.failed", "NVML initialization failed", map[string]any{
			"error": nvml.ErrorString(ret),
		})
		return nil, false
	}
	defer p.api.Shutdown()

	driver := runner.Unknown
	if v, ret := p.api.SystemGetDriverVersion(); ret == nvml.SUCCESS {
		driver = v
	}

	count, ret := p.api.DeviceGetCount()
	if ret != nvml.SUCCESS {
		logger.Debug("gpu.nvml.count.failed", "NVML device count failed", map[string]any{
			"error": nvml.ErrorString(ret),
		})
		return nil, false
	}

	descriptors := make([]Descriptor, 0, count)
	for i := 0; i < count; i++ {
		device, ret := p.api.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			continue
		}

		d := Descriptor{Structured: true, Driver: driver, Name: runner.Unknown, Memory: runner.Unknown}
		if name, ret := device.GetName(); ret == nvml.SUCCESS {
			d.Name = name
		}
		if mem, ret := device.GetMemoryInfo(); ret == nvml.SUCCESS && mem.Total > 0 {
			d.Memory = record.FormatValue(units.BytesToGB(float64(mem.Total))) + " GB"
		}
		descriptors = append(descriptors, d)
	}

	logger.Info("gpu.nvml.detected", "NVML probe finished", map[string]any{
		"count":  len(descriptors),
		"driver": driver,
	})
	return descriptors, true
}
