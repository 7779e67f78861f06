//go:build nvml

package gpu

import "github.com/NVIDIA/go-nvml/pkg/nvml"

// mockNVML implements NVMLInterface for tests.
type mockNVML struct {
	initReturn    nvml.Return
	countReturn   nvml.Return
	driverVersion string
	driverReturn  nvml.Return
	devices       []mockDevice
}

// mockDevice represents one mock GPU device.
type mockDevice struct {
	name         string
	nameReturn   nvml.Return
	memoryTotal  uint64
	memoryReturn nvml.Return
}

func newMockNVML() *mockNVML {
	return &mockNVML{
		initReturn:   nvml.SUCCESS,
		countReturn:  nvml.SUCCESS,
		driverReturn: nvml.SUCCESS,
	}
}

func (m *mockNVML) Init() nvml.Return     { return m.initReturn }
func (m *mockNVML) Shutdown() nvml.Return { return nvml.SUCCESS }

func (m *mockNVML) DeviceGetCount() (int, nvml.Return) {
	return len(m.devices), m.countReturn
}

func (m *mockNVML) DeviceGetHandleByIndex(index int) (DeviceInterface, nvml.Return) {
	if index < 0 || index >= len(m.devices) {
		return nil, nvml.ERROR_INVALID_ARGUMENT
	}
	return m.devices[index], nvml.SUCCESS
}

func (m *mockNVML) SystemGetDriverVersion() (string, nvml.Return) {
	return m.driverVersion, m.driverReturn
}

func (d mockDevice) GetName() (string, nvml.Return) {
	return d.name, d.nameReturn
}

func (d mockDevice) GetMemoryInfo() (nvml.Memory, nvml.Return) {
	return nvml.Memory{Total: d.memoryTotal}, d.memoryReturn
}
