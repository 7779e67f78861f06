package mgmt

import (
	"fmt"

	"github.com/jaypipes/ghw"
)

// GHWQuerier implements Querier on top of ghw, which reads WMI on Windows
// and DMI/sysfs elsewhere.
type GHWQuerier struct{}

// NewGHWQuerier creates a ghw-backed querier.
func NewGHWQuerier() *GHWQuerier {
	return &GHWQuerier{}
}

// Snapshot reads product, CPU, memory, disk, and display facts in one pass.
// Product and memory must be readable for the interface to count as
// available; CPU, disk, and display failures leave those sections empty.
func (g *GHWQuerier) Snapshot() (*Snapshot, error) {
	product, err := ghw.Product()
	if err != nil {
		return nil, fmt.Errorf("management interface unavailable: %w", err)
	}
	memory, err := ghw.Memory()
	if err != nil {
		return nil, fmt.Errorf("management interface unavailable: %w", err)
	}

	snap := &Snapshot{
		Manufacturer: product.Vendor,
		Model:        product.Name,
		SerialNumber: product.SerialNumber,
	}
	if memory.TotalPhysicalBytes > 0 {
		snap.TotalMemoryBytes = uint64(memory.TotalPhysicalBytes)
	}

	if cpu, err := ghw.CPU(); err == nil && len(cpu.Processors) > 0 {
		snap.CPUName = cpu.Processors[0].Model
	}

	if block, err := ghw.Block(); err == nil {
		for _, disk := range block.Disks {
			snap.Disks = append(snap.Disks, Disk{
				Model:     disk.Model,
				SizeBytes: disk.SizeBytes,
			})
		}
	}

	if gpu, err := ghw.GPU(); err == nil {
		for _, card := range gpu.GraphicsCards {
			vc := VideoController{}
			if card.DeviceInfo != nil {
				if card.DeviceInfo.Product != nil {
					vc.Name = card.DeviceInfo.Product.Name
				}
				vc.DriverVersion = card.DeviceInfo.Driver
			}
			snap.VideoControllers = append(snap.VideoControllers, vc)
		}
	}

	return snap, nil
}
