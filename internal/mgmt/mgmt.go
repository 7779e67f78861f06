// Package mgmt is the structured system-management capability: a typed
// snapshot of machine facts that, where the host supports it, replaces
// scraping text-table command output. A probe failure simply means the
// caller selects the text-scrape strategy instead.
package mgmt

// Disk describes one physical disk.
type Disk struct {
	Model     string
	SizeBytes uint64
}

// VideoController describes one display adapter. MemoryBytes is zero when
// the interface does not report adapter RAM.
type VideoController struct {
	Name          string
	DriverVersion string
	MemoryBytes   uint64
}

// Snapshot is one typed read of the management interface.
type Snapshot struct {
	Manufacturer     string
	Model            string
	SerialNumber     string
	CPUName          string
	TotalMemoryBytes uint64
	Disks            []Disk
	VideoControllers []VideoController
}

// Querier probes the structured management interface. Implementations
// return an error when the interface is unavailable on this host.
type Querier interface {
	Snapshot() (*Snapshot, error)
}
