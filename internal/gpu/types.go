// Package gpu enumerates display adapters into descriptors that merge into
// the inventory record with 1-based indexed keys.
package gpu

// Descriptor describes one detected GPU. Structured descriptors carry
// name, memory, and driver version as separate fields; unstructured ones
// wrap raw probe text in Name and merge as a single key.
type Descriptor struct {
	Name       string
	Memory     string
	Driver     string
	Structured bool
}
