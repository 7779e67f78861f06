package collect

import (
	"strconv"
	"strings"

	"hwscan/internal/units"
)

// darwinFacts is the ordered macOS fact table.
func darwinFacts() []fact {
	return []fact{
		{key: "Serial_Number", command: `system_profiler SPHardwareDataType | grep 'Serial Number' | awk '{print $4}'`},
		{key: "Model", command: `system_profiler SPHardwareDataType | grep 'Model Name' | cut -f 2 -d ':'`},
		{key: "CPU", command: "sysctl -n machdep.cpu.brand_string"},
		{key: "RAM_GB", command: `sysctl hw.memsize | awk '{print $2}'`, parse: parseBytesGB},
		{key: "Storage", command: `diskutil info disk0 | grep 'Disk Size' | awk '{print $3,$4}'`},
	}
}

func parseBytesGB(text string) (any, bool) {
	b, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, false
	}
	return units.BytesToGB(b), true
}
