package collect

import (
	"strconv"
	"strings"

	"hwscan/internal/units"
)

// linuxFacts is the ordered Linux fact table. The dmidecode queries need
// root; without it they degrade to the sentinel like any other failure.
func linuxFacts() []fact {
	return []fact{
		{key: "CPU", command: `lscpu | grep 'Model name' | cut -f 2 -d ':'`},
		{key: "RAM_GB", command: `grep MemTotal /proc/meminfo | awk '{print $2}'`, parse: parseKilobytesGB},
		{key: "Storage", command: `df -h / | awk 'NR==2 {print $2}'`},
		{key: "Serial_Number", command: "sudo dmidecode -s system-serial-number"},
		{key: "Model", command: "sudo dmidecode -s system-product-name"},
		{key: "Manufacturer", command: "sudo dmidecode -s system-manufacturer"},
	}
}

func parseKilobytesGB(text string) (any, bool) {
	kb, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, false
	}
	return units.KilobytesToGB(kb), true
}
