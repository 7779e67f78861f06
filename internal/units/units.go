// Package units converts raw byte and kilobyte quantities into the
// gigabyte figures used in inventory reports. All conversions are binary
// (1024-based) and rounded to exactly two decimal places.
package units

import "math"

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BytesToGB converts a byte count to gigabytes, rounded to two decimals.
func BytesToGB(v float64) float64 {
	return Round2(v / 1024 / 1024 / 1024)
}

// KilobytesToGB converts a kilobyte count to gigabytes, rounded to two
// decimals.
func KilobytesToGB(v float64) float64 {
	return Round2(v / 1024 / 1024)
}
