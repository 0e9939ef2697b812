package panda

import "github.com/paveg/panda/internal/missing"

// Mathematical constants.
const (
	Pi = missing.Pi
	E  = missing.E
)

// NaN returns the floating-point missing value.
func NaN() float64 {
	return missing.NaN()
}
