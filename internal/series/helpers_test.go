package series

import "math"

func nan() float64 { return math.NaN() }

func mustLabeled[T any](values []T, labels ...string) *Series[T] {
	s, err := FromLabeled(values, labels)
	if err != nil {
		panic(err)
	}
	return s
}
