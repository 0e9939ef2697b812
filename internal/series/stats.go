package series

import (
	"math"
	"reflect"
	"slices"

	"github.com/paveg/panda/internal/common"
	"github.com/paveg/panda/internal/errors"
)

// numeric returns the NaN-free working set as float64, requiring a numeric element type
func (s *Series[T]) numeric(op string) ([]float64, error) {
	if err := s.checkNotEmpty(op); err != nil {
		return nil, err
	}
	kept := s.nonMissing()
	if !common.IsNumericKind(reflect.TypeFor[T]()) {
		return nil, errors.NewUnsupportedTypeError(op, s.DType())
	}

	out := make([]float64, len(kept))
	for i, v := range kept {
		out[i], _ = common.NumericValue(v)
	}
	return out, nil
}

// nonEmptyNumeric is numeric with an empty working set rejected
func (s *Series[T]) nonEmptyNumeric(op string) ([]float64, error) {
	vals, err := s.numeric(op)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, errors.NewEmptyError(op, "non-missing values")
	}
	return vals, nil
}

// Sum returns the sum of the non-missing values
func (s *Series[T]) Sum() (float64, error) {
	vals, err := s.numeric("Sum")
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum, nil
}

// Prod returns the product of the non-missing values
func (s *Series[T]) Prod() (float64, error) {
	vals, err := s.numeric("Prod")
	if err != nil {
		return 0, err
	}
	prod := 1.0
	for _, v := range vals {
		prod *= v
	}
	return prod, nil
}

// Mean returns the arithmetic mean of the non-missing values
func (s *Series[T]) Mean() (float64, error) {
	vals, err := s.numeric("Mean")
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, errors.NewDivideByZeroError("Mean", "no non-missing values")
	}
	return mean(vals), nil
}

// Median returns the middle value, or the average of the two middle values
func (s *Series[T]) Median() (float64, error) {
	vals, err := s.nonEmptyNumeric("Median")
	if err != nil {
		return 0, err
	}
	slices.Sort(vals)
	n := len(vals)
	if n%2 == 0 {
		return (vals[n/2-1] + vals[n/2]) / 2, nil
	}
	return vals[n/2], nil
}

// Mode returns the most frequent value. Ties go to the value seen first.
func (s *Series[T]) Mode() (float64, error) {
	vals, err := s.nonEmptyNumeric("Mode")
	if err != nil {
		return 0, err
	}

	counts := make(map[float64]int, len(vals))
	order := make([]float64, 0, len(vals))
	for _, v := range vals {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best, nil
}

// Max returns the largest non-missing value
func (s *Series[T]) Max() (float64, error) {
	vals, err := s.nonEmptyNumeric("Max")
	if err != nil {
		return 0, err
	}
	return slices.Max(vals), nil
}

// Min returns the smallest non-missing value
func (s *Series[T]) Min() (float64, error) {
	vals, err := s.nonEmptyNumeric("Min")
	if err != nil {
		return 0, err
	}
	return slices.Min(vals), nil
}

// Var returns the sample variance. Fewer than two values give NaN.
func (s *Series[T]) Var() (float64, error) {
	vals, err := s.numeric("Var")
	if err != nil {
		return 0, err
	}
	return variance(vals), nil
}

// Std returns the sample standard deviation
func (s *Series[T]) Std() (float64, error) {
	vals, err := s.numeric("Std")
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance(vals)), nil
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func variance(vals []float64) float64 {
	n := len(vals)
	if n <= 1 {
		return math.NaN()
	}
	m := mean(vals)
	var ss float64
	for _, v := range vals {
		d := v - m
		ss += d * d
	}
	return ss / float64(n-1)
}
