package series

import (
	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/missing"
)

// HasNaNs reports whether any value is missing
func (s *Series[T]) HasNaNs() (bool, error) {
	if err := s.checkNotEmpty("HasNaNs"); err != nil {
		return false, err
	}
	for _, v := range s.values {
		if missing.IsNaN(v) {
			return true, nil
		}
	}
	return false, nil
}

// CountNaN returns the number of missing values
func (s *Series[T]) CountNaN() (int, error) {
	if err := s.checkNotEmpty("CountNaN"); err != nil {
		return 0, err
	}
	n := 0
	for _, v := range s.values {
		if missing.IsNaN(v) {
			n++
		}
	}
	return n, nil
}

// Count returns the number of non-missing values
func (s *Series[T]) Count() (int, error) {
	nan, err := s.CountNaN()
	if err != nil {
		return 0, err
	}
	return len(s.values) - nan, nil
}

// RemoveNaN returns a new Series without the missing entries. Labels and name
// are kept; a Series of only missing values has nothing left and fails.
func (s *Series[T]) RemoveNaN() (*Series[T], error) {
	if err := s.checkNotEmpty("RemoveNaN"); err != nil {
		return nil, err
	}

	labels := s.index.Labels()
	keptLabels := make([]string, 0, len(labels))
	kept := make([]T, 0, len(s.values))
	for p, v := range s.values {
		if missing.IsNaN(v) {
			continue
		}
		keptLabels = append(keptLabels, labels[p])
		kept = append(kept, v)
	}
	if len(kept) == 0 {
		return nil, errors.NewEmptyError("RemoveNaN", "non-missing values")
	}
	return FromLabeled(kept, keptLabels, WithName(s.name), WithLimit(s.limit))
}

// FillNaN replaces every missing value with value in place
func (s *Series[T]) FillNaN(value T) error {
	if err := s.checkNotEmpty("FillNaN"); err != nil {
		return err
	}
	if missing.IsNaN(value) {
		return errors.NewInvalidInputError("FillNaN", "fill value cannot be missing")
	}
	for p, v := range s.values {
		if missing.IsNaN(v) {
			s.values[p] = value
		}
	}
	s.invalidate()
	return nil
}

// nonMissing returns the values that are not missing, in order
func (s *Series[T]) nonMissing() []T {
	out := make([]T, 0, len(s.values))
	for _, v := range s.values {
		if !missing.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
