package series

import (
	"reflect"
	"slices"
	"strings"

	"github.com/paveg/panda/internal/common"
	"github.com/paveg/panda/internal/config"
	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/missing"
)

// Clone returns an independent copy with the same labels, name and limit
func (s *Series[T]) Clone() *Series[T] {
	if s == nil {
		return nil
	}
	return &Series[T]{
		name:   s.name,
		index:  s.index.Clone(),
		values: slices.Clone(s.values),
		limit:  s.limit,
		uniq:   s.uniq,
	}
}

// Transpose returns a copy of s. A single Series has nothing to swap.
func (s *Series[T]) Transpose() *Series[T] {
	return s.Clone()
}

// ValuesOnly rebuilds the Series from its values alone, with positional labels
// and the default name
func (s *Series[T]) ValuesOnly() (*Series[T], error) {
	if err := s.checkNotEmpty("ValuesOnly"); err != nil {
		return nil, err
	}
	return New(s.values, WithName(config.GetGlobalConfig().DefaultSeriesName), WithLimit(s.limit))
}

// Copy returns Clone when deep is set and ValuesOnly otherwise
func (s *Series[T]) Copy(deep bool) (*Series[T], error) {
	if err := s.checkNotEmpty("Copy"); err != nil {
		return nil, err
	}
	if deep {
		return s.Clone(), nil
	}
	return s.ValuesOnly()
}

// Apply maps every value through f into a new Series of the same shape
func (s *Series[T]) Apply(f func(T) T) (*Series[T], error) {
	if err := s.checkNotEmpty("Apply"); err != nil {
		return nil, err
	}
	out := s.Clone()
	for p, v := range out.values {
		out.values[p] = f(v)
	}
	out.invalidate()
	return out, nil
}

// Where keeps the entries whose value satisfies pred. Labels and name are kept.
func (s *Series[T]) Where(pred func(T) bool) (*Series[T], error) {
	if err := s.checkNotEmpty("Where"); err != nil {
		return nil, err
	}

	labels := s.index.Labels()
	keptLabels := make([]string, 0, len(labels))
	kept := make([]T, 0, len(s.values))
	for p, v := range s.values {
		if pred(v) {
			keptLabels = append(keptLabels, labels[p])
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return nil, &errors.DataFrameError{
			Kind:    errors.KindNotFound,
			Op:      "Where",
			Message: "no value satisfies the predicate",
		}
	}
	return FromLabeled(kept, keptLabels, WithName(s.name), WithLimit(s.limit))
}

// First returns the first value satisfying pred
func (s *Series[T]) First(pred func(T) bool) (T, error) {
	var zero T
	if err := s.checkNotEmpty("First"); err != nil {
		return zero, err
	}
	if i := slices.IndexFunc(s.values, pred); i >= 0 {
		return s.values[i], nil
	}
	return zero, &errors.DataFrameError{
		Kind:    errors.KindNotFound,
		Op:      "First",
		Message: "no value satisfies the predicate",
	}
}

// FirstOrDefault returns the first value satisfying pred, or the zero value
func (s *Series[T]) FirstOrDefault(pred func(T) bool) (T, error) {
	var zero T
	if err := s.checkNotEmpty("FirstOrDefault"); err != nil {
		return zero, err
	}
	if i := slices.IndexFunc(s.values, pred); i >= 0 {
		return s.values[i], nil
	}
	return zero, nil
}

// OrderByIndex returns a new Series sorted by label; mode is "asc" or "desc"
func (s *Series[T]) OrderByIndex(mode string) (*Series[T], error) {
	if err := s.checkNotEmpty("OrderByIndex"); err != nil {
		return nil, err
	}

	var cmp func(a, b string) int
	switch mode {
	case "asc":
		cmp = strings.Compare
	case "desc":
		cmp = func(a, b string) int { return strings.Compare(b, a) }
	default:
		return nil, errors.NewInvalidInputError("OrderByIndex",
			"mode must be \"asc\" or \"desc\", got \""+mode+"\"")
	}

	labels := s.index.Labels()
	slices.SortStableFunc(labels, cmp)
	values := make([]T, len(labels))
	for i, label := range labels {
		p, _ := s.index.Position(label)
		values[i] = s.values[p]
	}
	return FromLabeled(values, labels, WithName(s.name), WithLimit(s.limit))
}

// Convert returns a copy of s with every value converted to U. Missing values
// become the zero value of U.
func Convert[U, T any](s *Series[T]) (*Series[U], error) {
	if err := s.checkNotEmpty("Convert"); err != nil {
		return nil, err
	}

	tc := common.NewTypeConverter()
	values := make([]U, len(s.values))
	for p, v := range s.values {
		if missing.IsNaN(v) {
			continue
		}
		u, err := common.Convert[U](tc, v)
		if err != nil {
			label, _ := s.index.At(p)
			return nil, &errors.DataFrameError{
				Kind:    errors.KindTypeMismatch,
				Op:      "Convert",
				Column:  s.name,
				Message: "cannot convert value at label '" + label + "' to " + common.TypeName(reflect.TypeFor[U]()),
				Cause:   err,
			}
		}
		values[p] = u
	}
	return newFromIndex(s.index.Clone(), values, s.name, s.limit), nil
}

// ToSlice returns the values in order
func (s *Series[T]) ToSlice() ([]T, error) {
	if err := s.checkNotEmpty("ToSlice"); err != nil {
		return nil, err
	}
	return slices.Clone(s.values), nil
}

// ToMap returns a label to value mapping
func (s *Series[T]) ToMap() (map[string]T, error) {
	if err := s.checkNotEmpty("ToMap"); err != nil {
		return nil, err
	}
	out := make(map[string]T, len(s.values))
	for p, label := range s.index.Labels() {
		out[label] = s.values[p]
	}
	return out, nil
}
