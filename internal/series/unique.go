package series

import (
	"fmt"
	"reflect"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/paveg/panda/internal/missing"
)

// missingKey collapses every missing value into one distinct entry
type missingKey struct{}

// hashedKey stands in for values that cannot be map keys
type hashedKey uint64

func distinctKey(v any) any {
	if missing.IsMissing(v) {
		return missingKey{}
	}
	if reflect.ValueOf(v).Comparable() {
		return v
	}
	return hashedKey(xxhash.Sum64String(fmt.Sprintf("%#v", v)))
}

// distinct returns the distinct values in order of first appearance
func distinct[T any](values []T) []T {
	seen := make(map[any]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		k := distinctKey(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// IsUnique reports whether no value repeats. Missing values repeat each other.
func (s *Series[T]) IsUnique() (bool, error) {
	if err := s.checkNotEmpty("IsUnique"); err != nil {
		return false, err
	}
	if s.uniq == uniqueUnknown {
		s.uniq = uniqueNo
		if len(distinct(s.values)) == len(s.values) {
			s.uniq = uniqueYes
		}
	}
	return s.uniq == uniqueYes, nil
}

// CountUnique returns the number of distinct values, optionally ignoring missing ones
func (s *Series[T]) CountUnique(dropNaN bool) (int, error) {
	values, err := s.ListUnique(dropNaN)
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

// ListUnique returns the distinct values in order of first appearance
func (s *Series[T]) ListUnique(dropNaN bool) ([]T, error) {
	if err := s.checkNotEmpty("ListUnique"); err != nil {
		return nil, err
	}

	values := s.values
	if dropNaN {
		values = s.nonMissing()
	}
	if s.uniq == uniqueYes {
		return append([]T(nil), values...), nil
	}
	return distinct(values), nil
}

// Equals compares two Series. With deep set, labels, name and dtype must match
// as well as the value sequence. Missing values equal each other.
func (s *Series[T]) Equals(other *Series[T], deep bool) (bool, error) {
	if err := s.checkNotEmpty("Equals"); err != nil {
		return false, err
	}
	if other.IsNull() {
		return false, nil
	}
	if len(s.values) != len(other.values) {
		return false, nil
	}
	for p, v := range s.values {
		if !sameValue(v, other.values[p]) {
			return false, nil
		}
	}
	if !deep {
		return true, nil
	}

	if s.name != other.name || s.DType() != other.DType() {
		return false, nil
	}
	return s.index.Equals(other.index)
}
