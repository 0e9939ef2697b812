package series

import (
	"reflect"

	"github.com/paveg/panda/internal/common"
	"github.com/paveg/panda/internal/config"
	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/missing"
)

var compareOpNames = map[common.Operator]string{
	common.OpEq: "Eq",
	common.OpNe: "Ne",
	common.OpLt: "Lt",
	common.OpLe: "Le",
	common.OpGt: "Gt",
	common.OpGe: "Ge",
}

// Eq compares s and other label by label. Two missing values are equal when nanEqual is set.
func (s *Series[T]) Eq(other *Series[T], nanEqual bool) (*Series[bool], error) {
	return s.compare(common.OpEq, other, nanEqual)
}

// EqDefault is Eq with the NaN equality flag taken from the global config
func (s *Series[T]) EqDefault(other *Series[T]) (*Series[bool], error) {
	return s.compare(common.OpEq, other, config.GetGlobalConfig().NaNEqual)
}

// Ne is the negation of Eq with missing values never equal
func (s *Series[T]) Ne(other *Series[T]) (*Series[bool], error) {
	return s.compare(common.OpNe, other, false)
}

// Lt reports s < other label by label
func (s *Series[T]) Lt(other *Series[T]) (*Series[bool], error) {
	return s.compare(common.OpLt, other, false)
}

// Le reports s <= other label by label
func (s *Series[T]) Le(other *Series[T]) (*Series[bool], error) {
	return s.compare(common.OpLe, other, false)
}

// Gt reports s > other label by label
func (s *Series[T]) Gt(other *Series[T]) (*Series[bool], error) {
	return s.compare(common.OpGt, other, false)
}

// Ge reports s >= other label by label
func (s *Series[T]) Ge(other *Series[T]) (*Series[bool], error) {
	return s.compare(common.OpGe, other, false)
}

// compare builds a boolean Series aligned to the labels of s. Labels missing
// from other compare false.
func (s *Series[T]) compare(op common.Operator, other *Series[T], nanEqual bool) (*Series[bool], error) {
	name := compareOpNames[op]
	if err := s.checkBinary(name, other); err != nil {
		return nil, err
	}
	ordered := common.IsOrderedKind(reflect.TypeFor[T]())
	if op != common.OpEq && op != common.OpNe && !ordered {
		return nil, errors.NewUnsupportedTypeError(name, s.DType())
	}

	labels := s.index.Labels()
	result := make([]bool, len(labels))
	for p, label := range labels {
		rp, ok := other.index.Position(label)
		if !ok {
			continue
		}
		left, right := s.values[p], other.values[rp]

		switch {
		case op == common.OpEq && nanEqual && missing.IsNaN(left) && missing.IsNaN(right):
			result[p] = true
		case ordered:
			result[p], _ = common.Compare(op, left, right)
		case op == common.OpEq:
			result[p] = reflect.DeepEqual(left, right)
		default:
			result[p] = !reflect.DeepEqual(left, right)
		}
	}

	return newFromIndex(
		s.index.Clone(),
		result,
		common.FormatBinaryOperation(s.name, op.String(), other.name),
		s.limit,
	), nil
}
