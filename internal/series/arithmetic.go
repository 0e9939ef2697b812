package series

import (
	"reflect"
	"slices"

	"github.com/paveg/panda/internal/common"
	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/missing"
	"github.com/paveg/panda/internal/validation"
)

// OpOption configures an aligned arithmetic operation
type OpOption[T any] func(*opConfig[T])

type opConfig[T any] struct {
	fill    T
	hasFill bool
}

// WithFill replaces missing results with value. A missing fill value is ignored.
func WithFill[T any](value T) OpOption[T] {
	return func(c *opConfig[T]) {
		if !missing.IsNaN(value) {
			c.fill = value
			c.hasFill = true
		}
	}
}

var arithOpNames = map[common.Operator]string{
	common.OpAdd: "Add",
	common.OpSub: "Sub",
	common.OpMul: "Mul",
	common.OpDiv: "Div",
}

// Add adds other into s by label. Labels only in other are appended with other's value.
func (s *Series[T]) Add(other *Series[T], opts ...OpOption[T]) error {
	return s.arith(common.OpAdd, other, opts)
}

// Sub subtracts other from s by label. Labels only in other are appended negated.
// Unsigned series fail when a result would be negative.
func (s *Series[T]) Sub(other *Series[T], opts ...OpOption[T]) error {
	return s.arith(common.OpSub, other, opts)
}

// Mul multiplies s by other by label. Labels only in other are appended as zero.
func (s *Series[T]) Mul(other *Series[T], opts ...OpOption[T]) error {
	return s.arith(common.OpMul, other, opts)
}

// Div divides s by other by label. A zero or missing numerator yields zero and a
// zero or missing denominator yields +Inf. Integer series cannot represent +Inf,
// so dividing a non-zero integer by zero fails.
func (s *Series[T]) Div(other *Series[T], opts ...OpOption[T]) error {
	return s.arith(common.OpDiv, other, opts)
}

// checkBinary validates both operands of a binary operation
func (s *Series[T]) checkBinary(op string, other *Series[T]) error {
	if err := validation.ValidateAll(
		validation.NewNotEmptyValidator(s, op, "series"),
		validation.NewNotEmptyValidator(other, op, "other series"),
	); err != nil {
		return err
	}
	if s.DType() != other.DType() {
		return errors.NewTypeMismatchError(op, other.name, s.DType(), other.DType())
	}
	return nil
}

func (s *Series[T]) arith(op common.Operator, other *Series[T], opts []OpOption[T]) error {
	name := arithOpNames[op]
	if err := s.checkBinary(name, other); err != nil {
		return err
	}
	if !common.IsNumericKind(reflect.TypeFor[T]()) {
		return errors.NewUnsupportedTypeError(name, s.DType())
	}

	var cfg opConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	// Work on copies so a failure leaves s untouched.
	idx := s.index.Clone()
	values := slices.Clone(s.values)

	for rp, label := range other.index.Labels() {
		right := other.values[rp]
		lp, ok := idx.Position(label)
		if !ok {
			v, err := absent(op, right)
			if err != nil {
				return err
			}
			if err := idx.Append(label); err != nil {
				return err
			}
			values = append(values, v)
			continue
		}

		v, err := combine(op, values[lp], right)
		if err != nil {
			return err
		}
		values[lp] = v
	}

	if err := validation.ValidateCapacity(len(values), s.limit, name); err != nil {
		return err
	}

	if cfg.hasFill {
		for p, v := range values {
			if missing.IsNaN(v) {
				values[p] = cfg.fill
			}
		}
	}

	s.name = common.FormatBinaryOperation(s.name, op.String(), other.name)
	s.index = idx
	s.values = values
	s.invalidate()
	return nil
}

// absent is the value appended for a label that only the right operand holds
func absent[T any](op common.Operator, right T) (T, error) {
	var zero T
	switch op {
	case common.OpAdd:
		return right, nil
	case common.OpSub:
		if missing.IsNaN(right) {
			return right, nil
		}
		return negate(right)
	default:
		return zero, nil
	}
}

// combine applies op to a pair of values bound to the same label
func combine[T any](op common.Operator, left, right T) (T, error) {
	var zero T
	leftMissing, rightMissing := missing.IsNaN(left), missing.IsNaN(right)

	switch op {
	case common.OpAdd:
		if leftMissing || rightMissing {
			nan, _ := missing.Value[T]()
			return nan, nil
		}
	case common.OpSub:
		if leftMissing || rightMissing {
			if rightMissing {
				return right, nil
			}
			return negate(right)
		}
		if common.Underflows(left, right) {
			return zero, errors.NewInvalidInputError("Sub", "unsigned result would be negative")
		}
	case common.OpDiv:
		if leftMissing || common.IsZero(left) {
			return zero, nil
		}
		if rightMissing || common.IsZero(right) {
			inf, ok := common.PositiveInf[T]()
			if !ok {
				return zero, errors.NewDivideByZeroError("Div", "integer division by zero")
			}
			return inf, nil
		}
	}

	v, ok := common.Arith(op, left, right)
	if !ok {
		return zero, errors.NewUnsupportedTypeError(arithOpNames[op], reflect.TypeFor[T]().String())
	}
	return v, nil
}

func negate[T any](v T) (T, error) {
	n, ok := common.Negate(v)
	if !ok {
		return n, errors.NewInvalidInputError("Sub", "cannot negate unsigned value")
	}
	return n, nil
}
