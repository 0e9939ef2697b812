package common

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is any builtin integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Operator identifies a binary operator.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

// String returns the operator symbol
func (op Operator) String() string {
	return FormatEnum(int(op), BinaryOperatorMapping)
}

// Calc applies an arithmetic operator. Integer division by zero is the caller's concern.
func Calc[N Number](op Operator, x, y N) N {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	default:
		panic(fmt.Sprintf("not an arithmetic operator: %s", op))
	}
}

// CompareOrdered applies a comparison operator with native semantics (NaN compares false).
func CompareOrdered[O constraints.Ordered](op Operator, x, y O) bool {
	switch op {
	case OpEq:
		return x == y
	case OpNe:
		return x != y
	case OpLt:
		return x < y
	case OpLe:
		return x <= y
	case OpGt:
		return x > y
	case OpGe:
		return x >= y
	default:
		panic(fmt.Sprintf("not a comparison operator: %s", op))
	}
}

// Arith applies op to two values of the same numeric kind and stores the result
// in a value of their type. ok is false for non-numeric kinds.
func Arith[T any](op Operator, a, b T) (result T, ok bool) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	out := reflect.New(reflect.TypeFor[T]()).Elem()
	if out.Kind() != va.Kind() {
		return result, false
	}

	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		out.SetFloat(Calc(op, va.Float(), vb.Float()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(Calc(op, va.Int(), vb.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		out.SetUint(Calc(op, va.Uint(), vb.Uint()))
	default:
		return result, false
	}
	return out.Interface().(T), true
}

// Compare applies a comparison operator to two values of the same ordered kind.
// ok is false when the kind has no ordering.
func Compare[T any](op Operator, a, b T) (result bool, ok bool) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Kind() != vb.Kind() {
		return false, false
	}

	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		return CompareOrdered(op, va.Float(), vb.Float()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return CompareOrdered(op, va.Int(), vb.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return CompareOrdered(op, va.Uint(), vb.Uint()), true
	case reflect.String:
		return CompareOrdered(op, va.String(), vb.String()), true
	default:
		return false, false
	}
}

// IsZero reports whether a numeric value equals zero.
func IsZero[T any](v T) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	default:
		return false
	}
}

// Negate returns -v for a numeric value. ok is false when T is unsigned and
// v is not zero, since the result is not representable.
func Negate[T any](v T) (T, bool) {
	var zero T
	if IsUnsignedKind(reflect.TypeOf(v)) && !IsZero(v) {
		return zero, false
	}
	return Arith(OpSub, zero, v)
}

// Underflows reports whether a - b is negative for an unsigned T.
func Underflows[T any](a, b T) bool {
	if !IsUnsignedKind(reflect.TypeOf(a)) {
		return false
	}
	return reflect.ValueOf(a).Uint() < reflect.ValueOf(b).Uint()
}

// PositiveInf returns +Inf in T. ok is false when T is not a floating-point type.
func PositiveInf[T any]() (result T, ok bool) {
	out := reflect.New(reflect.TypeFor[T]()).Elem()
	if !IsFloatKind(out.Type()) {
		return result, false
	}
	out.SetFloat(math.Inf(1))
	return out.Interface().(T), true
}

// NumericValue converts a numeric value of any kind to float64.
func NumericValue[T any](v T) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}
