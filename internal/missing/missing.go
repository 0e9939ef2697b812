// Package missing decides whether a value is "missing" (NaN) and provides
// the sentinel a missing result takes for a given element type.
package missing

import (
	"math"
	"reflect"
)

// Read-only numeric constants shared by the library.
const (
	Pi = math.Pi
	E  = math.E
)

// NaN returns the floating-point missing sentinel.
func NaN() float64 {
	return math.NaN()
}

// IsNaN reports whether v is missing: a floating NaN, a nil reference or an empty string.
func IsNaN[T any](v T) bool {
	return IsMissing(any(v))
}

// IsMissing is the type-erased form of IsNaN.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	case string:
		return x == ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	case reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// IsNull reports whether v is a nil reference. Unlike IsMissing it accepts NaN and "".
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// Value returns the missing sentinel of T. The boolean is false when T cannot
// represent a missing value (integers, booleans, structs).
func Value[T any]() (T, bool) {
	var zero T
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		out := reflect.New(t).Elem()
		out.SetFloat(math.NaN())
		return out.Interface().(T), true
	case reflect.String, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return zero, true
	default:
		return zero, false
	}
}
