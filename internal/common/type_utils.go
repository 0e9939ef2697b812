package common

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// TypeConverter provides common type conversion utilities.
type TypeConverter struct{}

// NewTypeConverter creates a new TypeConverter instance.
func NewTypeConverter() *TypeConverter {
	return &TypeConverter{}
}

// ToInt64 converts numeric, boolean and string values to int64.
func (tc *TypeConverter) ToInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%T value %d overflows int64 range", value, u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || f > math.MaxInt64 || f < math.MinInt64 {
			return 0, fmt.Errorf("%T value %f overflows int64 range", value, f)
		}
		return int64(f), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", value)
	}
}

// ToFloat64 converts numeric, boolean and string values to float64.
func (tc *TypeConverter) ToFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(v, 64)
	case bool:
		if v {
			return 1.0, nil
		}
		return 0.0, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// ToString converts various types to string.
func (tc *TypeConverter) ToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%g", v)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
func (tc *TypeConverter) ToBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0.0, nil
	default:
		return false, fmt.Errorf("cannot convert %T to bool", value)
	}
}

// Convert converts value to the element type U.
// Numeric targets go through ToInt64/ToFloat64 and are range-checked.
func Convert[U any](tc *TypeConverter, value any) (U, error) {
	var zero U
	if v, ok := value.(U); ok {
		return v, nil
	}

	target := reflect.TypeFor[U]()
	out := reflect.New(target).Elem()

	switch target.Kind() {
	case reflect.Interface:
		if reflect.TypeOf(value) != nil && reflect.TypeOf(value).Implements(target) {
			out.Set(reflect.ValueOf(value))
			return out.Interface().(U), nil
		}
	case reflect.String:
		out.SetString(tc.ToString(value))
		return out.Interface().(U), nil
	case reflect.Bool:
		b, err := tc.ToBool(value)
		if err != nil {
			return zero, err
		}
		out.SetBool(b)
		return out.Interface().(U), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := tc.ToInt64(value)
		if err != nil {
			return zero, err
		}
		if out.OverflowInt(i) {
			return zero, fmt.Errorf("value %d overflows %s", i, target)
		}
		out.SetInt(i)
		return out.Interface().(U), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, err := tc.ToInt64(value)
		if err != nil {
			return zero, err
		}
		if i < 0 || out.OverflowUint(uint64(i)) {
			return zero, fmt.Errorf("value %d overflows %s", i, target)
		}
		out.SetUint(uint64(i))
		return out.Interface().(U), nil
	case reflect.Float32, reflect.Float64:
		f, err := tc.ToFloat64(value)
		if err != nil {
			return zero, err
		}
		if !math.IsInf(f, 0) && !math.IsNaN(f) && out.OverflowFloat(f) {
			return zero, fmt.Errorf("value %g overflows %s", f, target)
		}
		out.SetFloat(f)
		return out.Interface().(U), nil
	}
	return zero, fmt.Errorf("cannot convert %T to %s", value, target)
}

// IsNumericKind reports whether t is an integer or floating-point type.
func IsNumericKind(t reflect.Type) bool {
	return IsIntegerKind(t) || IsFloatKind(t)
}

// IsIntegerKind reports whether t is a signed or unsigned integer type.
func IsIntegerKind(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// IsUnsignedKind reports whether t is an unsigned integer type.
func IsUnsignedKind(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// IsFloatKind reports whether t is a floating-point type.
func IsFloatKind(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
}

// IsOrderedKind reports whether values of t support < and >.
func IsOrderedKind(t reflect.Type) bool {
	return IsNumericKind(t) || (t != nil && t.Kind() == reflect.String)
}

// TypeName returns the dtype name of t: the Go type name, or "object" for interfaces.
func TypeName(t reflect.Type) string {
	if t == nil || t.Kind() == reflect.Interface {
		return "object"
	}
	return t.String()
}

// Default converter instance for convenience.
var defaultConverter = NewTypeConverter()

// ToFloat64 converts various types to float64 using the default converter.
func ToFloat64(value any) (float64, error) {
	return defaultConverter.ToFloat64(value)
}

// ToString converts various types to string using the default converter.
func ToString(value any) string {
	return defaultConverter.ToString(value)
}

// ConvertTo converts value to U using the default converter.
func ConvertTo[U any](value any) (U, error) {
	return Convert[U](defaultConverter, value)
}
