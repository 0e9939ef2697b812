package series

import (
	"fmt"
	"reflect"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/missing"
)

// ArrowTypeOf returns the Arrow data type matching the element type T
func ArrowTypeOf[T any]() (arrow.DataType, error) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Bool:
		return arrow.FixedWidthTypes.Boolean, nil
	case reflect.Int8:
		return arrow.PrimitiveTypes.Int8, nil
	case reflect.Int16:
		return arrow.PrimitiveTypes.Int16, nil
	case reflect.Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case reflect.Int, reflect.Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case reflect.Uint8:
		return arrow.PrimitiveTypes.Uint8, nil
	case reflect.Uint16:
		return arrow.PrimitiveTypes.Uint16, nil
	case reflect.Uint32:
		return arrow.PrimitiveTypes.Uint32, nil
	case reflect.Uint, reflect.Uint64:
		return arrow.PrimitiveTypes.Uint64, nil
	case reflect.Float32:
		return arrow.PrimitiveTypes.Float32, nil
	case reflect.Float64:
		return arrow.PrimitiveTypes.Float64, nil
	case reflect.String:
		return arrow.BinaryTypes.String, nil
	default:
		return nil, errors.NewUnsupportedTypeError("ArrowType", t.String())
	}
}

// ArrowType returns the Arrow data type of the Series elements
func (s *Series[T]) ArrowType() (arrow.DataType, error) {
	return ArrowTypeOf[T]()
}

// ToArrow builds an Arrow array from the values. Missing values become nulls.
// The caller owns the returned array and must Release it.
func (s *Series[T]) ToArrow(mem memory.Allocator) (arrow.Array, error) {
	dt, err := s.ArrowType()
	if err != nil {
		return nil, err
	}
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	builder := array.NewBuilder(mem, dt)
	defer builder.Release()
	builder.Reserve(s.Len())

	for _, v := range s.values {
		if missing.IsNaN(v) {
			builder.AppendNull()
			continue
		}
		rv := reflect.ValueOf(v)
		switch b := builder.(type) {
		case *array.BooleanBuilder:
			b.Append(rv.Bool())
		case *array.Int8Builder:
			b.Append(int8(rv.Int()))
		case *array.Int16Builder:
			b.Append(int16(rv.Int()))
		case *array.Int32Builder:
			b.Append(int32(rv.Int()))
		case *array.Int64Builder:
			b.Append(rv.Int())
		case *array.Uint8Builder:
			b.Append(uint8(rv.Uint()))
		case *array.Uint16Builder:
			b.Append(uint16(rv.Uint()))
		case *array.Uint32Builder:
			b.Append(uint32(rv.Uint()))
		case *array.Uint64Builder:
			b.Append(rv.Uint())
		case *array.Float32Builder:
			b.Append(float32(rv.Float()))
		case *array.Float64Builder:
			b.Append(rv.Float())
		case *array.StringBuilder:
			b.Append(rv.String())
		default:
			return nil, errors.NewUnsupportedTypeError("ToArrow", fmt.Sprintf("%T", builder))
		}
	}
	return builder.NewArray(), nil
}

// FromArrow creates a Series from an Arrow array. Nil labels give positional
// labels. Nulls are read back as the missing value of T.
func FromArrow[T any](arr arrow.Array, labels []string, opts ...Option) (*Series[T], error) {
	if arr == nil || arr.Len() == 0 {
		return nil, errors.NewEmptyError("FromArrow", "array")
	}
	dt, err := ArrowTypeOf[T]()
	if err != nil {
		return nil, err
	}
	if !arrow.TypeEqual(dt, arr.DataType()) {
		return nil, errors.NewTypeMismatchError("FromArrow", "", dt.String(), arr.DataType().String())
	}
	if labels == nil {
		labels = positionalLabels(arr.Len())
	}

	values := make([]T, arr.Len())
	for i := range values {
		if arr.IsNull(i) {
			nan, ok := missing.Value[T]()
			if !ok {
				return nil, errors.NewTypeMismatchError("FromArrow", "",
					"non-null "+dt.String(), "null at position "+fmt.Sprint(i))
			}
			values[i] = nan
			continue
		}

		out := reflect.ValueOf(&values[i]).Elem()
		switch a := arr.(type) {
		case *array.Boolean:
			out.SetBool(a.Value(i))
		case *array.Int8:
			out.SetInt(int64(a.Value(i)))
		case *array.Int16:
			out.SetInt(int64(a.Value(i)))
		case *array.Int32:
			out.SetInt(int64(a.Value(i)))
		case *array.Int64:
			out.SetInt(a.Value(i))
		case *array.Uint8:
			out.SetUint(uint64(a.Value(i)))
		case *array.Uint16:
			out.SetUint(uint64(a.Value(i)))
		case *array.Uint32:
			out.SetUint(uint64(a.Value(i)))
		case *array.Uint64:
			out.SetUint(a.Value(i))
		case *array.Float32:
			out.SetFloat(float64(a.Value(i)))
		case *array.Float64:
			out.SetFloat(a.Value(i))
		case *array.String:
			out.SetString(a.Value(i))
		default:
			return nil, errors.NewUnsupportedTypeError("FromArrow", arr.DataType().String())
		}
	}
	return FromLabeled(values, labels, opts...)
}
