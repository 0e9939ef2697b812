package dataframe

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/series"
)

// ToRecord exports the DataFrame as an Arrow record. The index becomes the
// first string field, followed by one field per column. The caller owns the
// record and must Release it.
func (df *DataFrame[T]) ToRecord(mem memory.Allocator) (arrow.Record, error) {
	if df.Width() == 0 {
		return nil, errors.NewEmptyError("ToRecord", "columns")
	}
	dt, err := series.ArrowTypeOf[T]()
	if err != nil {
		return nil, err
	}
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	fields := make([]arrow.Field, 0, df.Width()+1)
	cols := make([]arrow.Array, 0, df.Width()+1)
	defer func() {
		for _, col := range cols {
			col.Release()
		}
	}()

	idx := df.Index()
	fields = append(fields, arrow.Field{Name: idx.Name(), Type: arrow.BinaryTypes.String})
	labels := array.NewStringBuilder(mem)
	defer labels.Release()
	labels.AppendValues(idx.Labels(), nil)
	cols = append(cols, labels.NewArray())

	for _, name := range df.order {
		arr, err := df.columns[name].ToArrow(mem)
		if err != nil {
			return nil, err
		}
		cols = append(cols, arr)
		fields = append(fields, arrow.Field{Name: name, Type: dt, Nullable: true})
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, cols, int64(df.Len())), nil
}
