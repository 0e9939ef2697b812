// Package dataframe provides a named collection of Series sharing one label index
package dataframe

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/paveg/panda/internal/common"
	"github.com/paveg/panda/internal/config"
	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/index"
	"github.com/paveg/panda/internal/missing"
	"github.com/paveg/panda/internal/series"
	"github.com/paveg/panda/internal/validation"
)

// DataFrame represents a table of same-typed columns aligned on one index
type DataFrame[T any] struct {
	columns map[string]*series.Series[T]
	order   []string // Maintains column order
	index   *index.Index
}

// New creates an empty DataFrame
func New[T any]() *DataFrame[T] {
	return &DataFrame[T]{
		columns: make(map[string]*series.Series[T]),
		index:   newIndex(nil),
	}
}

func newIndex(labels []string) *index.Index {
	idx, err := index.New(labels, config.GetGlobalConfig().IndexName)
	if err != nil {
		// labels always come from an existing index
		panic(err)
	}
	return idx
}

// FromColumns creates a DataFrame with empty columns ready for AddRow
func FromColumns[T any](names ...string) (*DataFrame[T], error) {
	if len(names) == 0 {
		return nil, errors.NewEmptyError("FromColumns", "column names")
	}
	df := New[T]()
	for _, name := range names {
		if err := validation.ValidateName(name, "FromColumns", "column name"); err != nil {
			return nil, err
		}
		s, err := series.Empty[T](series.WithName(name))
		if err != nil {
			return nil, err
		}
		if err := df.AddColumn(name, s); err != nil {
			return nil, err
		}
	}
	return df, nil
}

// FromSeries creates a DataFrame with one column per Series, named after it
func FromSeries[T any](list ...*series.Series[T]) (*DataFrame[T], error) {
	if len(list) == 0 {
		return nil, errors.NewEmptyError("FromSeries", "series list")
	}
	df := New[T]()
	for _, s := range list {
		if err := df.AddSeries(s); err != nil {
			return nil, err
		}
	}
	return df, nil
}

// FromMatrix creates a DataFrame from row-major values with positional labels
func FromMatrix[T any](rows [][]T, columns []string) (*DataFrame[T], error) {
	if len(rows) == 0 {
		return nil, errors.NewEmptyError("FromMatrix", "rows")
	}
	df, err := FromColumns[T](columns...)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := df.AddRow(row, ""); err != nil {
			return nil, err
		}
	}
	return df, nil
}

// FromMap creates a DataFrame from named Series. Columns are ordered by name
// and each Series is renamed to its key.
func FromMap[T any](data map[string]*series.Series[T]) (*DataFrame[T], error) {
	if len(data) == 0 {
		return nil, errors.NewEmptyError("FromMap", "data")
	}

	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	slices.Sort(names)

	df := New[T]()
	for _, name := range names {
		s := data[name]
		if s.IsNull() {
			return nil, errors.NewEmptyError("FromMap", "series '"+name+"'")
		}
		if err := df.AddColumn(name, s); err != nil {
			return nil, err
		}
	}
	// Rename only once every column is accepted.
	for _, name := range names {
		if err := data[name].SetName(name); err != nil {
			return nil, err
		}
	}
	return df, nil
}

// AddColumn adds s under name. The first column establishes the index;
// later columns must carry an equal index.
func (df *DataFrame[T]) AddColumn(name string, s *series.Series[T]) error {
	if df == nil {
		return errors.NewEmptyError("AddColumn", "dataframe")
	}
	if err := validation.ValidateName(name, "AddColumn", "column name"); err != nil {
		return err
	}
	if s.IsNull() {
		return errors.NewEmptyError("AddColumn", "series")
	}
	if df.HasColumn(name) {
		return errors.NewDuplicateColumnError("AddColumn", name)
	}

	if df.Width() == 0 {
		df.index = newIndex(s.Labels())
	} else {
		equal, err := s.IndexEquals(df.index)
		if err != nil {
			return err
		}
		if !equal {
			return errors.NewValidationError("AddColumn", name, "series index does not match the DataFrame index")
		}
	}

	if df.columns == nil {
		df.columns = make(map[string]*series.Series[T])
	}
	df.columns[name] = s
	df.order = append(df.order, name)
	return nil
}

// AddSeries adds s as a column named after it
func (df *DataFrame[T]) AddSeries(s *series.Series[T]) error {
	if s.IsNull() {
		return errors.NewEmptyError("AddSeries", "series")
	}
	return df.AddColumn(s.Name(), s)
}

// AddRow appends one value per column under label. An empty label uses the
// current row count. Either every column grows or none does.
func (df *DataFrame[T]) AddRow(row []T, label string) error {
	if df.Width() == 0 {
		return errors.NewEmptyError("AddRow", "columns")
	}
	if err := validation.ValidateLength(df.Width(), len(row), "AddRow", "row"); err != nil {
		return err
	}
	if label == "" {
		label = strconv.Itoa(df.index.Len())
	}
	if df.index.Contains(label) {
		return errors.NewDuplicateLabelError("AddRow", label)
	}
	for _, name := range df.order {
		s := df.columns[name]
		if s.Contains(label) {
			return errors.NewDuplicateLabelError("AddRow", label)
		}
		if err := validation.ValidateCapacity(s.Len()+1, s.Limit(), "AddRow"); err != nil {
			return err
		}
	}

	for i, name := range df.order {
		if err := df.columns[name].Append(label, row[i]); err != nil {
			return err
		}
	}
	return df.index.Append(label)
}

// Column returns the Series stored under name
func (df *DataFrame[T]) Column(name string) (*series.Series[T], error) {
	if err := validation.ValidateColumns(df, "Column", name); err != nil {
		return nil, err
	}
	return df.columns[name], nil
}

// Row materializes the values at position pos across all columns
func (df *DataFrame[T]) Row(pos int) (Row, error) {
	if err := validation.ValidateIndex(pos, df.Len(), "Row"); err != nil {
		return nil, err
	}
	row := make(Row, 0, df.Width())
	for _, name := range df.order {
		v, err := df.columns[name].At(pos)
		if err != nil {
			return nil, err
		}
		row = append(row, v)
	}
	return row, nil
}

// At returns the value of column at position pos
func (df *DataFrame[T]) At(column string, pos int) (T, error) {
	var zero T
	if err := validation.ValidateAll(
		validation.NewColumnValidator(df, "At", column),
		validation.NewIndexValidator(pos, df.Len(), "At"),
	); err != nil {
		return zero, err
	}
	return df.columns[column].At(pos)
}

// SetAt replaces the value of column at position pos. Nil values are rejected.
func (df *DataFrame[T]) SetAt(column string, pos int, value T) error {
	if missing.IsNull(value) {
		return errors.NewValidationError("SetAt", column, "value cannot be nil")
	}
	if err := validation.ValidateAll(
		validation.NewColumnValidator(df, "SetAt", column),
		validation.NewIndexValidator(pos, df.Len(), "SetAt"),
	); err != nil {
		return err
	}
	return df.columns[column].SetAt(pos, value)
}

// Select returns a new DataFrame with only the named columns, in the given order
func (df *DataFrame[T]) Select(names ...string) (*DataFrame[T], error) {
	if len(names) == 0 {
		return nil, errors.NewEmptyError("Select", "column names")
	}
	if err := validation.ValidateColumns(df, "Select", names...); err != nil {
		return nil, err
	}

	out := New[T]()
	for _, name := range names {
		if err := out.AddColumn(name, df.columns[name]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Drop returns a new DataFrame without the named columns
func (df *DataFrame[T]) Drop(names ...string) (*DataFrame[T], error) {
	if err := validation.ValidateColumns(df, "Drop", names...); err != nil {
		return nil, err
	}

	out := New[T]()
	out.index = df.Index()
	for _, name := range df.order {
		if slices.Contains(names, name) {
			continue
		}
		if err := out.AddColumn(name, df.columns[name]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Slice returns a new DataFrame with copies of rows [start, end)
func (df *DataFrame[T]) Slice(start, end int) (*DataFrame[T], error) {
	if start < 0 || end > df.Len() || start >= end {
		return nil, errors.NewInvalidInputError("Slice",
			fmt.Sprintf("invalid range [%d, %d) for %d rows", start, end, df.Len()))
	}

	labels := df.index.Labels()[start:end]
	out := New[T]()
	for _, name := range df.order {
		src := df.columns[name]
		s, err := series.FromLabeled(src.Values()[start:end], labels,
			series.WithName(src.Name()), series.WithLimit(src.Limit()))
		if err != nil {
			return nil, err
		}
		if err := out.AddColumn(name, s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Columns returns the names of all columns in order
func (df *DataFrame[T]) Columns() []string {
	if df == nil || len(df.order) == 0 {
		return []string{}
	}
	return append([]string(nil), df.order...)
}

// Index returns a snapshot of the shared index
func (df *DataFrame[T]) Index() *index.Index {
	if df == nil || df.index == nil {
		return newIndex(nil)
	}
	return df.index.Clone()
}

// Len returns the number of rows
func (df *DataFrame[T]) Len() int {
	if df == nil {
		return 0
	}
	return df.index.Len()
}

// Width returns the number of columns
func (df *DataFrame[T]) Width() int {
	if df == nil {
		return 0
	}
	return len(df.order)
}

// Shape returns the number of rows and columns
func (df *DataFrame[T]) Shape() (rows, cols int) {
	return df.Len(), df.Width()
}

// HasColumn checks if a column exists
func (df *DataFrame[T]) HasColumn(name string) bool {
	if df == nil {
		return false
	}
	_, exists := df.columns[name]
	return exists
}

// String renders the DataFrame as a padded table
func (df *DataFrame[T]) String() string {
	if df.Width() == 0 {
		return "DataFrame[empty]"
	}

	cfg := config.GetGlobalConfig()
	sf := common.NewStringFormatter()

	rows := df.Len()
	shown := rows
	if cfg.MaxDisplayRows > 0 && shown > cfg.MaxDisplayRows {
		shown = cfg.MaxDisplayRows
	}

	header := append([]string{df.index.Name()}, df.order...)
	cells := make([][]string, shown)
	for p := range cells {
		label, _ := df.index.At(p)
		line := []string{label}
		for _, name := range df.order {
			v, _ := df.columns[name].At(p)
			line = append(line, fmt.Sprint(v))
		}
		cells[p] = line
	}

	widths := make([]int, len(header))
	for c, h := range header {
		widths[c] = max(cfg.MinColumnWidth, len(h))
		for _, line := range cells {
			widths[c] = max(widths[c], len(line[c]))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "DataFrame[%dx%d]\n", rows, df.Width())
	for c, h := range header {
		if c > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(sf.PadRight(h, widths[c]))
	}
	sb.WriteString("\n")
	for _, line := range cells {
		for c, cell := range line {
			if c > 0 {
				sb.WriteString(" ")
			}
			if c == 0 {
				sb.WriteString(sf.PadRight(cell, widths[c]))
			} else {
				sb.WriteString(sf.PadLeft(cell, widths[c]))
			}
		}
		sb.WriteString("\n")
	}
	if shown < rows {
		fmt.Fprintf(&sb, "... (%d more rows)\n", rows-shown)
	}
	return sb.String()
}
