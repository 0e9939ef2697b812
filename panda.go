// Package panda provides labeled, homogeneous Series and DataFrames with
// index-aligned arithmetic, missing value handling and descriptive statistics.
// This package is the sole public API for the library.
package panda

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/paveg/panda/internal/config"
	"github.com/paveg/panda/internal/dataframe"
	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/index"
	"github.com/paveg/panda/internal/missing"
	"github.com/paveg/panda/internal/series"
)

// Series is an ordered mapping from unique labels to values of one type.
type Series[T any] = series.Series[T]

// DataFrame is a named collection of Series sharing one index.
type DataFrame[T any] = dataframe.DataFrame[T]

// Index is an ordered sequence of unique labels.
type Index = index.Index

// Row is one DataFrame position materialized across all columns.
type Row = dataframe.Row

// SeriesOption configures Series construction.
type SeriesOption = series.Option

// OpOption configures aligned arithmetic.
type OpOption[T any] = series.OpOption[T]

// Config holds library-wide defaults.
type Config = config.Config

// DataFrameError is the error type returned by every operation.
type DataFrameError = errors.DataFrameError

// Error kinds, usable with errors.Is.
var (
	ErrNullOrEmpty      = errors.ErrNullOrEmpty
	ErrNotFound         = errors.ErrNotFound
	ErrDuplicateKey     = errors.ErrDuplicateKey
	ErrCapacityExceeded = errors.ErrCapacityExceeded
	ErrTypeMismatch     = errors.ErrTypeMismatch
	ErrInvalidArgument  = errors.ErrInvalidArgument
	ErrOutOfRange       = errors.ErrOutOfRange
	ErrDivideByZero     = errors.ErrDivideByZero
)

// NewSeries creates a Series with positional labels "0", "1", ...
func NewSeries[T any](values []T, opts ...SeriesOption) (*Series[T], error) {
	return series.New(values, opts...)
}

// SeriesFromLabeled creates a Series from parallel value and label lists.
func SeriesFromLabeled[T any](values []T, labels []string, opts ...SeriesOption) (*Series[T], error) {
	return series.FromLabeled(values, labels, opts...)
}

// SeriesFromMap creates a Series from a mapping; labels are sorted.
func SeriesFromMap[T any](data map[string]T, opts ...SeriesOption) (*Series[T], error) {
	return series.FromMap(data, opts...)
}

// EmptySeries creates a Series with no elements.
func EmptySeries[T any](opts ...SeriesOption) (*Series[T], error) {
	return series.Empty[T](opts...)
}

// SeriesFromArrow creates a Series from an Arrow array. Nil labels give positional labels.
func SeriesFromArrow[T any](arr arrow.Array, labels []string, opts ...SeriesOption) (*Series[T], error) {
	return series.FromArrow[T](arr, labels, opts...)
}

// WithName sets the Series display name.
func WithName(name string) SeriesOption {
	return series.WithName(name)
}

// WithLimit sets the maximum Series size.
func WithLimit(limit int) SeriesOption {
	return series.WithLimit(limit)
}

// WithFill fills missing results of an aligned operation with value.
func WithFill[T any](value T) OpOption[T] {
	return series.WithFill(value)
}

// Convert returns a copy of s with values converted to U.
func Convert[U, T any](s *Series[T]) (*Series[U], error) {
	return series.Convert[U](s)
}

// NewIndex creates an Index, rejecting duplicate labels.
func NewIndex(labels []string, name string) (*Index, error) {
	return index.New(labels, name)
}

// NewDataFrame creates an empty DataFrame.
func NewDataFrame[T any]() *DataFrame[T] {
	return dataframe.New[T]()
}

// DataFrameFromColumns creates a DataFrame with empty named columns.
func DataFrameFromColumns[T any](names ...string) (*DataFrame[T], error) {
	return dataframe.FromColumns[T](names...)
}

// DataFrameFromSeries creates a DataFrame with one column per Series.
func DataFrameFromSeries[T any](list ...*Series[T]) (*DataFrame[T], error) {
	return dataframe.FromSeries(list...)
}

// DataFrameFromMatrix creates a DataFrame from row-major values.
func DataFrameFromMatrix[T any](rows [][]T, columns []string) (*DataFrame[T], error) {
	return dataframe.FromMatrix(rows, columns)
}

// DataFrameFromMap creates a DataFrame from named Series, ordered by name.
func DataFrameFromMap[T any](data map[string]*Series[T]) (*DataFrame[T], error) {
	return dataframe.FromMap(data)
}

// IsNaN reports whether v is missing: NaN, nil or an empty string.
func IsNaN[T any](v T) bool {
	return missing.IsNaN(v)
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return config.NewConfig()
}

// SetConfig validates and installs cfg as the library-wide configuration.
func SetConfig(cfg Config) error {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	config.SetGlobalConfig(cfg)
	return nil
}

// GetConfig returns the library-wide configuration.
func GetConfig() Config {
	return config.GetGlobalConfig()
}

// LoadConfig reads a JSON or YAML configuration file and installs it.
func LoadConfig(filename string) error {
	cfg, err := config.LoadFromFile(filename)
	if err != nil {
		return err
	}
	return SetConfig(cfg)
}
