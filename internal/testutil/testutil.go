// Package testutil provides shared fixtures and assertions for Series and
// DataFrame tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/panda/internal/dataframe"
	"github.com/paveg/panda/internal/missing"
	"github.com/paveg/panda/internal/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// defaultRowCount is the default number of rows in test DataFrames.
	defaultRowCount = 4
)

// SetupMemoryTest returns a checked allocator that fails the test if any
// Arrow buffer is still allocated when the test ends.
func SetupMemoryTest(tb testing.TB) *memory.CheckedAllocator {
	tb.Helper()
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	tb.Cleanup(func() { mem.AssertSize(tb, 0) })
	return mem
}

// TestDataFrameOption configures test DataFrame creation.
type TestDataFrameOption func(*testDataFrameConfig)

type testDataFrameConfig struct {
	includeNaNs bool
	rowCount    int
	withBonus   bool
}

// WithNaNs puts a missing value in the first row of every column.
func WithNaNs() TestDataFrameOption {
	return func(cfg *testDataFrameConfig) {
		cfg.includeNaNs = true
	}
}

// WithRowCount sets the number of rows in test data.
func WithRowCount(count int) TestDataFrameOption {
	return func(cfg *testDataFrameConfig) {
		cfg.rowCount = count
	}
}

// WithBonusColumn includes a 'bonus' column.
func WithBonusColumn() TestDataFrameOption {
	return func(cfg *testDataFrameConfig) {
		cfg.withBonus = true
	}
}

// CreateTestDataFrame creates an employee DataFrame labeled by first name.
//
// Default DataFrame includes:
// - age: [25, 30, 35, 28]
// - salary: [100000, 80000, 120000, 75000]
func CreateTestDataFrame(tb testing.TB, opts ...TestDataFrameOption) *dataframe.DataFrame[float64] {
	tb.Helper()
	cfg := &testDataFrameConfig{rowCount: defaultRowCount}
	for _, opt := range opts {
		opt(cfg)
	}

	labels := generateNames(cfg.rowCount)
	columns := map[string][]float64{
		"age":    generateValues(cfg.rowCount, []float64{25, 30, 35, 28, 32, 45, 29, 38}),
		"salary": generateValues(cfg.rowCount, []float64{100000, 80000, 120000, 75000, 90000, 110000, 95000, 85000}),
	}
	order := []string{"age", "salary"}
	if cfg.withBonus {
		columns["bonus"] = generateValues(cfg.rowCount, []float64{5000, 0, 7500, 2500})
		order = append(order, "bonus")
	}

	df := dataframe.New[float64]()
	for _, name := range order {
		values := columns[name]
		if cfg.includeNaNs && len(values) > 0 {
			values[0] = missing.NaN()
		}
		s, err := series.FromLabeled(values, labels, series.WithName(name))
		require.NoError(tb, err)
		require.NoError(tb, df.AddSeries(s))
	}
	return df
}

// CreateTestSeries creates a float Series from values labeled by labels,
// or positionally when no labels are given.
func CreateTestSeries(tb testing.TB, name string, values []float64, labels ...string) *series.Series[float64] {
	tb.Helper()
	var (
		s   *series.Series[float64]
		err error
	)
	if len(labels) == 0 {
		s, err = series.New(values, series.WithName(name))
	} else {
		s, err = series.FromLabeled(values, labels, series.WithName(name))
	}
	require.NoError(tb, err)
	return s
}

// AssertSeriesEqual checks labels, name and values, treating two missing values as equal.
func AssertSeriesEqual[T any](tb testing.TB, expected, actual *series.Series[T]) {
	tb.Helper()
	require.NotNil(tb, expected, "expected Series should not be nil")
	require.NotNil(tb, actual, "actual Series should not be nil")

	assert.Equal(tb, expected.Labels(), actual.Labels(), "labels should match")
	assert.Equal(tb, expected.Name(), actual.Name(), "names should match")
	equal, err := expected.Equals(actual, false)
	require.NoError(tb, err)
	assert.True(tb, equal, "values should match: expected %v, got %v", expected.Values(), actual.Values())
}

// AssertDataFrameEqual performs a column by column comparison of DataFrames.
func AssertDataFrameEqual[T any](tb testing.TB, expected, actual *dataframe.DataFrame[T]) {
	tb.Helper()
	require.NotNil(tb, expected, "expected DataFrame should not be nil")
	require.NotNil(tb, actual, "actual DataFrame should not be nil")

	assert.Equal(tb, expected.Columns(), actual.Columns(), "DataFrame columns should match")
	assert.Equal(tb, expected.Index().Labels(), actual.Index().Labels(), "DataFrame index should match")

	for _, name := range expected.Columns() {
		expectedCol, err := expected.Column(name)
		require.NoError(tb, err)
		actualCol, err := actual.Column(name)
		require.NoError(tb, err, "actual column %s should exist", name)
		AssertSeriesEqual(tb, expectedCol, actualCol)
	}
}

// AssertDataFrameHasColumns verifies that a DataFrame has exactly the expected columns.
func AssertDataFrameHasColumns[T any](tb testing.TB, df *dataframe.DataFrame[T], expectedColumns []string) {
	tb.Helper()
	require.NotNil(tb, df, "DataFrame should not be nil")

	assert.Len(tb, df.Columns(), len(expectedColumns), "column count should match")
	for _, col := range expectedColumns {
		assert.True(tb, df.HasColumn(col), "DataFrame should have column %s", col)
	}
}

func generateNames(count int) []string {
	baseNames := []string{"Alice", "Bob", "Charlie", "David", "Eve", "Frank", "Grace", "Henry"}
	names := make([]string, count)
	for i := range count {
		names[i] = baseNames[i%len(baseNames)]
		if i >= len(baseNames) {
			names[i] = fmt.Sprintf("%s_%d", names[i], i/len(baseNames))
		}
	}
	return names
}

func generateValues(count int, base []float64) []float64 {
	values := make([]float64, count)
	for i := range count {
		values[i] = base[i%len(base)]
	}
	return values
}
