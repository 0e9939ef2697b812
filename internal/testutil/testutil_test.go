package testutil_test

import (
	"math"
	"testing"

	"github.com/paveg/panda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMemoryTest(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	require.NotNil(t, mem)

	df := testutil.CreateTestDataFrame(t)
	rec, err := df.ToRecord(mem)
	require.NoError(t, err)
	rec.Release()
}

func TestCreateTestDataFrame(t *testing.T) {
	t.Run("default configuration", func(t *testing.T) {
		df := testutil.CreateTestDataFrame(t)

		assert.Equal(t, 4, df.Len())
		testutil.AssertDataFrameHasColumns(t, df, []string{"age", "salary"})
		assert.Equal(t, []string{"Alice", "Bob", "Charlie", "David"}, df.Index().Labels())
	})

	t.Run("with bonus column", func(t *testing.T) {
		df := testutil.CreateTestDataFrame(t, testutil.WithBonusColumn())
		testutil.AssertDataFrameHasColumns(t, df, []string{"age", "salary", "bonus"})
	})

	t.Run("with custom row count", func(t *testing.T) {
		df := testutil.CreateTestDataFrame(t, testutil.WithRowCount(10))
		assert.Equal(t, 10, df.Len())
		assert.Contains(t, df.Index().Labels(), "Alice_1")
	})

	t.Run("with NaNs", func(t *testing.T) {
		df := testutil.CreateTestDataFrame(t, testutil.WithNaNs())
		v, err := df.At("age", 0)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(v))
	})
}

func TestAssertions(t *testing.T) {
	a := testutil.CreateTestDataFrame(t, testutil.WithNaNs())
	b := testutil.CreateTestDataFrame(t, testutil.WithNaNs())
	testutil.AssertDataFrameEqual(t, a, b)

	s := testutil.CreateTestSeries(t, "x", []float64{1, math.NaN()})
	testutil.AssertSeriesEqual(t, s, s.Clone())
	assert.Equal(t, []string{"0", "1"}, s.Labels())
}
