package series

import (
	"testing"

	dferrors "github.com/paveg/panda/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopySemantics(t *testing.T) {
	s := named(mustLabeled([]int{1, 2}, "a", "b"), "src")

	clone, err := s.Copy(true)
	require.NoError(t, err)
	assert.Equal(t, s.Labels(), clone.Labels())
	assert.Equal(t, "src", clone.Name())
	require.NoError(t, clone.SetAt(0, 100))
	assert.Equal(t, []int{1, 2}, s.Values())

	rebuilt, err := s.Copy(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, rebuilt.Labels())
	assert.Equal(t, "Values", rebuilt.Name())
	require.NoError(t, rebuilt.SetAt(1, 200))
	assert.Equal(t, []int{1, 2}, s.Values())

	empty, err := Empty[int]()
	require.NoError(t, err)
	_, err = empty.Copy(true)
	assert.ErrorIs(t, err, dferrors.ErrNullOrEmpty)
}

func TestTranspose(t *testing.T) {
	s := named(mustLabeled([]int{1, 2}, "a", "b"), "src")
	tr := s.Transpose()
	eq, err := tr.Equals(s, true)
	require.NoError(t, err)
	assert.True(t, eq)
	require.NoError(t, tr.SetAt(0, 9))
	assert.Equal(t, []int{1, 2}, s.Values())

	var nilSeries *Series[int]
	assert.Nil(t, nilSeries.Transpose())
}

func TestApply(t *testing.T) {
	s := mustLabeled([]float64{1, 2}, "a", "b")

	out, err := s.Apply(func(v float64) float64 { return v * 10 })
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, out.Values())
	assert.Equal(t, []string{"a", "b"}, out.Labels())
	assert.Equal(t, []float64{1, 2}, s.Values())
}

func TestWhere(t *testing.T) {
	s := named(mustLabeled([]int{1, 5, 3, 8}, "a", "b", "c", "d"), "n")

	out, err := s.Where(func(v int) bool { return v > 2 })
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, out.Labels())
	assert.Equal(t, []int{5, 3, 8}, out.Values())
	assert.Equal(t, "n", out.Name())

	_, err = s.Where(func(v int) bool { return v > 100 })
	assert.ErrorIs(t, err, dferrors.ErrNotFound)
}

func TestFirst(t *testing.T) {
	s, err := New([]string{"apple", "banana", "blueberry"})
	require.NoError(t, err)

	startsWithB := func(v string) bool { return v[0] == 'b' }
	v, err := s.First(startsWithB)
	require.NoError(t, err)
	assert.Equal(t, "banana", v)

	never := func(string) bool { return false }
	_, err = s.First(never)
	assert.ErrorIs(t, err, dferrors.ErrNotFound)

	v, err = s.FirstOrDefault(never)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestOrderByIndex(t *testing.T) {
	s := mustLabeled([]int{2, 3, 1}, "b", "c", "a")

	asc, err := s.OrderByIndex("asc")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, asc.Labels())
	assert.Equal(t, []int{1, 2, 3}, asc.Values())

	desc, err := s.OrderByIndex("desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, desc.Labels())
	assert.Equal(t, []int{3, 2, 1}, desc.Values())

	_, err = s.OrderByIndex("random")
	assert.ErrorIs(t, err, dferrors.ErrInvalidArgument)
}

func TestConvert(t *testing.T) {
	s := mustLabeled([]float64{1.9, nan(), 3}, "a", "b", "c")

	ints, err := Convert[int](s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 3}, ints.Values())
	assert.Equal(t, []string{"a", "b", "c"}, ints.Labels())
	assert.Equal(t, "int", ints.DType())

	strs, err := Convert[string](mustLabeled([]int{1, 2}, "a", "b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, strs.Values())

	_, err = Convert[int](mustLabeled([]string{"1", "x"}, "a", "b"))
	assert.ErrorIs(t, err, dferrors.ErrTypeMismatch)
}

func TestToSliceAndMap(t *testing.T) {
	s := mustLabeled([]int{1, 2}, "a", "b")

	slice, err := s.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, slice)

	m, err := s.ToMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, m)
}
