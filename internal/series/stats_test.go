package series

import (
	"math"
	"testing"

	dferrors "github.com/paveg/panda/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	s, err := New([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	tests := []struct {
		name string
		fn   func() (float64, error)
		want float64
	}{
		{"sum", s.Sum, 15},
		{"prod", s.Prod, 120},
		{"mean", s.Mean, 3},
		{"median", s.Median, 3},
		{"max", s.Max, 5},
		{"min", s.Min, 1},
		{"var", s.Var, 2.5},
		{"std", s.Std, 1.5811},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-4)
		})
	}
}

func TestMedian(t *testing.T) {
	even, err := New([]int{1, 3, 2, 4})
	require.NoError(t, err)
	m, err := even.Median()
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	odd, err := New([]int{1, 3, 2})
	require.NoError(t, err)
	m, err = odd.Median()
	require.NoError(t, err)
	assert.Equal(t, 2.0, m)
}

func TestMode(t *testing.T) {
	s, err := New([]float64{3, 1, 1, nan(), 3, 2})
	require.NoError(t, err)

	mode, err := s.Mode()
	require.NoError(t, err)
	assert.Equal(t, 3.0, mode)

	si, err := New([]int{4, 2, 2, 9})
	require.NoError(t, err)
	mode, err = si.Mode()
	require.NoError(t, err)
	assert.Equal(t, 2.0, mode)
}

func TestStatisticsSkipMissing(t *testing.T) {
	s, err := New([]float64{nan(), 2, 4, nan()})
	require.NoError(t, err)

	mean, err := s.Mean()
	require.NoError(t, err)
	assert.Equal(t, 3.0, mean)

	sum, err := s.Sum()
	require.NoError(t, err)
	assert.Equal(t, 6.0, sum)

	has, err := s.HasNaNs()
	require.NoError(t, err)
	assert.True(t, has)
}

func TestStatisticsAllMissing(t *testing.T) {
	s, err := New([]float64{nan(), nan()})
	require.NoError(t, err)

	sum, err := s.Sum()
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum)

	prod, err := s.Prod()
	require.NoError(t, err)
	assert.Equal(t, 1.0, prod)

	_, err = s.Mean()
	assert.ErrorIs(t, err, dferrors.ErrDivideByZero)

	for _, fn := range []func() (float64, error){s.Median, s.Mode, s.Max, s.Min} {
		_, err = fn()
		assert.ErrorIs(t, err, dferrors.ErrNullOrEmpty)
	}

	v, err := s.Var()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestVarSingleValue(t *testing.T) {
	s, err := New([]float64{7})
	require.NoError(t, err)

	v, err := s.Var()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	sd, err := s.Std()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(sd))
}

func TestStatisticsUnsupportedType(t *testing.T) {
	s, err := New([]string{"a", "b"})
	require.NoError(t, err)

	_, err = s.Sum()
	assert.ErrorIs(t, err, dferrors.ErrTypeMismatch)
	_, err = s.Mean()
	assert.ErrorIs(t, err, dferrors.ErrTypeMismatch)
}

func TestUniqueness(t *testing.T) {
	s, err := New([]float64{1, nan(), 1, 2})
	require.NoError(t, err)

	n, err := s.CountUnique(true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.CountUnique(false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list, err := s.ListUnique(true)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, list)

	unique, err := s.IsUnique()
	require.NoError(t, err)
	assert.False(t, unique)
}

func TestIsUniqueCacheInvalidation(t *testing.T) {
	s, err := New([]int{1, 2, 3})
	require.NoError(t, err)

	unique, err := s.IsUnique()
	require.NoError(t, err)
	assert.True(t, unique)

	n, err := s.CountUnique(false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, s.SetAt(2, 1))
	unique, err = s.IsUnique()
	require.NoError(t, err)
	assert.False(t, unique)

	n, err = s.CountUnique(false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUniqueNonComparable(t *testing.T) {
	s, err := New([]any{[]int{1}, []int{1}, "x", nil})
	require.NoError(t, err)

	n, err := s.CountUnique(false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.CountUnique(true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestEquals(t *testing.T) {
	a := named(mustLabeled([]float64{1, nan()}, "a", "b"), "s")
	b := named(mustLabeled([]float64{1, nan()}, "a", "b"), "s")
	renamed := named(mustLabeled([]float64{1, nan()}, "a", "b"), "other")
	relabeled := named(mustLabeled([]float64{1, nan()}, "x", "y"), "s")
	reordered := named(mustLabeled([]float64{nan(), 1}, "b", "a"), "s")

	tests := []struct {
		name  string
		other *Series[float64]
		deep  bool
		want  bool
	}{
		{"reflexive", a, true, true},
		{"equal", b, true, true},
		{"name differs deep", renamed, true, false},
		{"name differs shallow", renamed, false, true},
		{"labels differ deep", relabeled, true, false},
		{"labels differ shallow", relabeled, false, true},
		{"order differs", reordered, false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Equals(tt.other, tt.deep)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if tt.other != nil {
				back, err := tt.other.Equals(a, tt.deep)
				require.NoError(t, err)
				assert.Equal(t, tt.want, back)
			}
		})
	}
}
