package series

import (
	"math"
	"testing"

	dferrors "github.com/paveg/panda/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaNCounts(t *testing.T) {
	tests := []struct {
		name      string
		series    func() (*Series[float64], error)
		hasNaNs   bool
		nanCount  int
		presCount int
	}{
		{"no missing", func() (*Series[float64], error) { return New([]float64{1, 2}) }, false, 0, 2},
		{"some missing", func() (*Series[float64], error) { return New([]float64{1, nan(), 3, nan()}) }, true, 2, 2},
		{"all missing", func() (*Series[float64], error) { return New([]float64{nan()}) }, true, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.series()
			require.NoError(t, err)

			has, err := s.HasNaNs()
			require.NoError(t, err)
			assert.Equal(t, tt.hasNaNs, has)

			n, err := s.CountNaN()
			require.NoError(t, err)
			assert.Equal(t, tt.nanCount, n)

			c, err := s.Count()
			require.NoError(t, err)
			assert.Equal(t, tt.presCount, c)
		})
	}
}

func TestStringMissing(t *testing.T) {
	s, err := New([]string{"a", "", "c"})
	require.NoError(t, err)

	n, err := s.CountNaN()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, s.FillNaN("b"))
	assert.Equal(t, []string{"a", "b", "c"}, s.Values())
}

func TestRemoveNaN(t *testing.T) {
	s := mustLabeled([]float64{1, nan(), 3}, "a", "b", "c")
	require.NoError(t, s.SetName("m"))

	out, err := s.RemoveNaN()
	require.NoError(t, err)

	has, err := out.HasNaNs()
	require.NoError(t, err)
	assert.False(t, has)
	assert.Equal(t, []string{"a", "c"}, out.Labels())
	assert.Equal(t, []float64{1, 3}, out.Values())
	assert.Equal(t, "m", out.Name())
	assert.Equal(t, 3, s.Len())

	onlyMissing := mustLabeled([]float64{nan(), nan()}, "a", "b")
	_, err = onlyMissing.RemoveNaN()
	assert.ErrorIs(t, err, dferrors.ErrNullOrEmpty)
}

func TestFillNaN(t *testing.T) {
	s := mustLabeled([]float64{nan(), 2, nan()}, "a", "b", "c")

	require.NoError(t, s.FillNaN(0))
	once := s.Values()
	require.NoError(t, s.FillNaN(0))
	assert.Equal(t, once, s.Values())
	assert.Equal(t, []float64{0, 2, 0}, once)

	assert.ErrorIs(t, s.FillNaN(math.NaN()), dferrors.ErrInvalidArgument)
}
