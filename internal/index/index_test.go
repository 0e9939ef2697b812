package index_test

import (
	"testing"

	"github.com/paveg/panda/internal/errors"
	"github.com/paveg/panda/internal/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	idx, err := index.New([]string{"a", "b", "c"}, "Index")
	require.NoError(t, err)

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, 3, idx.Size())
	assert.Equal(t, "Index", idx.Name())
	assert.Equal(t, []string{"a", "b", "c"}, idx.Labels())

	p, ok := idx.Position("b")
	assert.True(t, ok)
	assert.Equal(t, 1, p)
	assert.False(t, idx.Contains("z"))

	_, err = index.New([]string{"a", "a"}, "")
	assert.ErrorIs(t, err, errors.ErrDuplicateKey)
}

func TestAt(t *testing.T) {
	idx, err := index.New([]string{"x", "y"}, "")
	require.NoError(t, err)

	label, err := idx.At(1)
	require.NoError(t, err)
	assert.Equal(t, "y", label)

	_, err = idx.At(2)
	assert.ErrorIs(t, err, errors.ErrOutOfRange)
	_, err = idx.At(-1)
	assert.ErrorIs(t, err, errors.ErrOutOfRange)
}

func TestAppend(t *testing.T) {
	idx, err := index.New(nil, "")
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())

	require.NoError(t, idx.Append("a"))
	require.NoError(t, idx.Append("b"))
	assert.ErrorIs(t, idx.Append("a"), errors.ErrDuplicateKey)
	assert.Equal(t, []string{"a", "b"}, idx.Labels())
}

func TestLabelsIsSnapshot(t *testing.T) {
	idx, err := index.New([]string{"a", "b"}, "")
	require.NoError(t, err)

	labels := idx.Labels()
	labels[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, idx.Labels())

	clone := idx.Clone()
	require.NoError(t, clone.Append("c"))
	assert.Equal(t, 2, idx.Len())
	assert.False(t, idx.Contains("c"))
}

func TestEquals(t *testing.T) {
	abc, _ := index.New([]string{"a", "b", "c"}, "left")
	abc2, _ := index.New([]string{"a", "b", "c"}, "right")
	acb, _ := index.New([]string{"a", "c", "b"}, "")
	ab, _ := index.New([]string{"a", "b"}, "")

	tests := []struct {
		name     string
		left     *index.Index
		right    *index.Index
		expected bool
	}{
		{"same labels, different names", abc, abc2, true},
		{"reflexive", abc, abc, true},
		{"different order", abc, acb, false},
		{"different length", abc, ab, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := tt.left.Equals(tt.right)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, eq)
		})
	}

	_, err := abc.Equals(nil)
	assert.ErrorIs(t, err, errors.ErrNullOrEmpty)

	var nilIdx *index.Index
	_, err = nilIdx.Equals(abc)
	assert.ErrorIs(t, err, errors.ErrNullOrEmpty)
}

func TestFingerprint(t *testing.T) {
	ab, _ := index.New([]string{"a", "b"}, "")
	ab2, _ := index.New([]string{"a", "b"}, "other")
	joined, _ := index.New([]string{"ab"}, "")

	assert.Equal(t, ab.Fingerprint(), ab2.Fingerprint())
	assert.NotEqual(t, ab.Fingerprint(), joined.Fingerprint())
}

func TestFingerprintTracksAppend(t *testing.T) {
	built, _ := index.New([]string{"a", "b", "c"}, "")

	grown := index.Empty("")
	require.NoError(t, grown.Append("a"))
	clone := grown.Clone()
	require.NoError(t, grown.Append("b"))
	require.NoError(t, grown.Append("c"))
	assert.Equal(t, built.Fingerprint(), grown.Fingerprint())

	// the clone keeps its own running hash
	a, _ := index.New([]string{"a"}, "")
	assert.Equal(t, a.Fingerprint(), clone.Fingerprint())
	require.NoError(t, clone.Append("x"))
	assert.NotEqual(t, grown.Fingerprint(), clone.Fingerprint())

	eq, err := grown.Equals(built)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestNilIndexSnapshots(t *testing.T) {
	var idx *index.Index
	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, []string{}, idx.Labels())
	assert.Nil(t, idx.Clone())

	empty := index.Empty("rows")
	assert.Equal(t, "rows", empty.Name())
	assert.Equal(t, 0, empty.Len())
}
