package missing_test

import (
	"math"
	"testing"

	"github.com/paveg/panda/internal/missing"
	"github.com/stretchr/testify/assert"
)

type celsius float64

func TestIsNaN(t *testing.T) {
	var nilPtr *int
	one := 1

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"float64 NaN", math.NaN(), true},
		{"float32 NaN", float32(math.NaN()), true},
		{"named float NaN", celsius(math.NaN()), true},
		{"float64 value", 1.5, false},
		{"infinity", math.Inf(1), false},
		{"empty string", "", true},
		{"string", "a", false},
		{"nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"pointer", &one, false},
		{"int zero", 0, false},
		{"bool false", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, missing.IsMissing(tt.value))
		})
	}

	assert.True(t, missing.IsNaN(math.NaN()))
	assert.False(t, missing.IsNaN(int64(0)))
}

func TestIsNull(t *testing.T) {
	var nilPtr *string
	assert.True(t, missing.IsNull(nil))
	assert.True(t, missing.IsNull(nilPtr))
	assert.False(t, missing.IsNull(math.NaN()))
	assert.False(t, missing.IsNull(""))
}

func TestValue(t *testing.T) {
	f, ok := missing.Value[float64]()
	assert.True(t, ok)
	assert.True(t, math.IsNaN(f))

	f32, ok := missing.Value[float32]()
	assert.True(t, ok)
	assert.True(t, math.IsNaN(float64(f32)))

	c, ok := missing.Value[celsius]()
	assert.True(t, ok)
	assert.True(t, math.IsNaN(float64(c)))

	s, ok := missing.Value[string]()
	assert.True(t, ok)
	assert.Empty(t, s)

	p, ok := missing.Value[*int]()
	assert.True(t, ok)
	assert.Nil(t, p)

	_, ok = missing.Value[int64]()
	assert.False(t, ok)

	_, ok = missing.Value[bool]()
	assert.False(t, ok)
}

func TestConstants(t *testing.T) {
	assert.InDelta(t, 3.14159265358979, missing.Pi, 1e-12)
	assert.InDelta(t, 2.71828182845904, missing.E, 1e-12)
	assert.True(t, math.IsNaN(missing.NaN()))
}
