package common_test

import (
	"math"
	"testing"

	"github.com/paveg/panda/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestOperator_String(t *testing.T) {
	assert.Equal(t, "+", common.OpAdd.String())
	assert.Equal(t, "/", common.OpDiv.String())
	assert.Equal(t, ">=", common.OpGe.String())
	assert.Equal(t, "unknown(42)", common.Operator(42).String())
}

func TestArith(t *testing.T) {
	f, ok := common.Arith(common.OpAdd, 1.5, 2.0)
	assert.True(t, ok)
	assert.InDelta(t, 3.5, f, 1e-9)

	i, ok := common.Arith(common.OpMul, int32(6), int32(7))
	assert.True(t, ok)
	assert.Equal(t, int32(42), i)

	u, ok := common.Arith(common.OpDiv, uint(9), uint(2))
	assert.True(t, ok)
	assert.Equal(t, uint(4), u)

	m, ok := common.Arith(common.OpSub, meters(5), meters(2))
	assert.True(t, ok)
	assert.Equal(t, meters(3), m)

	_, ok = common.Arith(common.OpAdd, "a", "b")
	assert.False(t, ok)

	_, ok = common.Arith[any](common.OpAdd, 1, 2)
	assert.False(t, ok)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		op       common.Operator
		a, b     float64
		expected bool
	}{
		{"lt", common.OpLt, 1, 2, true},
		{"le equal", common.OpLe, 2, 2, true},
		{"gt", common.OpGt, 1, 2, false},
		{"ge", common.OpGe, 3, 2, true},
		{"eq NaN", common.OpEq, math.NaN(), math.NaN(), false},
		{"lt NaN", common.OpLt, math.NaN(), 1, false},
		{"ne", common.OpNe, 1, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := common.Compare(tt.op, tt.a, tt.b)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	got, ok := common.Compare(common.OpLt, "apple", "banana")
	assert.True(t, ok)
	assert.True(t, got)

	_, ok = common.Compare(common.OpLt, true, false)
	assert.False(t, ok)
}

func TestNumericHelpers(t *testing.T) {
	assert.True(t, common.IsZero(0.0))
	assert.True(t, common.IsZero(uint8(0)))
	assert.False(t, common.IsZero(-1))
	assert.False(t, common.IsZero("0"))

	n, ok := common.Negate(4.5)
	assert.True(t, ok)
	assert.InDelta(t, -4.5, n, 1e-9)

	_, ok = common.Negate(uint(2))
	assert.False(t, ok)
	z, ok := common.Negate(uint8(0))
	assert.True(t, ok)
	assert.Equal(t, uint8(0), z)

	assert.True(t, common.Underflows(uint(2), uint(5)))
	assert.False(t, common.Underflows(uint(5), uint(2)))
	assert.False(t, common.Underflows(2, 5))

	inf, ok := common.PositiveInf[float32]()
	assert.True(t, ok)
	assert.True(t, math.IsInf(float64(inf), 1))

	_, ok = common.PositiveInf[int]()
	assert.False(t, ok)

	v, ok := common.NumericValue(int16(-3))
	assert.True(t, ok)
	assert.InDelta(t, -3.0, v, 1e-9)
}

func TestStringFormatter(t *testing.T) {
	sf := common.NewStringFormatter()

	assert.Equal(t, "a + b", common.FormatBinaryOperation("a", "+", "b"))
	assert.Equal(t, "[1, x, true]", common.FormatList([]any{1, "x", true}))
	assert.Equal(t, "   ab", sf.PadLeft("ab", 5))
	assert.Equal(t, "ab   ", sf.PadRight("ab", 5))
	assert.Equal(t, "abcdef", sf.PadLeft("abcdef", 3))
}
