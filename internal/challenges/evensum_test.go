package challenges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumEvenNumbers(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want int
	}{
		{name: "mixed", args: []any{2, 7, 8, 9, 5}, want: 10},
		{name: "no args", args: nil, want: 0},
		{name: "all odd", args: []any{1, 3, 5}, want: 0},
		{name: "negatives", args: []any{-4, 3, -2}, want: -6},
		{name: "ignores non integers", args: []any{"4", 4, 2.0, true, nil}, want: 4},
		{name: "other int kinds", args: []any{int8(2), int64(4), uint(6)}, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SumEvenNumbers(tt.args...))
		})
	}
}

func TestSumOddNumbers(t *testing.T) {
	assert.Equal(t, 21, SumOddNumbers(2, 7, 8, 9, 5))
	assert.Equal(t, 0, SumOddNumbers())
}

func TestSumEvenWith(t *testing.T) {
	assert.Equal(t, 6, SumEvenWith(EvenOptions{AllowFloats: true}, 4.0, 2.9, 3))
	assert.Equal(t, 4, SumEvenWith(EvenOptions{}, 4, 2.0))
	assert.Equal(t, 4, SumEvenWith(EvenOptions{ExcludeZero: true}, 0, 4))
}

func TestAnalyzeEven(t *testing.T) {
	s := AnalyzeEven(2, 7, 8, 9, 5)
	assert.Equal(t, 10, s.Sum)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 5.0, s.Average)
	require.NotNil(t, s.Min)
	require.NotNil(t, s.Max)
	assert.Equal(t, 2, *s.Min)
	assert.Equal(t, 8, *s.Max)
	assert.Equal(t, []int{2, 8}, s.Values)

	empty := AnalyzeEven(1, "x")
	assert.Zero(t, empty.Count)
	assert.Nil(t, empty.Min)
	assert.Nil(t, empty.Max)
}

func TestSumEvenNested(t *testing.T) {
	assert.Equal(t, 20, SumEvenNested(1, []int{2, 4}, []any{6, []any{8, "x"}}))
	assert.Equal(t, 0, SumEvenNested())
}

func TestIntRange(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, IntRange(1, 4))
	assert.Nil(t, IntRange(3, 3))
}
