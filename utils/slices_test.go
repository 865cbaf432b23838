package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlias1D(t *testing.T) {
	s := make([]float64, 8)
	require.True(t, Alias1D(s, s[2:]))
	require.False(t, Alias1D(s, make([]float64, 8)))
	require.False(t, Alias1D([]float64{}, s))
}

func TestArithmeticSequence(t *testing.T) {
	require.Equal(t, []int{0, 1, 2, 3}, ArithmeticSequence[int](4))
	require.Equal(t, []float64{0, 1, 2}, ArithmeticSequence[float64](3))
	require.Empty(t, ArithmeticSequence[float32](0))
	require.Panics(t, func() { ArithmeticSequence[int](-1) })
}

func TestLinspace(t *testing.T) {
	actual := Linspace(0, 1, 5)
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, actual)

	actual = Linspace(-1, 1, 2)
	require.Equal(t, []float64{-1, 1}, actual)

	require.Panics(t, func() { Linspace(0, 1, 1) })
}

func TestMaxAbsDiff(t *testing.T) {
	require.Equal(t, 0.5, MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 3}))
	require.Equal(t, float32(2), MaxAbsDiff([]float32{-1, 0}, []float32{1, 0}))
	require.Equal(t, 0.0, MaxAbsDiff([]float64{math.NaN()}, []float64{1}))
	require.Panics(t, func() { MaxAbsDiff([]float64{1}, []float64{}) })
}
