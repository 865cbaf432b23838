package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPrec = 128

func TestFloat(t *testing.T) {
	testFunc1("Sin", 1.4142135623730951, math.Sin, Sin, 1e-15, t)
	testFunc1("Sin/Negative", -0.5, math.Sin, Sin, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("Cos/Zero", 0, math.Cos, Cos, 0, t)
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-14, t)
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, Pow, 1e-14, t)
}

func TestNewFloat(t *testing.T) {
	require.Equal(t, uint(testPrec), NewFloat(3, testPrec).Prec())
	require.Zero(t, NewFloat(nil, testPrec).Sign())

	for _, x := range []interface{}{3, int64(3), uint(3), uint64(3), float32(3), 3.0, big.NewInt(3), big.NewFloat(3)} {
		f, _ := NewFloat(x, testPrec).Float64()
		require.Equal(t, 3.0, f)
	}

	require.Panics(t, func() { NewFloat("3", testPrec) })

	s := NewFloatSlice([]float64{0.5, -1}, testPrec)
	require.Len(t, s, 2)
	require.Equal(t, 0, s[0].Cmp(big.NewFloat(0.5)))
	require.Equal(t, 0, s[1].Cmp(big.NewFloat(-1)))
}

func TestPi(t *testing.T) {
	p, _ := Pi(testPrec).Float64()
	require.Equal(t, math.Pi, p)
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, testPrec)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, testPrec), NewFloat(e, testPrec)).Float64()
		require.InDelta(t, f(x, e), y, delta)
	})
}
