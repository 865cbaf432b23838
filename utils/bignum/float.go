package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// First 200 decimal digits of Pi, enough for ~660 bits of precision.
const pi = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651328230664709384460955058223172535940812848111745028410270193852110555964462294895493038196"

// Pi returns Pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float32, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float32:
		y.SetFloat64(float64(x))
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("cannot NewFloat: valid types are int, int64, uint, uint64, float32, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// NewFloatSlice converts a slice of float64 into a slice of *big.Float with prec bits of precision.
func NewFloatSlice(x []float64, prec uint) (y []*big.Float) {
	y = make([]*big.Float, len(x))
	for i := range x {
		y[i] = NewFloat(x[i], prec)
	}
	return
}

// Cos returns cos(x) at the precision of x.
// The argument is scaled down by 2^k with k = prec/2 and s = theta^2 ~ 2-2cos(theta)
// is then doubled back k times with s <- s(4-s).
// ref: Johansson, B. Tomas, An elementary algorithm to evaluate trigonometric functions to high precision, 2018
func Cos(x *big.Float) (cosx *big.Float) {

	prec := x.Prec()
	k := int(prec >> 1)

	s := new(big.Float).SetPrec(prec).SetMantExp(x, -k)
	s.Mul(s, s)

	four := NewFloat(4, prec)
	tmp := new(big.Float).SetPrec(prec)
	for i := 0; i < k; i++ {
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	s.Quo(s, NewFloat(2, prec))

	cosx = NewFloat(1, prec)
	return cosx.Sub(cosx, s)
}

// Sin returns sin(x) = cos(x - pi/2) at the precision of x.
func Sin(x *big.Float) (sinx *big.Float) {
	halfPi := Pi(x.Prec())
	halfPi.Quo(halfPi, NewFloat(2, x.Prec()))
	return Cos(new(big.Float).SetPrec(x.Prec()).Sub(x, halfPi))
}

// Log returns ln(x) at the precision of x.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x) at the precision of x.
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y at the precision of x.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}
