package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i] with Horner's scheme.
// The precision of x is used as reference precision for y.
// A nil coefficient is treated as zero.
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {

	y = new(big.Float).SetPrec(x.Prec())

	n := len(poly)
	if n == 0 {
		return
	}

	if poly[n-1] != nil {
		y.Set(poly[n-1])
	}

	for i := n - 2; i >= 0; i-- {
		y.Mul(y, x)
		if poly[i] != nil {
			y.Add(y, poly[i])
		}
	}

	return
}

// PowerSumEval evaluates y = sum x^i * poly[i] term by term, keeping a running power of x.
// The precision of x is used as reference precision for y.
// A nil coefficient is treated as zero.
func PowerSumEval(x *big.Float, poly []*big.Float) (y *big.Float) {

	prec := x.Prec()

	y = new(big.Float).SetPrec(prec)
	pow := NewFloat(1, prec)
	tmp := new(big.Float).SetPrec(prec)

	for i := range poly {
		if i > 0 {
			pow.Mul(pow, x)
		}
		if poly[i] != nil {
			y.Add(y, tmp.Mul(pow, poly[i]))
		}
	}

	return
}
