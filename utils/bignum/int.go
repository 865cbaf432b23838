package bignum

import (
	"fmt"
	"math/big"
)

// Factorial returns n! as a *big.Int.
func Factorial(n int) (f *big.Int) {

	if n < 0 {
		panic(fmt.Sprintf("cannot Factorial: n=%d < 0", n))
	}

	f = big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		f.Mul(f, big.NewInt(i))
	}

	return
}

// InverseFactorials returns the slice [1/0!, 1/1!, ..., 1/(n-1)!] with prec bits of precision.
// The factorial is accumulated exactly, so the only error is the final rounding of each quotient.
func InverseFactorials(n int, prec uint) (inv []*big.Float) {

	if n < 0 {
		panic(fmt.Sprintf("cannot InverseFactorials: n=%d < 0", n))
	}

	inv = make([]*big.Float, n)

	one := NewFloat(1, prec)
	f := big.NewInt(1)
	den := new(big.Float).SetPrec(prec)

	for i := 0; i < n; i++ {
		if i > 1 {
			f.Mul(f, big.NewInt(int64(i)))
		}
		den.SetInt(f)
		inv[i] = new(big.Float).SetPrec(prec).Quo(one, den)
	}

	return
}
