package polynomial

import (
	"math"
)

// twoSum returns s = fl(a+b) and e such that a + b = s + e exactly.
// ref: Knuth, The Art of Computer Programming, Vol. 2, 1998
func twoSum[T Float](a, b T) (s, e T) {
	s = a + b
	bb := T(s - a)
	e = T(a-T(s-bb)) + T(b-bb)
	return
}

// twoProd returns p = fl(a*b) and e such that a * b = p + e exactly.
// For float32 the product of the widened operands is exact in float64,
// so a single fused multiply-add recovers the error for both types.
func twoProd[T Float](a, b T) (p, e T) {
	p = T(a * b)
	e = T(math.FMA(float64(a), float64(b), -float64(p)))
	return
}

// evalCompensatedHorner assumes len(coeffs) > 0.
// The result is as accurate as if Horner's scheme was computed in twice the working
// precision and then rounded to the working precision.
// ref: Graillat, Langlois, Louvet, Compensated Horner Scheme, 2005
func evalCompensatedHorner[T Float](coeffs []T, x T) (y T) {

	n := len(coeffs) - 1

	y = coeffs[n]

	var c, p, pe, se T
	for i := n - 1; i >= 0; i-- {
		p, pe = twoProd(y, x)
		y, se = twoSum(p, coeffs[i])
		c = T(c*x) + T(pe+se)
	}

	// y follows the exact rounding path of Horner's scheme, the correction
	// is meaningless once the evaluation overflowed or produced a NaN.
	if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
		return y
	}

	return y + c
}
