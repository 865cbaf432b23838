// Package taylor implements the approximation of transcendental functions by their
// truncated Maclaurin series, evaluated with the polynomial package.
package taylor

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/polyeval/polynomial"
	"github.com/tuneinsight/polyeval/utils/bignum"
)

// ErrInvalidInput is returned, wrapped, when the number of terms is not positive.
var ErrInvalidInput = polynomial.ErrInvalidInput

// coeffPrec is the precision, in bits, used to compute the coefficients before
// rounding them to float64.
const coeffPrec = 128

// Function is a function with a known Maclaurin series.
type Function int

const (
	// SinFunc is sin(x) = sum (-1)^k x^(2k+1) / (2k+1)!.
	SinFunc = Function(iota)
	// CosFunc is cos(x) = sum (-1)^k x^(2k) / (2k)!.
	CosFunc
	// ExpFunc is exp(x) = sum x^n / n!.
	ExpFunc
)

func (f Function) String() string {
	switch f {
	case SinFunc:
		return "Sin"
	case CosFunc:
		return "Cos"
	case ExpFunc:
		return "Exp"
	default:
		return fmt.Sprintf("Function(%d)", int(f))
	}
}

// sign returns the sign of the n-th Maclaurin coefficient of f, 0 if the coefficient is zero.
func (f Function) sign(n int) int {
	switch f {
	case SinFunc:
		if n&1 == 0 {
			return 0
		}
		return 1 - 2*((n-1)>>1&1)
	case CosFunc:
		if n&1 == 1 {
			return 0
		}
		return 1 - 2*(n>>1&1)
	case ExpFunc:
		return 1
	default:
		panic(fmt.Sprintf("invalid function: allowed functions are Sin, Cos or Exp but is %s", f))
	}
}

// reference returns f(x) at the precision of x.
func (f Function) reference(x *big.Float) *big.Float {
	switch f {
	case SinFunc:
		return bignum.Sin(x)
	case CosFunc:
		return bignum.Cos(x)
	case ExpFunc:
		return bignum.Exp(x)
	default:
		panic(fmt.Sprintf("invalid function: allowed functions are Sin, Cos or Exp but is %s", f))
	}
}

// Coefficients returns the first numTerms Maclaurin coefficients of f, that is,
// the coefficients of x^0, ..., x^(numTerms-1).
// Coefficients whose magnitude is below the smallest float64 are zero.
func Coefficients(f Function, numTerms int) (coeffs []float64, err error) {

	if numTerms <= 0 {
		return nil, fmt.Errorf("cannot Coefficients: %w: number of terms must be positive but is %d", ErrInvalidInput, numTerms)
	}

	coeffs = make([]float64, numTerms)

	inv := bignum.InverseFactorials(numTerms, coeffPrec)

	for n := range coeffs {
		switch f.sign(n) {
		case 1:
			coeffs[n], _ = inv[n].Float64()
		case -1:
			coeffs[n], _ = inv[n].Float64()
			coeffs[n] = -coeffs[n]
		}
	}

	return
}

// SinCoefficients returns the first numTerms Maclaurin coefficients of sin(x).
func SinCoefficients(numTerms int) (coeffs []float64, err error) {
	return Coefficients(SinFunc, numTerms)
}
