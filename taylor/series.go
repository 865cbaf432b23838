package taylor

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/polyeval/polynomial"
	"github.com/tuneinsight/polyeval/utils/bignum"
)

// Series is a truncated Maclaurin series of a Function.
type Series struct {
	polynomial.Polynomial[float64]
	Function Function
	// Method is the strategy used by Evaluate and EvaluateVec.
	Method   polynomial.Method
}

// NewSeries creates the truncated Maclaurin series of f with numTerms coefficients.
// The series is evaluated with Horner's scheme.
func NewSeries(f Function, numTerms int) (s *Series, err error) {

	var coeffs []float64
	if coeffs, err = Coefficients(f, numTerms); err != nil {
		return nil, fmt.Errorf("cannot NewSeries: %w", err)
	}

	return &Series{
		Polynomial: polynomial.Polynomial[float64]{Coeffs: coeffs},
		Function:   f,
		Method:     polynomial.Horner,
	}, nil
}

// NumTerms returns the number of coefficients of the series.
func (s *Series) NumTerms() int {
	return len(s.Coeffs)
}

// Evaluate returns the approximation of f(x).
func (s *Series) Evaluate(x float64) float64 {
	return s.Polynomial.Evaluate(s.Method, x)
}

// EvaluateVec returns the approximations of [f(xs[0]), f(xs[1]), ...].
func (s *Series) EvaluateVec(xs []float64) []float64 {
	return s.Polynomial.EvaluateVec(s.Method, xs)
}

// Sin returns the approximation of sin(x) by its Maclaurin series truncated to numTerms coefficients.
func Sin(x float64, numTerms int) (y float64, err error) {
	return evaluate(SinFunc, x, numTerms)
}

// SinVec returns the approximations of sin(x) at each point of xs by its Maclaurin
// series truncated to numTerms coefficients.
func SinVec(xs []float64, numTerms int) (ys []float64, err error) {
	return evaluateVec(SinFunc, xs, numTerms)
}

// Cos returns the approximation of cos(x) by its Maclaurin series truncated to numTerms coefficients.
func Cos(x float64, numTerms int) (y float64, err error) {
	return evaluate(CosFunc, x, numTerms)
}

// CosVec is the vector form of Cos.
func CosVec(xs []float64, numTerms int) (ys []float64, err error) {
	return evaluateVec(CosFunc, xs, numTerms)
}

// Exp returns the approximation of exp(x) by its Maclaurin series truncated to numTerms coefficients.
func Exp(x float64, numTerms int) (y float64, err error) {
	return evaluate(ExpFunc, x, numTerms)
}

// ExpVec is the vector form of Exp.
func ExpVec(xs []float64, numTerms int) (ys []float64, err error) {
	return evaluateVec(ExpFunc, xs, numTerms)
}

func evaluate(f Function, x float64, numTerms int) (y float64, err error) {
	var s *Series
	if s, err = NewSeries(f, numTerms); err != nil {
		return y, fmt.Errorf("cannot evaluate %s series: %w", f, err)
	}
	return s.Evaluate(x), nil
}

func evaluateVec(f Function, xs []float64, numTerms int) (ys []float64, err error) {
	var s *Series
	if s, err = NewSeries(f, numTerms); err != nil {
		return nil, fmt.Errorf("cannot evaluate %s series: %w", f, err)
	}
	return s.EvaluateVec(xs), nil
}

// ConvergencePoint is the approximation of f(x) by a series with NumTerms coefficients.
type ConvergencePoint struct {
	NumTerms int
	Value    float64
	AbsError float64
}

// ConvergenceTable approximates f(x) with each of the given number of terms and
// reports the absolute error against an arbitrary precision evaluation of f(x).
func ConvergenceTable(f Function, x float64, termCounts []int) (table []ConvergencePoint, err error) {

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("cannot ConvergenceTable: %w: x must be finite but is %v", ErrInvalidInput, x)
	}

	ref := f.reference(bignum.NewFloat(x, coeffPrec))

	table = make([]ConvergencePoint, len(termCounts))

	for i, numTerms := range termCounts {

		var s *Series
		if s, err = NewSeries(f, numTerms); err != nil {
			return nil, fmt.Errorf("cannot ConvergenceTable: %w", err)
		}

		y := s.Evaluate(x)

		// y overflows for large |x| and many terms
		absErr := math.Inf(1)
		if !math.IsInf(y, 0) && !math.IsNaN(y) {
			diff := bignum.NewFloat(y, coeffPrec)
			diff.Sub(diff, ref)
			absErr, _ = new(big.Float).Abs(diff).Float64()
		}

		table[i] = ConvergencePoint{
			NumTerms: numTerms,
			Value:    y,
			AbsError: absErr,
		}
	}

	return
}
