// Package precision measures the roundoff error of polynomial evaluation strategies
// against an arbitrary precision reference.
package precision

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/polyeval/polynomial"
	"github.com/tuneinsight/polyeval/utils/bignum"
)

// DefaultPrec is the precision, in bits, of the reference values.
const DefaultPrec = 256

// Stats is a struct storing statistics about the absolute error |have - want|
// of a set of floating point values.
// The precisions are given in bits: log2(1/delta).
type Stats struct {
	MinDelta    float64
	MaxDelta    float64
	MeanDelta   float64
	MedianDelta float64
	StdDelta    float64

	MinPrecision    float64
	MaxPrecision    float64
	MeanPrecision   float64
	MedianPrecision float64
}

func (prec Stats) String() string {
	return fmt.Sprintf(`
┌─────────┬──────────┬────────┐
│         │ DELTA    │ LOG2   │
├─────────┼──────────┼────────┤
│MIN Prec │ %8.2e │ %6.2f │
│MAX Prec │ %8.2e │ %6.2f │
│AVG Prec │ %8.2e │ %6.2f │
│MED Prec │ %8.2e │ %6.2f │
└─────────┴──────────┴────────┘
Err STD : %8.2e
`,
		prec.MaxDelta, prec.MinPrecision,
		prec.MinDelta, prec.MaxPrecision,
		prec.MeanDelta, prec.MeanPrecision,
		prec.MedianDelta, prec.MedianPrecision,
		prec.StdDelta)
}

// GetPrecisionStats generates a Stats struct from the reference values want and the computed values have.
// The deltas are computed at the precision of the reference values.
// An error is returned if the slices are empty, of different lengths, or if have contains non-finite values.
func GetPrecisionStats(want []*big.Float, have []float64) (prec Stats, err error) {

	if len(want) == 0 {
		return prec, fmt.Errorf("cannot GetPrecisionStats: no values")
	}

	if len(want) != len(have) {
		return prec, fmt.Errorf("cannot GetPrecisionStats: len(want)=%d != len(have)=%d", len(want), len(have))
	}

	deltas := make([]float64, len(want))

	diff := new(big.Float)
	for i := range want {

		if math.IsNaN(have[i]) || math.IsInf(have[i], 0) {
			return prec, fmt.Errorf("cannot GetPrecisionStats: have[%d]=%v is not finite", i, have[i])
		}

		diff.SetPrec(want[i].Prec())
		diff.SetFloat64(have[i])
		diff.Sub(diff, want[i])
		deltas[i], _ = diff.Abs(diff).Float64()
	}

	data := stats.Float64Data(deltas)

	if prec.MinDelta, err = data.Min(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MaxDelta, err = data.Max(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MeanDelta, err = data.Mean(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MedianDelta, err = data.Median(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.StdDelta, err = data.StandardDeviation(); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	prec.MinPrecision = deltaToPrecision(prec.MaxDelta)
	prec.MaxPrecision = deltaToPrecision(prec.MinDelta)
	prec.MeanPrecision = deltaToPrecision(prec.MeanDelta)
	prec.MedianPrecision = deltaToPrecision(prec.MedianDelta)

	return
}

func deltaToPrecision(delta float64) float64 {
	return math.Log2(1 / delta)
}

// Reference evaluates the polynomial given by coeffs at each point of xs with prec bits of precision.
// The inputs are converted exactly, so the result only carries the rounding error of the
// arbitrary precision arithmetic.
func Reference(coeffs, xs []float64, prec uint) (ys []*big.Float, err error) {

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cannot Reference: %w: at least one coefficient required", polynomial.ErrInvalidInput)
	}

	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("cannot Reference: coeffs[%d]=%v is not finite", i, c)
		}
	}

	poly := bignum.NewFloatSlice(coeffs, prec)

	ys = make([]*big.Float, len(xs))
	for i, x := range xs {

		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("cannot Reference: xs[%d]=%v is not finite", i, x)
		}

		ys[i] = bignum.MonomialEval(bignum.NewFloat(x, prec), poly)
	}

	return
}

// CompareMethods evaluates the polynomial given by coeffs at each point of xs with every
// method of polynomial.Methods and returns the error statistics of each method against
// a reference computed with DefaultPrec bits of precision.
func CompareMethods(coeffs, xs []float64) (res map[polynomial.Method]Stats, err error) {

	var want []*big.Float
	if want, err = Reference(coeffs, xs, DefaultPrec); err != nil {
		return nil, fmt.Errorf("cannot CompareMethods: %w", err)
	}

	res = map[polynomial.Method]Stats{}

	for _, method := range polynomial.Methods {

		var have []float64
		if have, err = polynomial.EvaluateVec(method, coeffs, xs); err != nil {
			return nil, fmt.Errorf("cannot CompareMethods: %w", err)
		}

		if res[method], err = GetPrecisionStats(want, have); err != nil {
			return nil, fmt.Errorf("cannot CompareMethods: %s: %w", method, err)
		}
	}

	return
}
