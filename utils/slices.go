package utils

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Number is the set of types that can be used as polynomial coefficients
// or evaluation points by the helpers of this package.
type Number interface {
	constraints.Integer | constraints.Float
}

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// ArithmeticSequence returns the slice [0, 1, ..., n-1].
func ArithmeticSequence[T Number](n int) (s []T) {
	if n < 0 {
		panic(fmt.Sprintf("cannot ArithmeticSequence: n=%d < 0", n))
	}
	s = make([]T, n)
	for i := range s {
		s[i] = T(i)
	}
	return
}

// Linspace returns n evenly spaced points over the closed interval [a, b].
// n must be at least 2.
func Linspace(a, b float64, n int) []float64 {
	if n < 2 {
		panic(fmt.Sprintf("cannot Linspace: n=%d < 2", n))
	}
	return floats.Span(make([]float64, n), a, b)
}

// MaxAbsDiff returns max_i |a[i] - b[i]|.
// NaN differences are ignored.
func MaxAbsDiff[T constraints.Float](a, b []T) (max T) {

	if len(a) != len(b) {
		panic(fmt.Sprintf("cannot MaxAbsDiff: len(a)=%d != len(b)=%d", len(a), len(b)))
	}

	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}

	return
}
