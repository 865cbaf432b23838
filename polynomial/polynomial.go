// Package polynomial implements the evaluation of real polynomials given by their
// coefficients in the monomial basis, P(x) = sum a[n] * x^n.
//
// Three strategies are available: direct summation of the terms a[n] * x^n with
// the powers recomputed at each step, Horner's nested multiplication and a
// compensated variant of Horner's scheme. The strategies are equivalent over the
// reals but follow different rounding paths in floating point arithmetic.
package polynomial

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating point types accepted as coefficients and evaluation points.
type Float interface {
	constraints.Float
}

// ErrInvalidInput is returned, wrapped, when the inputs of an evaluation are not valid.
var ErrInvalidInput = errors.New("invalid input")

// Polynomial is a polynomial in the monomial basis.
// Coeffs[n] is the coefficient of x^n.
type Polynomial[T Float] struct {
	Coeffs []T
}

// NewPolynomial creates a new Polynomial from a copy of coeffs.
// At least one coefficient is required.
func NewPolynomial[T Float](coeffs []T) (p Polynomial[T], err error) {

	if err = checkCoefficients(coeffs); err != nil {
		return p, fmt.Errorf("cannot NewPolynomial: %w", err)
	}

	p.Coeffs = make([]T, len(coeffs))
	copy(p.Coeffs, coeffs)

	return
}

// Clone returns a deep copy of the polynomial.
func (p Polynomial[T]) Clone() Polynomial[T] {
	coeffs := make([]T, len(p.Coeffs))
	copy(coeffs, p.Coeffs)
	return Polynomial[T]{Coeffs: coeffs}
}

// Degree returns the degree of the polynomial, that is, the number of coefficients minus one.
// Zero leading coefficients are not trimmed.
func (p Polynomial[T]) Degree() int {
	return len(p.Coeffs) - 1
}

// Evaluate returns P(x) computed with the given method.
func (p Polynomial[T]) Evaluate(method Method, x T) (y T) {
	return evaluator[T](method)(p.Coeffs, x)
}

// EvaluateVec returns [P(xs[0]), P(xs[1]), ...] computed with the given method.
func (p Polynomial[T]) EvaluateVec(method Method, xs []T) (ys []T) {
	return evalVec(evaluator[T](method), p.Coeffs, xs)
}

// Derivative returns the derivative of the polynomial.
// The derivative of a constant is the zero polynomial of degree 0.
func (p Polynomial[T]) Derivative() (d Polynomial[T]) {

	if p.Degree() == 0 {
		return Polynomial[T]{Coeffs: []T{0}}
	}

	d.Coeffs = make([]T, p.Degree())
	for i := range d.Coeffs {
		d.Coeffs[i] = T(i+1) * p.Coeffs[i+1]
	}

	return
}

func checkCoefficients[T Float](coeffs []T) error {
	if len(coeffs) == 0 {
		return fmt.Errorf("%w: at least one coefficient required", ErrInvalidInput)
	}
	return nil
}
