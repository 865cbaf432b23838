package polynomial

import (
	"fmt"
	"math"
)

// Method is an evaluation strategy.
type Method int

const (
	// Direct accumulates a[n] * x^n for n = 0..N, recomputing x^n at each step.
	Direct = Method(iota)
	// Horner computes (...(a[N]*x + a[N-1])*x + ...)*x + a[0].
	Horner
	// CompensatedHorner is Horner's scheme with the rounding error of each
	// multiplication and addition accumulated in a second polynomial.
	CompensatedHorner
)

// Methods lists all the available evaluation strategies.
var Methods = []Method{Direct, Horner, CompensatedHorner}

func (m Method) String() string {
	switch m {
	case Direct:
		return "Direct"
	case Horner:
		return "Horner"
	case CompensatedHorner:
		return "CompensatedHorner"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// EvaluateDirect returns P(x) = sum coeffs[n] * x^n computed term by term.
func EvaluateDirect[T Float](coeffs []T, x T) (y T, err error) {
	if err = checkCoefficients(coeffs); err != nil {
		return y, fmt.Errorf("cannot EvaluateDirect: %w", err)
	}
	return evalDirect(coeffs, x), nil
}

// EvaluateHorner returns P(x) = sum coeffs[n] * x^n computed with Horner's scheme.
func EvaluateHorner[T Float](coeffs []T, x T) (y T, err error) {
	if err = checkCoefficients(coeffs); err != nil {
		return y, fmt.Errorf("cannot EvaluateHorner: %w", err)
	}
	return evalHorner(coeffs, x), nil
}

// EvaluateCompensatedHorner returns P(x) = sum coeffs[n] * x^n computed with the
// compensated Horner scheme.
func EvaluateCompensatedHorner[T Float](coeffs []T, x T) (y T, err error) {
	if err = checkCoefficients(coeffs); err != nil {
		return y, fmt.Errorf("cannot EvaluateCompensatedHorner: %w", err)
	}
	return evalCompensatedHorner(coeffs, x), nil
}

// EvaluateDirectVec evaluates P at each point of xs with EvaluateDirect.
func EvaluateDirectVec[T Float](coeffs []T, xs []T) (ys []T, err error) {
	if err = checkCoefficients(coeffs); err != nil {
		return nil, fmt.Errorf("cannot EvaluateDirectVec: %w", err)
	}
	return evalVec(evalDirect[T], coeffs, xs), nil
}

// EvaluateHornerVec evaluates P at each point of xs with EvaluateHorner.
func EvaluateHornerVec[T Float](coeffs []T, xs []T) (ys []T, err error) {
	if err = checkCoefficients(coeffs); err != nil {
		return nil, fmt.Errorf("cannot EvaluateHornerVec: %w", err)
	}
	return evalVec(evalHorner[T], coeffs, xs), nil
}

// EvaluateCompensatedHornerVec evaluates P at each point of xs with EvaluateCompensatedHorner.
func EvaluateCompensatedHornerVec[T Float](coeffs []T, xs []T) (ys []T, err error) {
	if err = checkCoefficients(coeffs); err != nil {
		return nil, fmt.Errorf("cannot EvaluateCompensatedHornerVec: %w", err)
	}
	return evalVec(evalCompensatedHorner[T], coeffs, xs), nil
}

// Evaluate returns P(x) computed with the given method.
func Evaluate[T Float](method Method, coeffs []T, x T) (y T, err error) {
	if err = checkCoefficients(coeffs); err != nil {
		return y, fmt.Errorf("cannot Evaluate: %w", err)
	}
	return evaluator[T](method)(coeffs, x), nil
}

// EvaluateVec evaluates P at each point of xs with the given method.
func EvaluateVec[T Float](method Method, coeffs []T, xs []T) (ys []T, err error) {
	if err = checkCoefficients(coeffs); err != nil {
		return nil, fmt.Errorf("cannot EvaluateVec: %w", err)
	}
	return evalVec(evaluator[T](method), coeffs, xs), nil
}

// evaluator returns the scalar evaluation function of the method.
func evaluator[T Float](m Method) func(coeffs []T, x T) T {
	switch m {
	case Direct:
		return evalDirect[T]
	case Horner:
		return evalHorner[T]
	case CompensatedHorner:
		return evalCompensatedHorner[T]
	default:
		panic(fmt.Sprintf("invalid method: allowed methods are Direct, Horner or CompensatedHorner but is %s", m))
	}
}

// evalDirect assumes len(coeffs) > 0.
func evalDirect[T Float](coeffs []T, x T) (y T) {
	for n, a := range coeffs {
		// explicit conversions prevent the compiler from fusing into an FMA
		y += T(a * T(math.Pow(float64(x), float64(n))))
	}
	return
}

// evalHorner assumes len(coeffs) > 0.
func evalHorner[T Float](coeffs []T, x T) (y T) {
	n := len(coeffs) - 1
	y = coeffs[n]
	for i := n - 1; i >= 0; i-- {
		y = T(y*x) + coeffs[i]
	}
	return
}

func evalVec[T Float](eval func([]T, T) T, coeffs []T, xs []T) (ys []T) {
	ys = make([]T, len(xs))
	for i := range xs {
		ys[i] = eval(coeffs, xs[i])
	}
	return
}
