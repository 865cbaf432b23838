/*
Package polyeval evaluates real polynomials given by their coefficient sequence with
direct summation, Horner's scheme or compensated Horner's scheme, and approximates
transcendental functions by their truncated Maclaurin series.

The evaluation strategies are implemented in the polynomial package, the series in the
taylor package, and the precision package measures the roundoff of each strategy
against an arbitrary precision reference.
*/
package polyeval
