package fastcos

import "math"

const (
	// Terms is the number of series coefficients after the constant term.
	Terms = 10

	// Tolerance is the absolute error bound of Cos on [-1000, 1000].
	Tolerance = 1e-12

	// reductionSlack bounds the per-radian drift introduced by reducing
	// modulo the rounded float64 value of 2π.
	reductionSlack = 1e-16

	twoPi  = 2 * math.Pi
	halfPi = math.Pi / 2
)

// coeffs holds (-1)^n / (2n)! for n = 1..Terms in ascending power order.
// Cos consumes it from the last entry down; the order must not change.
var coeffs = [Terms]float64{
	-1.0 / 2,                  // x²
	1.0 / 24,                  // x⁴
	-1.0 / 720,                // x⁶
	1.0 / 40320,               // x⁸
	-1.0 / 3628800,            // x¹⁰
	1.0 / 479001600,           // x¹²
	-1.0 / 87178291200,        // x¹⁴
	1.0 / 20922789888000,      // x¹⁶
	-1.0 / 6402373705728000,   // x¹⁸
	1.0 / 2432902008176640000, // x²⁰
}

// Cos returns an approximation of the cosine of the radian argument x.
//
// It is safe for concurrent use and does not allocate.
func Cos(x float64) float64 {
	x = math.Abs(x)
	x = math.Mod(x, twoPi)

	if x > math.Pi {
		x = twoPi - x
	}

	sign := 1.0
	if x > halfPi {
		x = math.Pi - x
		sign = -1
	}

	x2 := x * x

	result := 0.0
	for i := Terms - 1; i >= 0; i-- {
		result = result*x2 + coeffs[i]
	}

	return sign * (result*x2 + 1)
}

// Coefficients returns a copy of the series coefficients, ordered from the
// x² term to the x²⁰ term.
func Coefficients() [Terms]float64 {
	return coeffs
}

// ErrorBound returns the absolute error bound of Cos(x) versus math.Cos(x).
// For |x| ≤ 1000 it is essentially Tolerance; beyond that the reduction
// drift dominates. The bound saturates at 2, the largest possible error of
// a value in [-1, 1]. Non-finite x yields +Inf.
func ErrorBound(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.Inf(1)
	}

	return math.Min(Tolerance+math.Abs(x)*reductionSlack, 2)
}
