// Package fastcos provides a fast, allocation-free approximation of cos(x)
// for float64 arguments.
//
// The argument is folded into [0, π/2] using evenness, the 2π period and
// the symmetries cos(2π-θ) = cos(θ) and cos(π-θ) = -cos(θ). A degree-20
// even Maclaurin polynomial is then evaluated in x² with Horner's method.
//
// # Accuracy Characteristics
//
// Cos: absolute error < 1e-12 (Tolerance) versus math.Cos for x ∈ [-1000, 1000],
// typically below 4e-14. The landmark angles 0, π/2, π, 3π/2 and 2π are
// reproduced to within Tolerance.
//
// # Large Arguments
//
// Range reduction is a single math.Mod by the float64 value of 2π, which
// differs from the true 2π by about 2.45e-16. The reduced argument therefore
// drifts by roughly |x|/2π · 2.45e-16, so absolute precision degrades linearly
// with the magnitude of x (about 1e-11 at 1e6, 5e-9 at 2e8, and no useful
// digits beyond 1e16). ErrorBound reports the bound that applies to a given
// input. Exact (Payne-Hanek style) reduction is deliberately not attempted.
//
// # Special Cases
//
//	Cos(±0) = 1
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
package fastcos
