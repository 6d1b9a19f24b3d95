//go:build fastmath

package purity

import "github.com/meko-christian/algo-approx"

// mathSqrt computes sqrt(x) using fast approximation.
// Magnitudes feed dB figures only, so the approximation error is far below
// the reported resolution.
func mathSqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return approx.FastSqrt(x)
}
