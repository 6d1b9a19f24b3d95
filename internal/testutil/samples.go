package testutil

import "math/rand"

// UniformSamples draws n values uniformly from [lo, hi) with a fixed seed.
func UniformSamples(seed int64, lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	span := hi - lo
	for i := range out {
		out[i] = lo + rng.Float64()*span
	}
	return out
}

// Linspace returns n evenly spaced values covering [lo, hi] inclusive.
// A single sample sits at lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}
