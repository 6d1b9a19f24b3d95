// Package errstat summarizes approximation error signals.
//
// An error signal is the sample-wise difference between an approximation
// and its reference. The statistics are computed in a single pass with
// Welford's algorithm, either over a whole slice ([Calculate]) or block by
// block ([Accumulator]) with bit-identical results.
package errstat

import "math"

// Stats holds error statistics.
//
//nolint:revive
type Stats struct {
	Length   int
	Mean     float64 // signed bias
	RMS      float64
	RMS_dB   float64
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Peak     float64 // max(|e|)
	PeakPos  int
	Peak_dB  float64
	Variance float64
	StdDev   float64
	Digits   float64 // -log10(Peak), decimal digits of absolute accuracy
}

func emptyStats() Stats {
	return Stats{
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
		Digits:  math.Inf(1),
	}
}

// Calculate computes all statistics of errs in a single pass.
// A NaN anywhere in errs turns Peak, Peak_dB and Digits into NaN.
func Calculate(errs []float64) Stats {
	var a Accumulator
	a.Update(errs)
	return a.Result()
}

// Accumulator collects error statistics incrementally across blocks.
// The zero value is ready to use.
type Accumulator struct {
	n       int
	mean    float64
	m2      float64
	sumSq   float64
	maxVal  float64
	maxPos  int
	minVal  float64
	minPos  int
	peak    float64
	peakPos int
	hasNaN  bool
}

// Update adds a block of error samples.
func (a *Accumulator) Update(errs []float64) {
	for _, e := range errs {
		pos := a.n
		a.n++

		if math.IsNaN(e) {
			a.hasNaN = true
		}

		delta := e - a.mean
		a.mean += delta / float64(a.n)
		a.m2 += delta * (e - a.mean)

		a.sumSq += e * e

		if pos == 0 {
			a.maxVal, a.minVal = e, e
			a.peak = math.Abs(e)
			continue
		}

		if e > a.maxVal {
			a.maxVal = e
			a.maxPos = pos
		}

		if e < a.minVal {
			a.minVal = e
			a.minPos = pos
		}

		if abs := math.Abs(e); abs > a.peak {
			a.peak = abs
			a.peakPos = pos
		}
	}
}

// Len returns the number of samples seen so far.
func (a *Accumulator) Len() int {
	return a.n
}

// Reset clears the accumulator.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Result computes the statistics of everything accumulated so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return emptyStats()
	}

	nf := float64(a.n)
	rms := math.Sqrt(a.sumSq / nf)
	variance := a.m2 / nf

	peak := a.peak
	if a.hasNaN {
		peak = math.NaN()
	}

	return Stats{
		Length:   a.n,
		Mean:     a.mean,
		RMS:      rms,
		RMS_dB:   ampTodB(rms),
		Max:      a.maxVal,
		MaxPos:   a.maxPos,
		Min:      a.minVal,
		MinPos:   a.minPos,
		Peak:     peak,
		PeakPos:  a.peakPos,
		Peak_dB:  ampTodB(peak),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Digits:   digits(peak),
	}
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

func digits(peak float64) float64 {
	if peak == 0 {
		return math.Inf(1)
	}

	return -math.Log10(peak)
}
