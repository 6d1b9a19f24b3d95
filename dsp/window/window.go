// Package window generates cosine-sum analysis windows.
//
// Every window here is a finite sum w(x) = Σ c_k·cos(2πk·x) over the
// normalized position x ∈ [0, 1], evaluated with fastcos.Cos. The windows are
// used by measure/purity to shape the tones it analyzes.
package window

import (
	"math"

	"github.com/cwbudde/algo-fastcos/fastcos"
	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name             string
	ENBW             float64 // bins
	HighestSidelobe  float64 // dB
	CoherentGain     float64
	FirstMinimumBins float64
}

var (
	rectangularCoeffs = []float64{1}
	hannCoeffs        = []float64{0.5, -0.5}
	hammingCoeffs     = []float64{0.54, -0.46}
	blackmanCoeffs    = []float64{0.42, -0.5, 0.08}
	blackmanHarris4   = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs     = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "Rectangular", ENBW: 1, HighestSidelobe: -13.3, CoherentGain: 1, FirstMinimumBins: 1},
	TypeHann:                {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5, FirstMinimumBins: 2},
	TypeHamming:             {Name: "Hamming", ENBW: 1.36, HighestSidelobe: -42.7, CoherentGain: 0.54, FirstMinimumBins: 2},
	TypeBlackman:            {Name: "Blackman", ENBW: 1.73, HighestSidelobe: -58.1, CoherentGain: 0.42, FirstMinimumBins: 3},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris 4-term", ENBW: 2.0, HighestSidelobe: -92.0, CoherentGain: 0.35875, FirstMinimumBins: 4},
	TypeFlatTop:             {Name: "Flat Top", ENBW: 3.77, HighestSidelobe: -93.0, CoherentGain: 0.21557895, FirstMinimumBins: 5},
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
// Unknown types generate a rectangular window.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	coeffs := termsOf(t)

	out := make([]float64, length)
	for i := range out {
		out[i] = cosineFromCoeffs(samplePosition(i, length, cfg.periodic), coeffs)
	}

	return out
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// CoherentGain returns sum(w[n]) / N, the DC gain of the window.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	return vecmath.Sum(coeffs) / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	s := vecmath.Sum(coeffs)
	if s == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * vecmath.DotProduct(coeffs, coeffs) / (s * s), nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func termsOf(t Type) []float64 {
	switch t {
	case TypeHann:
		return hannCoeffs
	case TypeHamming:
		return hammingCoeffs
	case TypeBlackman:
		return blackmanCoeffs
	case TypeBlackmanHarris4Term:
		return blackmanHarris4
	case TypeFlatTop:
		return flatTopCoeffs
	default:
		return rectangularCoeffs
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	acc := coeffs[0]
	for k := 1; k < len(coeffs); k++ {
		acc += coeffs[k] * fastcos.Cos(float64(k)*phase)
	}

	return acc
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
