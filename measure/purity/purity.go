//nolint:funlen
package purity

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fastcos/dsp/window"
	"github.com/cwbudde/algo-fastcos/measure/accuracy"
	algofft "github.com/cwbudde/algo-fft"
)

var (
	ErrEmptySignal           = errors.New("purity: empty signal")
	ErrFundamentalOutOfRange = errors.New("purity: fundamental bin out of range")
)

// Config holds spectral purity analysis parameters.
type Config struct {
	// FFTSize defaults to the next power of two of the signal length. Longer
	// signals are truncated, shorter ones zero-padded.
	FFTSize int
	// FundamentalBin defaults to the strongest non-DC bin.
	FundamentalBin int
	// WindowType is applied in periodic form. The zero value is rectangular,
	// which is exact for tones produced by Render with integer cycles.
	WindowType window.Type
	// CaptureBins is the half-width of the band attributed to one spectral
	// line. Zero derives it from the window main lobe.
	CaptureBins int
	// MaxHarmonics limits the harmonics considered; zero means all up to
	// Nyquist.
	MaxHarmonics int
}

// Result holds spectral purity measurements.
//
//nolint:revive
type Result struct {
	FFTSize          int
	FundamentalBin   int
	FundamentalLevel float64
	HarmonicLevels   []float64 // relative to the fundamental, starting at H2
	THD              float64
	THD_dB           float64
	SpurBin          int
	SpurLevel        float64 // relative to the fundamental
	SFDR_dB          float64
	// CoherentGain and ENBW describe the analysis window over the analyzed
	// samples. Amplitude is the fundamental's peak amplitude recovered from
	// FundamentalLevel with them.
	CoherentGain float64
	ENBW         float64
	Amplitude    float64
}

// Render fills dst with fn sampled at cycles full periods across len(dst)
// samples: dst[i] = fn(2π·cycles·i/len(dst)).
func Render(dst []float64, fn accuracy.Func, cycles float64) {
	if len(dst) == 0 {
		return
	}

	step := 2 * math.Pi * cycles / float64(len(dst))
	for i := range dst {
		dst[i] = fn(step * float64(i))
	}
}

// Analyze windows signal, transforms it and evaluates its spectral purity.
func Analyze(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}

	used := signal[:min(len(signal), fftSize)]

	coeffs := window.Generate(cfg.WindowType, len(used), window.WithPeriodic())
	windowed := make([]float64, len(used))
	copy(windowed, used)
	if err := window.ApplyCoefficientsInPlace(windowed, coeffs); err != nil {
		return Result{}, fmt.Errorf("purity: %w", err)
	}

	cg, err := window.CoherentGain(coeffs)
	if err != nil {
		return Result{}, fmt.Errorf("purity: %w", err)
	}
	enbw, err := window.EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Result{}, fmt.Errorf("purity: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("purity: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("purity: forward FFT failed: %w", err)
	}

	magSquared := make([]float64, fftSize/2+1)
	for i := range magSquared {
		x := out[i]
		magSquared[i] = real(x)*real(x) + imag(x)*imag(x)
	}

	res, err := calculate(magSquared, fftSize, cfg)
	if err != nil {
		return Result{}, err
	}

	// A tone of amplitude A puts A/2·sqrt(fftSize·Σw²) into its band, and
	// Σw² = ENBW·len·CG².
	res.CoherentGain = cg
	res.ENBW = enbw
	res.Amplitude = 2 * res.FundamentalLevel / (cg * math.Sqrt(float64(fftSize)*float64(len(used))*enbw))

	return res, nil
}

func calculate(magSquared []float64, fftSize int, cfg Config) (Result, error) {
	maxBin := len(magSquared) - 1

	fundamental := cfg.FundamentalBin
	if fundamental == 0 {
		fundamental = strongestBin(magSquared)
	}

	if fundamental < 1 || fundamental > maxBin {
		return Result{}, fmt.Errorf("%w: %d not in [1, %d]", ErrFundamentalOutOfRange, fundamental, maxBin)
	}

	capture := cfg.CaptureBins
	if capture <= 0 {
		capture = max(int(window.Info(cfg.WindowType).FirstMinimumBins)-1, 0)
	}

	fundLevel := bandLevel(magSquared, fundamental, capture)

	res := Result{
		FFTSize:          fftSize,
		FundamentalBin:   fundamental,
		FundamentalLevel: fundLevel,
		THD_dB:           math.Inf(-1),
		SpurBin:          -1,
		SFDR_dB:          math.Inf(1),
	}

	if fundLevel == 0 {
		return res, nil
	}

	harmonicPower := 0.0
	for k := 2; k*fundamental <= maxBin; k++ {
		if cfg.MaxHarmonics > 0 && len(res.HarmonicLevels) >= cfg.MaxHarmonics {
			break
		}

		h := bandLevel(magSquared, k*fundamental, capture) / fundLevel
		res.HarmonicLevels = append(res.HarmonicLevels, h)
		harmonicPower += h * h
	}

	res.THD = mathSqrt(harmonicPower)
	res.THD_dB = ratioToDB(res.THD)

	peak := mathSqrt(magSquared[fundamental])
	spur := 0.0
	for i, v := range magSquared {
		if i >= fundamental-capture && i <= fundamental+capture {
			continue
		}

		if m := mathSqrt(v); m > spur {
			spur = m
			res.SpurBin = i
		}
	}

	if spur > 0 {
		res.SpurLevel = spur / peak
		res.SFDR_dB = -ratioToDB(res.SpurLevel)
	}

	return res, nil
}

// bandLevel returns the root-sum-square magnitude of bin ± capture.
func bandLevel(magSquared []float64, bin, capture int) float64 {
	lo := max(bin-capture, 0)
	hi := min(bin+capture, len(magSquared)-1)

	power := 0.0
	for i := lo; i <= hi; i++ {
		power += magSquared[i]
	}

	return mathSqrt(power)
}

func strongestBin(magSquared []float64) int {
	best := 1
	for i := 2; i < len(magSquared); i++ {
		if magSquared[i] > magSquared[best] {
			best = i
		}
	}

	return best
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
