package accuracy

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fastcos/stats/errstat"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultLower   = -1000.0
	defaultUpper   = 1000.0
	defaultSamples = 10000
	defaultSeed    = 1

	blockSize = 4096
)

var (
	ErrNilFunc      = errors.New("accuracy: nil function")
	ErrInvalidRange = errors.New("accuracy: invalid input range")
	ErrNoSamples    = errors.New("accuracy: negative sample count")
)

// Func is a scalar real function such as an approximation or its reference.
type Func func(float64) float64

// Config describes the inputs of a sweep.
// A zero Lower and Upper selects [-1000, 1000]; zero Samples selects 10000
// and a zero Seed selects 1.
type Config struct {
	Lower   float64
	Upper   float64
	Samples int
	Seed    int64
	// Grid samples an evenly spaced grid including both bounds instead of
	// seeded uniform random inputs.
	Grid bool
}

// Result holds the outcome of a sweep. Lower, Upper and Inputs describe the
// inputs actually evaluated after defaults were applied.
type Result struct {
	Lower       float64
	Upper       float64
	Inputs      int
	MaxAbsError float64
	WorstInput  float64
	RMSError    float64
	MeanError   float64
	MinOutput   float64
	MaxOutput   float64
	Stats       errstat.Stats
}

// Within reports whether the maximum absolute error is at most tol.
// A NaN error never passes.
func (r Result) Within(tol float64) bool {
	return r.MaxAbsError <= tol
}

// Sweep evaluates fn and ref over the inputs described by cfg.
//
//nolint:funlen
func Sweep(fn, ref Func, cfg Config) (Result, error) {
	if fn == nil || ref == nil {
		return Result{}, ErrNilFunc
	}

	cfg = normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return Result{}, err
	}

	next := inputSource(cfg)

	var (
		acc      errstat.Accumulator
		worstErr = -1.0
		worstX   = math.NaN()
		minOut   = math.Inf(1)
		maxOut   = math.Inf(-1)
	)

	n := min(cfg.Samples, blockSize)
	xs := make([]float64, n)
	got := make([]float64, n)
	want := make([]float64, n)
	diff := make([]float64, n)

	for done := 0; done < cfg.Samples; {
		m := min(blockSize, cfg.Samples-done)
		xs, got, want, diff = xs[:m], got[:m], want[:m], diff[:m]

		for i := range xs {
			x := next(done + i)
			xs[i] = x
			got[i] = fn(x)
			want[i] = ref(x)

			if got[i] < minOut {
				minOut = got[i]
			}
			if got[i] > maxOut {
				maxOut = got[i]
			}
		}

		vecmath.ScaleBlockInPlace(want, -1)
		vecmath.AddBlock(diff, got, want)
		acc.Update(diff)

		if peak := vecmath.MaxAbs(diff); peak > worstErr {
			for i, d := range diff {
				if math.Abs(d) == peak {
					worstErr = peak
					worstX = xs[i]
					break
				}
			}
		}

		done += m
	}

	stats := acc.Result()

	return Result{
		Lower:       cfg.Lower,
		Upper:       cfg.Upper,
		Inputs:      stats.Length,
		MaxAbsError: stats.Peak,
		WorstInput:  worstX,
		RMSError:    stats.RMS,
		MeanError:   stats.Mean,
		MinOutput:   minOut,
		MaxOutput:   maxOut,
		Stats:       stats,
	}, nil
}

// PointResult is the error of a single evaluation.
type PointResult struct {
	X        float64
	Got      float64
	Want     float64
	AbsError float64
}

// Points evaluates fn and ref at every x in xs.
func Points(fn, ref Func, xs []float64) ([]PointResult, error) {
	if fn == nil || ref == nil {
		return nil, ErrNilFunc
	}

	out := make([]PointResult, len(xs))
	for i, x := range xs {
		got, want := fn(x), ref(x)
		out[i] = PointResult{X: x, Got: got, Want: want, AbsError: math.Abs(got - want)}
	}

	return out, nil
}

// Evenness reports whether fn(x) and fn(-x) are bit-identical for every x in
// xs. If not, it returns the first offending input.
func Evenness(fn Func, xs []float64) (float64, bool) {
	for _, x := range xs {
		if math.Float64bits(fn(x)) != math.Float64bits(fn(-x)) {
			return x, false
		}
	}

	return 0, true
}

// Periodicity returns the largest |fn(x) - fn(x + 2πk)| over xs and
// 0 < |k| ≤ kmax.
func Periodicity(fn Func, xs []float64, kmax int) float64 {
	worst := 0.0
	for _, x := range xs {
		base := fn(x)
		for k := -kmax; k <= kmax; k++ {
			if k == 0 {
				continue
			}

			d := math.Abs(base - fn(x+2*math.Pi*float64(k)))
			if d > worst || math.IsNaN(d) {
				worst = d
			}
		}
	}

	return worst
}

func normalizeConfig(cfg Config) Config {
	if cfg.Lower == 0 && cfg.Upper == 0 {
		cfg.Lower = defaultLower
		cfg.Upper = defaultUpper
	}

	if cfg.Samples == 0 {
		cfg.Samples = defaultSamples
	}

	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}

	return cfg
}

func validateConfig(cfg Config) error {
	if cfg.Samples < 0 {
		return fmt.Errorf("%w: %d", ErrNoSamples, cfg.Samples)
	}

	if math.IsNaN(cfg.Lower) || math.IsNaN(cfg.Upper) ||
		math.IsInf(cfg.Lower, 0) || math.IsInf(cfg.Upper, 0) || cfg.Lower > cfg.Upper {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, cfg.Lower, cfg.Upper)
	}

	return nil
}

// inputSource returns the generator of the i-th sweep input.
func inputSource(cfg Config) func(int) float64 {
	span := cfg.Upper - cfg.Lower

	if cfg.Grid {
		last := cfg.Samples - 1
		return func(i int) float64 {
			if last <= 0 {
				return cfg.Lower
			}
			if i == last {
				return cfg.Upper
			}
			return cfg.Lower + span*float64(i)/float64(last)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	return func(int) float64 {
		return cfg.Lower + rng.Float64()*span
	}
}
