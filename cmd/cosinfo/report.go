package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-fastcos/dsp/window"
	"github.com/cwbudde/algo-fastcos/fastcos"
	"github.com/cwbudde/algo-fastcos/measure/accuracy"
	"github.com/cwbudde/algo-fastcos/measure/purity"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// largeArguments are checked against fastcos.ErrorBound rather than the
// bounded-range tolerance.
var largeArguments = []float64{1e4, 1e5, 1e6, -1e7, 2e8, 1e12, 1e16}

const (
	symmetryInputs = 2000
	symmetryPeriod = 8
)

func printCPU(w io.Writer) {
	f := cpu.DetectFeatures()
	_, _ = fmt.Fprintf(w, "CPU: %s, SIMD level %s\n\n", f.Architecture, simdLevel(f))
}

func simdLevel(f cpu.Features) cpu.SIMDLevel {
	for _, l := range []cpu.SIMDLevel{cpu.SIMDAVX512, cpu.SIMDAVX2, cpu.SIMDAVX, cpu.SIMDSSE2, cpu.SIMDNEON} {
		if cpu.Supports(f, l) {
			return l
		}
	}
	return cpu.SIMDNone
}

// printSweeps reports the range and input count each sweep actually used,
// which differ from the request when accuracy defaults apply.
func printSweeps(w io.Writer, sweeps []sweepSpec) (bool, error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Sweep\tRange\tInputs\tMax Error\tWorst x\tRMS Error\tDigits\tTol\tResult\n")
	_, _ = fmt.Fprintf(tw, "-----\t-----\t------\t---------\t-------\t---------\t------\t---\t------\n")

	ok := true
	for _, s := range sweeps {
		res, err := accuracy.Sweep(fastcos.Cos, math.Cos, accuracy.Config{
			Lower:   s.Lower,
			Upper:   s.Upper,
			Samples: s.Samples,
			Seed:    s.Seed,
			Grid:    s.Grid,
		})
		if err != nil {
			return false, fmt.Errorf("sweep %q: %w", s.Name, err)
		}

		pass := res.Within(s.Tol)
		ok = ok && pass

		_, _ = fmt.Fprintf(tw, "%s\t[%g, %g]\t%d\t%.3e\t%.6g\t%.3e\t%.1f\t%.0e\t%s\n",
			s.Name,
			res.Lower, res.Upper,
			res.Inputs,
			res.MaxAbsError,
			res.WorstInput,
			res.RMSError,
			res.Stats.Digits,
			s.Tol,
			verdict(pass),
		)
	}

	if err := tw.Flush(); err != nil {
		return false, fmt.Errorf("flush output: %w", err)
	}
	_, _ = fmt.Fprintln(w)

	return ok, nil
}

func printLandmarks(w io.Writer) bool {
	lms := accuracy.Landmarks()
	points, err := accuracy.Points(fastcos.Cos, accuracy.LandmarkFunc, accuracy.Inputs(lms))
	if err != nil {
		return false
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Landmark\tCos\tExact\tError\tResult\n")
	_, _ = fmt.Fprintf(tw, "--------\t---\t-----\t-----\t------\n")

	ok := true
	for i, p := range points {
		pass := p.AbsError <= fastcos.Tolerance
		ok = ok && pass
		_, _ = fmt.Fprintf(tw, "%s\t%.15f\t%.15f\t%.3e\t%s\n", lms[i].Name, p.Got, p.Want, p.AbsError, verdict(pass))
	}

	_ = tw.Flush()
	_, _ = fmt.Fprintln(w)

	return ok
}

// reducedCos is math.Cos of the argument after the same full-period
// reduction fastcos.Cos performs.
func reducedCos(x float64) float64 {
	return math.Cos(math.Mod(math.Abs(x), 2*math.Pi))
}

// printLargeArguments compares fastcos.Cos far outside the bounded range
// with math.Cos and with reducedCos. The first error grows with |x| because
// 2π is rounded; the second stays at the polynomial accuracy.
func printLargeArguments(w io.Writer) bool {
	direct, err := accuracy.Points(fastcos.Cos, math.Cos, largeArguments)
	if err != nil {
		return false
	}
	reduced, err := accuracy.Points(fastcos.Cos, reducedCos, largeArguments)
	if err != nil {
		return false
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "x\tCos\tmath.Cos\tError\tBound\tReduced Error\tResult\n")
	_, _ = fmt.Fprintf(tw, "-\t---\t--------\t-----\t-----\t-------------\t------\n")

	ok := true
	for i, p := range direct {
		bound := fastcos.ErrorBound(p.X)
		pass := p.AbsError <= bound && reduced[i].AbsError <= fastcos.Tolerance
		ok = ok && pass
		_, _ = fmt.Fprintf(tw, "%g\t%.12f\t%.12f\t%.3e\t%.3e\t%.3e\t%s\n",
			p.X, p.Got, p.Want, p.AbsError, bound, reduced[i].AbsError, verdict(pass))
	}

	_ = tw.Flush()
	_, _ = fmt.Fprintln(w)

	return ok
}

// printSymmetry checks that fastcos.Cos is even bit for bit and that
// shifting by whole periods stays within the bounded-range tolerance.
func printSymmetry(w io.Writer) bool {
	xs := symmetrySamples()

	worstOdd, even := accuracy.Evenness(fastcos.Cos, xs)
	drift := accuracy.Periodicity(fastcos.Cos, xs, symmetryPeriod)
	periodic := drift <= 2*fastcos.Tolerance

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Symmetry\tInputs\tDetail\tResult\n")
	_, _ = fmt.Fprintf(tw, "--------\t------\t------\t------\n")

	evenDetail := "bit-identical"
	if !even {
		evenDetail = fmt.Sprintf("differs at x=%g", worstOdd)
	}
	_, _ = fmt.Fprintf(tw, "cos(-x) = cos(x)\t%d\t%s\t%s\n", len(xs), evenDetail, verdict(even))
	_, _ = fmt.Fprintf(tw, "cos(x + 2πk), |k| ≤ %d\t%d\tmax drift %.3e\t%s\n", symmetryPeriod, len(xs), drift, verdict(periodic))

	_ = tw.Flush()
	_, _ = fmt.Fprintln(w)

	return even && periodic
}

func symmetrySamples() []float64 {
	res := make([]float64, 0, symmetryInputs)
	for i := 0; i < symmetryInputs; i++ {
		// Golden-ratio stepping spreads the inputs evenly over [-100, 100).
		frac := math.Mod(float64(i)*0.6180339887498949, 1)
		res = append(res, -100+200*frac)
	}
	return res
}

func printPurity(w io.Writer, cycles, fftSize int, wt window.Type) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Source\tFFT\tBin\tAmplitude\tTHD [dB]\tSFDR [dB]\tSpur Bin\n")
	_, _ = fmt.Fprintf(tw, "------\t---\t---\t---------\t--------\t---------\t--------\n")

	sources := []struct {
		name string
		fn   accuracy.Func
	}{
		{"fastcos.Cos", fastcos.Cos},
		{"math.Cos", math.Cos},
	}

	signal := make([]float64, fftSize)
	for _, src := range sources {
		purity.Render(signal, src.fn, float64(cycles))
		res, err := purity.Analyze(signal, purity.Config{
			FFTSize:        fftSize,
			FundamentalBin: cycles,
			WindowType:     wt,
		})
		if err != nil {
			return fmt.Errorf("purity of %s: %w", src.name, err)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%.9f\t%.1f\t%.1f\t%d\n",
			src.name, res.FFTSize, res.FundamentalBin, res.Amplitude, res.THD_dB, res.SFDR_dB, res.SpurBin)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

func verdict(pass bool) string {
	if pass {
		return "ok"
	}
	return "FAIL"
}
