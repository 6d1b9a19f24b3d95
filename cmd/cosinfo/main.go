// Command cosinfo reports the accuracy of the fastcos approximation.
//
// Usage:
//
//	cosinfo [flags]
//
// Without flags it sweeps 10000 seeded inputs in [-1000, 1000], checks the
// landmark angles, very large arguments, evenness and periodicity, and
// measures the spectral purity of a rendered tone. The exit status is 1 if any check
// fails and 2 on a usage or configuration error.
//
// Examples:
//
//	cosinfo
//	cosinfo -lower -10 -upper 10 -samples 100000 -grid
//	cosinfo -config sweeps.yaml -purity=false
//	cosinfo -window blackman-harris -cycles 100 -fft 16384
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cwbudde/algo-fastcos/dsp/window"
	"github.com/cwbudde/algo-fastcos/fastcos"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

var windowsByName = map[string]window.Type{
	"rectangular":     window.TypeRectangular,
	"hann":            window.TypeHann,
	"hamming":         window.TypeHamming,
	"blackman":        window.TypeBlackman,
	"blackman-harris": window.TypeBlackmanHarris4Term,
	"flat-top":        window.TypeFlatTop,
}

type options struct {
	sweeps    []sweepSpec
	landmarks bool
	large     bool
	symmetry  bool
	purity    bool
	cycles    int
	fftSize   int
	window    window.Type
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return exitUsage
	}

	failed := false

	printCPU(stdout)

	ok, err := printSweeps(stdout, opts.sweeps)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	failed = failed || !ok

	if opts.landmarks {
		failed = !printLandmarks(stdout) || failed
	}

	if opts.large {
		failed = !printLargeArguments(stdout) || failed
	}

	if opts.symmetry {
		failed = !printSymmetry(stdout) || failed
	}

	if opts.purity {
		if err := printPurity(stdout, opts.cycles, opts.fftSize, opts.window); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
	}

	if failed {
		return exitFailed
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("cosinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	lower := fs.Float64("lower", -1000, "lower bound of the sweep range (radians)")
	upper := fs.Float64("upper", 1000, "upper bound of the sweep range (radians)")
	samples := fs.Int("samples", 10000, "number of sweep inputs")
	seed := fs.Int64("seed", 1, "random seed for uniform sampling")
	grid := fs.Bool("grid", false, "sweep an evenly spaced grid instead of random inputs")
	tol := fs.Float64("tol", fastcos.Tolerance, "maximum absolute error for a sweep to pass")
	configPath := fs.String("config", "", "YAML file with a list of sweeps (overrides the sweep flags)")
	landmarks := fs.Bool("landmarks", true, "check the landmark angles")
	large := fs.Bool("large", true, "check very large arguments against the documented error bound")
	symmetry := fs.Bool("symmetry", true, "check evenness and 2π periodicity")
	purity := fs.Bool("purity", true, "measure the spectral purity of a rendered tone")
	cycles := fs.Int("cycles", 64, "tone periods across the FFT frame")
	fftSize := fs.Int("fft", 4096, "FFT size for the purity measurement")
	windowName := fs.String("window", "rectangular", "analysis window: "+strings.Join(windowNames(), ", "))

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: cosinfo [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Reports the accuracy of the fastcos cosine approximation.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	wt, ok := windowsByName[strings.ToLower(strings.TrimSpace(*windowName))]
	if !ok {
		return options{}, fmt.Errorf("unknown window %q (available: %s)", *windowName, strings.Join(windowNames(), ", "))
	}

	if *cycles <= 0 || *fftSize <= 0 || *cycles >= *fftSize/2 {
		return options{}, fmt.Errorf("cycles must be in [1, fft/2): cycles=%d fft=%d", *cycles, *fftSize)
	}

	opts := options{
		landmarks: *landmarks,
		large:     *large,
		symmetry:  *symmetry,
		purity:    *purity,
		cycles:    *cycles,
		fftSize:   *fftSize,
		window:    wt,
	}

	if *configPath != "" {
		sweeps, err := loadConfig(*configPath)
		if err != nil {
			return options{}, err
		}
		opts.sweeps = sweeps
		return opts, nil
	}

	spec := sweepSpec{
		Name:    "flags",
		Lower:   *lower,
		Upper:   *upper,
		Samples: *samples,
		Seed:    *seed,
		Grid:    *grid,
		Tol:     *tol,
	}
	if err := spec.validate(); err != nil {
		return options{}, err
	}
	opts.sweeps = []sweepSpec{spec}

	return opts, nil
}

func windowNames() []string {
	names := make([]string, 0, len(windowsByName))
	for n := range windowsByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
