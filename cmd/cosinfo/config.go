package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-fastcos/fastcos"
	"sigs.k8s.io/yaml"
)

var errNoSweeps = errors.New("config defines no sweeps")

// fileConfig is the layout of a -config YAML file:
//
//	sweeps:
//	  - name: bounded
//	    lower: -1000
//	    upper: 1000
//	    samples: 10000
//	    seed: 1
//	    tol: 1e-12
//	  - name: one-period
//	    lower: -6.283185307179586
//	    upper: 6.283185307179586
//	    samples: 4001
//	    grid: true
type fileConfig struct {
	Sweeps []sweepSpec `json:"sweeps"`
}

type sweepSpec struct {
	Name    string  `json:"name"`
	Lower   float64 `json:"lower"`
	Upper   float64 `json:"upper"`
	Samples int     `json:"samples"`
	Seed    int64   `json:"seed"`
	Grid    bool    `json:"grid"`
	Tol     float64 `json:"tol"`
}

func loadConfig(path string) ([]sweepSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	sweeps, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return sweeps, nil
}

func parseConfig(data []byte) ([]sweepSpec, error) {
	var cfg fileConfig
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, err
	}

	if len(cfg.Sweeps) == 0 {
		return nil, errNoSweeps
	}

	for i := range cfg.Sweeps {
		s := &cfg.Sweeps[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("sweep-%d", i+1)
		}
		if s.Tol == 0 {
			s.Tol = fastcos.Tolerance
		}
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("sweep %q: %w", s.Name, err)
		}
	}

	return cfg.Sweeps, nil
}

func (s sweepSpec) validate() error {
	if s.Samples < 0 {
		return fmt.Errorf("samples must be >= 0: %d", s.Samples)
	}
	if s.Tol < 0 || math.IsNaN(s.Tol) {
		return fmt.Errorf("tol must be >= 0: %g", s.Tol)
	}
	if s.Lower > s.Upper {
		return fmt.Errorf("lower %g exceeds upper %g", s.Lower, s.Upper)
	}
	return nil
}
