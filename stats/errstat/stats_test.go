package errstat

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)

	if s.Length != 0 {
		t.Fatalf("Length = %d, want 0", s.Length)
	}
	if !math.IsInf(s.Peak_dB, -1) || !math.IsInf(s.RMS_dB, -1) {
		t.Fatalf("dB fields = %v/%v, want -Inf", s.Peak_dB, s.RMS_dB)
	}
	if !math.IsInf(s.Digits, 1) {
		t.Fatalf("Digits = %v, want +Inf", s.Digits)
	}
}

func TestCalculateKnownErrors(t *testing.T) {
	errs := []float64{1e-13, -3e-13, 2e-13, 0}
	s := Calculate(errs)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"Mean", s.Mean, 0},
		{"Max", s.Max, 2e-13},
		{"Min", s.Min, -3e-13},
		{"Peak", s.Peak, 3e-13},
		{"RMS", s.RMS, math.Sqrt((1e-26 + 9e-26 + 4e-26) / 4)},
		{"Variance", s.Variance, (1e-26 + 9e-26 + 4e-26) / 4},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want, 1e-28) {
			t.Fatalf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if s.MaxPos != 2 || s.MinPos != 1 || s.PeakPos != 1 {
		t.Fatalf("positions = max %d min %d peak %d, want 2 1 1", s.MaxPos, s.MinPos, s.PeakPos)
	}
	if !almostEqual(s.Digits, -math.Log10(3e-13), tolerance) {
		t.Fatalf("Digits = %v, want %v", s.Digits, -math.Log10(3e-13))
	}
	if !almostEqual(s.Peak_dB, 20*math.Log10(3e-13), 1e-9) {
		t.Fatalf("Peak_dB = %v", s.Peak_dB)
	}
}

func TestCalculateAllZero(t *testing.T) {
	s := Calculate(make([]float64, 8))

	if s.Peak != 0 || s.RMS != 0 {
		t.Fatalf("Peak/RMS = %v/%v, want 0", s.Peak, s.RMS)
	}
	if !math.IsInf(s.Digits, 1) {
		t.Fatalf("Digits = %v, want +Inf for exact results", s.Digits)
	}
}

func TestCalculateNaNPropagates(t *testing.T) {
	s := Calculate([]float64{1e-14, math.NaN(), -1e-14})

	if !math.IsNaN(s.Peak) || !math.IsNaN(s.Digits) || !math.IsNaN(s.Mean) {
		t.Fatalf("NaN not propagated: peak %v digits %v mean %v", s.Peak, s.Digits, s.Mean)
	}
}

func TestAccumulatorMatchesCalculate(t *testing.T) {
	errs := make([]float64, 1000)
	for i := range errs {
		errs[i] = 1e-13 * math.Sin(0.37*float64(i)) * float64(i%7)
	}

	want := Calculate(errs)

	var acc Accumulator
	for start := 0; start < len(errs); start += 128 {
		end := min(start+128, len(errs))
		acc.Update(errs[start:end])
	}

	got := acc.Result()
	if got != want {
		t.Fatalf("block result %+v differs from one-shot %+v", got, want)
	}
	if acc.Len() != len(errs) {
		t.Fatalf("Len = %d, want %d", acc.Len(), len(errs))
	}

	acc.Reset()
	if acc.Len() != 0 || acc.Result().Length != 0 {
		t.Fatal("Reset did not clear the accumulator")
	}
}
