package errstat

import (
	"math"
	"testing"
)

func BenchmarkCalculate(b *testing.B) {
	errs := make([]float64, 16384)
	for i := range errs {
		errs[i] = 1e-14 * math.Sin(float64(i))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_ = Calculate(errs)
	}
}
