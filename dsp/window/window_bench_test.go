package window

import (
	"math"
	"testing"
)

func BenchmarkGeneratePeriodic(b *testing.B) {
	for _, n := range []int{256, 4096, 16384} {
		for _, typ := range []Type{TypeHann, TypeBlackmanHarris4Term, TypeFlatTop} {
			coeffs := termsOf(typ)
			name := Info(typ).Name + "/" + itoa(n)

			b.Run("fastcos/"+name, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_ = Generate(typ, n, WithPeriodic())
				}
			})

			b.Run("math.Cos/"+name, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					out := make([]float64, n)
					for j := range out {
						out[j] = mathCosineSum(coeffs, float64(j)/float64(n))
					}
				}
			})
		}
	}
}

func mathCosineSum(coeffs []float64, x float64) float64 {
	phase := 2 * math.Pi * x

	acc := coeffs[0]
	for k := 1; k < len(coeffs); k++ {
		acc += coeffs[k] * math.Cos(float64(k)*phase)
	}

	return acc
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	buf := [20]byte{}
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
