package purity

import (
	"testing"

	"github.com/cwbudde/algo-fastcos/fastcos"
)

func BenchmarkAnalyze(b *testing.B) {
	sizes := []int{1024, 4096, 16384}
	for _, n := range sizes {
		b.Run("fft_"+itoa(n), func(b *testing.B) {
			signal := make([]float64, n)
			Render(signal, fastcos.Cos, 31)

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, err := Analyze(signal, Config{}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}

	buf := [20]byte{}

	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}

	return string(buf[i:])
}
