package accuracy

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fastcos/fastcos"
)

func BenchmarkSweep(b *testing.B) {
	sizes := []int{1024, 10000, 100000}
	for _, n := range sizes {
		b.Run("samples_"+itoa(n), func(b *testing.B) {
			cfg := Config{Samples: n}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, err := Sweep(fastcos.Cos, math.Cos, cfg); err != nil {
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
