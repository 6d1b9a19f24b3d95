package errstat_test

import (
	"fmt"

	"github.com/cwbudde/algo-fastcos/stats/errstat"
)

func ExampleCalculate() {
	s := errstat.Calculate([]float64{1e-13, -1e-12, 5e-13})
	fmt.Printf("peak=%.0e at %d, digits=%.1f\n", s.Peak, s.PeakPos, s.Digits)

	// Output:
	// peak=1e-12 at 1, digits=12.0
}
