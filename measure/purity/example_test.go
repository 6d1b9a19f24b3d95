package purity_test

import (
	"fmt"

	"github.com/cwbudde/algo-fastcos/fastcos"
	"github.com/cwbudde/algo-fastcos/measure/purity"
)

func ExampleAnalyze() {
	signal := make([]float64, 4096)
	purity.Render(signal, fastcos.Cos, 64)

	res, err := purity.Analyze(signal, purity.Config{})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("fundamental bin:", res.FundamentalBin)
	fmt.Println("SFDR above 200 dB:", res.SFDR_dB > 200)
	fmt.Printf("amplitude: %.6f\n", res.Amplitude)
	// Output:
	// fundamental bin: 64
	// SFDR above 200 dB: true
	// amplitude: 1.000000
}
