package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/hmmgen/sampler"
)

// ExampleCDF shows that weights need not be normalized and that a zero-mass
// outcome is never selected.
func ExampleCDF() {
	cdf, err := sampler.NewCDF([]float64{2, 0, 6})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f %.2f %.2f\n", cdf.Prob(0), cdf.Prob(1), cdf.Prob(2))

	rng := sampler.NewRand(1)
	hits := 0
	for i := 0; i < 1000; i++ {
		if idx, _ := cdf.Sample(rng); idx == 1 {
			hits++
		}
	}
	fmt.Println("zero-mass hits:", hits)
	// Output:
	// 0.25 0.00 0.75
	// zero-mass hits: 0
}

// ExampleSample shows the error raised for a degenerate row.
func ExampleSample() {
	_, err := sampler.Sample(sampler.NewRand(1), []float64{0, 0})
	fmt.Println(err)
	// Output:
	// Sample: NewCDF: ValidateWeights: sum=0 is not positive and finite: sampler: invalid distribution
}
