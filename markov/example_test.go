package markov_test

import (
	"fmt"

	"github.com/katalvlaran/hmmgen/markov"
	"github.com/katalvlaran/hmmgen/sampler"
)

// ExampleWalk resumes a chain from the state returned by a previous walk.
func ExampleWalk() {
	alphabet := markov.MustAlphabet("x", "y", "z")
	rotate := markov.MustTransitionMatrix([][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	rng := sampler.NewRand(1)

	first, state, _ := markov.Walk(rng, 0, rotate, 4, alphabet)
	second, state, _ := markov.Walk(rng, state, rotate, 2, alphabet)
	fmt.Println(first, second, state)
	// Output:
	// [y z x y] [z x] 0
}
