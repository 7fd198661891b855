package generator_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/katalvlaran/hmmgen/generator"
	"github.com/katalvlaran/hmmgen/hidden"
	"github.com/katalvlaran/hmmgen/markov"
)

// ExampleGenerate uses deterministic chains so the output is fixed:
// the "+" chain rotates through the alphabet and picks up where it left off
// after every "-" interruption.
func ExampleGenerate() {
	rotate := markov.MustTransitionMatrix([][]float64{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	stay := markov.MustTransitionMatrix([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	flip := markov.MustTransitionMatrix([][]float64{{0, 1}, {1, 0}})

	cfg := generator.Config{
		Alphabet:        markov.MustAlphabet("x", "y", "z"),
		Emission:        [2]*markov.TransitionMatrix{rotate, stay},
		Hidden:          flip,
		MinDwell:        [2]int{2, 1},
		Labels:          hidden.DefaultLabels,
		Length:          7,
		InitialState:    hidden.InRegion,
		InitialEmission: [2]int{0, 2},
	}
	pairs, err := generator.Generate(context.Background(), cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(dataset.Encode(pairs)))
	// Output:
	// <+,y>
	// <+,z>
	// <-,z>
	// <+,x>
	// <+,y>
	// <-,z>
	// <+,z>
}
