package generator_test

import (
	"github.com/katalvlaran/hmmgen/generator"
	"github.com/katalvlaran/hmmgen/hidden"
	"github.com/katalvlaran/hmmgen/markov"
)

var (
	acgt = markov.MustAlphabet("A", "C", "G", "T")

	plusModel = markov.MustTransitionMatrix([][]float64{
		{0.180, 0.274, 0.426, 0.120},
		{0.171, 0.368, 0.274, 0.188},
		{0.161, 0.339, 0.375, 0.125},
		{0.079, 0.355, 0.384, 0.182},
	})
	minusModel = markov.MustTransitionMatrix([][]float64{
		{0.300, 0.205, 0.285, 0.210},
		{0.322, 0.298, 0.078, 0.302},
		{0.248, 0.246, 0.298, 0.208},
		{0.177, 0.239, 0.292, 0.292},
	})
	cpgHidden    = markov.MustTransitionMatrix([][]float64{{0.97, 0.03}, {0.005, 0.999}})
	identity2    = markov.MustTransitionMatrix([][]float64{{1, 0}, {0, 1}})
	alwaysSwitch = markov.MustTransitionMatrix([][]float64{{0, 1}, {1, 0}})

	// rotate4 walks A→C→G→T→A deterministically; stay4 never moves.
	rotate4 = markov.MustTransitionMatrix([][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
	})
	stay4 = markov.MustTransitionMatrix([][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
)

// cpgConfig mirrors the CpG island setup: rare, long "+" islands in a "-"
// background.
func cpgConfig(length int, seed int64) generator.Config {
	return generator.Config{
		Alphabet:     acgt,
		Emission:     [2]*markov.TransitionMatrix{plusModel, minusModel},
		Hidden:       cpgHidden,
		MinDwell:     [2]int{50, 500},
		Labels:       hidden.DefaultLabels,
		Length:       length,
		InitialState: hidden.OutOfRegion,
		Seed:         seed,
	}
}
