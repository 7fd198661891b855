// Package hmmgen generates synthetic labeled sequences for training and
// testing hidden Markov models.
//
// 🚀 What is hmmgen?
//
//	A small, deterministic generator built from three layers:
//		• Sampling: categorical draws at 1/10000 granularity (sampler)
//		• Chains: resumable Markov walks over a symbol alphabet (markov)
//		• Regimes: a two-state hidden scheduler with minimum dwell (hidden)
//
//	The generator interleaves them: each step the hidden scheduler picks
//	IN_REGION or OUT_OF_REGION, that state's emission chain takes one step,
//	and a <label,symbol> pair is emitted. The classic use is CpG islands:
//	long, rare "+" stretches embedded in a "-" background.
//
// ✨ Why hmmgen?
//
//   - Reproducible: same config and seed, byte-identical output
//   - Ground truth: every symbol carries the label that produced it
//   - Resumable chains: each emission chain continues where it left off
//
// Packages:
//
//	sampler/    Source, CDF, Sample, seeded and derived RNGs
//	matrix/     dense weight matrices, validators, row normalization
//	markov/     Alphabet, TransitionMatrix, Walker, Walk
//	hidden/     State, Labels, Scheduler, run tracking
//	dataset/    <H,E> line codec, interned Dataset, BLAKE3 digests
//	generator/  Config, Generator, GenerateBatch, Hooks
//	cmd/hmmgen  the command line front end
package hmmgen

// Version is the release version reported by the CLI.
const Version = "0.3.0"
