// Package generator produces labeled sequences from a clamped two-state
// hidden process and two per-state emission chains.
//
// 🚀 What happens on every step?
//
//  1. The hidden.Scheduler picks the active state (clamped until its minimum
//     dwell is reached, then sampled from the hidden matrix).
//  2. That state's markov.Walker takes exactly one step. Each walker keeps
//     its own state index across activations, so an emission chain only
//     evolves while its hidden state is active and resumes where it left off.
//  3. The (label, symbol) pair is appended to the output.
//
// Generation stops after exactly Config.Length pairs. Any error aborts the call
// and no partial output is returned.
//
// Determinism:
//
//	Every draw comes from one sampler.Source in a fixed order (hidden draw,
//	when not clamped, then emission draw). With the same Config and seed the
//	output is byte-identical. GenerateBatch derives one independent stream
//	per sequence, so batch output does not depend on goroutine scheduling.
package generator
