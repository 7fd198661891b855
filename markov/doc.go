// Package markov simulates discrete-time Markov chains over a finite alphabet.
//
// A chain is described by an Alphabet (ordered, distinct symbols) and a
// square TransitionMatrix whose row i holds the non-negative weights of
// moving from state i to every state j. Rows need not be normalized; each
// row is validated and turned into a cumulative distribution once, at
// construction time, so a malformed row is reported before any walking.
//
// The Walker is resumable: it remembers its current state index, so one long
// chain can be produced across many interleaved calls. Walking n1 steps and
// then n2 steps consumes exactly the same draws, and emits exactly the same
// symbols, as a single walk of n1+n2 steps.
//
// Emitted symbols never include the initial state's symbol: every emission is
// the state reached by a transition.
package markov
