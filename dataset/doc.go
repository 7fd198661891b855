// Package dataset defines the (hidden-label, emitted-symbol) pair and its
// line format, and reads such files back into an indexed training sequence.
//
// Line format (one pair per line, generation order, nothing else):
//
//	<+,A>
//	<+,C>
//	<-,T>
//
// Labels and symbols are short tokens; they may not be empty and may not
// contain '<', '>', ',' or line breaks, so every line parses unambiguously.
//
// Read interns labels and symbols in order of first appearance (see Flyweight),
// which gives the integer state/symbol ids an HMM trainer works with.
package dataset
