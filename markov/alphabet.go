// SPDX-License-Identifier: MIT

package markov

import "fmt"

// Alphabet is an ordered set of distinct symbols, addressed by index.
// The zero value is an empty alphabet and is rejected by every constructor
// that needs one.
type Alphabet struct {
	symbols []string
	index   map[string]int
}

// NewAlphabet builds an Alphabet from symbols in the given order.
//
// Errors: ErrInvalidAlphabet on an empty list, an empty symbol or a duplicate.
func NewAlphabet(symbols ...string) (Alphabet, error) {
	if len(symbols) == 0 {
		return Alphabet{}, fmt.Errorf("NewAlphabet: no symbols: %w", ErrInvalidAlphabet)
	}
	a := Alphabet{
		symbols: make([]string, len(symbols)),
		index:   make(map[string]int, len(symbols)),
	}
	for i, s := range symbols {
		if s == "" {
			return Alphabet{}, fmt.Errorf("NewAlphabet: symbol %d is empty: %w", i, ErrInvalidAlphabet)
		}
		if j, dup := a.index[s]; dup {
			return Alphabet{}, fmt.Errorf("NewAlphabet: %q repeated at %d and %d: %w", s, j, i, ErrInvalidAlphabet)
		}
		a.symbols[i] = s
		a.index[s] = i
	}

	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
// Intended for package-level fixtures and tests.
func MustAlphabet(symbols ...string) Alphabet {
	a, err := NewAlphabet(symbols...)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of symbols.
func (a Alphabet) Len() int { return len(a.symbols) }

// Symbol returns the symbol at index i.
func (a Alphabet) Symbol(i int) (string, error) {
	if i < 0 || i >= len(a.symbols) {
		return "", fmt.Errorf("Alphabet.Symbol(%d): %w", i, ErrOutOfRange)
	}
	return a.symbols[i], nil
}

// Index returns the position of symbol s.
func (a Alphabet) Index(s string) (int, bool) {
	i, ok := a.index[s]
	return i, ok
}

// Symbols returns a copy of the symbols in order.
func (a Alphabet) Symbols() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)
	return out
}
