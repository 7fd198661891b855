// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"
)

// Line format delimiters.
const (
	openDelim  = "<"
	closeDelim = ">"
	sep        = ","
)

// Pair is one generated step: the active hidden label and the emitted symbol.
type Pair struct {
	Label  string
	Symbol string
}

// String renders the pair in line format, without the newline.
func (p Pair) String() string {
	return openDelim + p.Label + sep + p.Symbol + closeDelim
}

// ValidateToken rejects tokens that would break the line format.
func ValidateToken(tok string) error {
	if tok == "" {
		return fmt.Errorf("ValidateToken: empty token: %w", ErrInvalidToken)
	}
	if strings.ContainsAny(tok, "<>,\r\n") {
		return fmt.Errorf("ValidateToken: %q contains a reserved character: %w", tok, ErrInvalidToken)
	}
	return nil
}

// ParsePair parses a single <H,E> line (surrounding whitespace is ignored).
func ParsePair(line string) (Pair, error) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, openDelim) || !strings.HasSuffix(s, closeDelim) {
		return Pair{}, fmt.Errorf("ParsePair: %q: %w", line, ErrMalformedLine)
	}
	body := s[len(openDelim) : len(s)-len(closeDelim)]
	label, symbol, ok := strings.Cut(body, sep)
	if !ok || ValidateToken(label) != nil || ValidateToken(symbol) != nil {
		return Pair{}, fmt.Errorf("ParsePair: %q: %w", line, ErrMalformedLine)
	}
	return Pair{Label: label, Symbol: symbol}, nil
}
