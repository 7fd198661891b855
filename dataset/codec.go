// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/zeebo/blake3"
)

// Write writes pairs to w, one per line, in order.
func Write(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	for i, p := range pairs {
		if _, err := bw.WriteString(p.String() + "\n"); err != nil {
			return fmt.Errorf("dataset.Write: pair %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dataset.Write: flush: %w", err)
	}
	return nil
}

// Encode returns the line-format bytes of pairs.
func Encode(pairs []Pair) []byte {
	var buf bytes.Buffer
	buf.Grow(len(pairs) * 6) // "<+,A>\n"
	_ = Write(&buf, pairs)   // bytes.Buffer writes do not fail
	return buf.Bytes()
}

// Digest returns the hex BLAKE3-256 digest of the encoded pairs.
// Two runs produce byte-identical output iff their digests match.
func Digest(pairs []Pair) string {
	sum := blake3.Sum256(Encode(pairs))
	return hex.EncodeToString(sum[:])
}

// Dataset is a training sequence read from line-format input, with labels
// and symbols interned to integer ids.
type Dataset struct {
	// Sequence holds (stateID, symbolID) per line, in file order.
	Sequence [][2]int

	states  Flyweight
	symbols Flyweight
}

// Read parses line-format input. Blank lines are skipped; any other line
// that is not <H,E> fails with ErrMalformedLine naming its 1-based number.
func Read(r io.Reader) (*Dataset, error) {
	d := &Dataset{}
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParsePair(line)
		if err != nil {
			return nil, fmt.Errorf("dataset.Read: line %d: %w", lineNum, err)
		}
		d.Add(p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset.Read: %w", err)
	}
	return d, nil
}

// Add appends one pair to the sequence, interning its tokens.
func (d *Dataset) Add(p Pair) {
	d.Sequence = append(d.Sequence, [2]int{d.states.Add(p.Label), d.symbols.Add(p.Symbol)})
}

// NumStates returns the number of distinct hidden labels.
func (d *Dataset) NumStates() int { return d.states.Len() }

// NumSymbols returns the number of distinct emitted symbols.
func (d *Dataset) NumSymbols() int { return d.symbols.Len() }

// NumInstances returns the number of pairs.
func (d *Dataset) NumInstances() int { return len(d.Sequence) }

// State returns the label interned under id.
func (d *Dataset) State(id int) (string, error) { return d.states.Item(id) }

// Symbol returns the symbol interned under id.
func (d *Dataset) Symbol(id int) (string, error) { return d.symbols.Item(id) }

// Pairs reconstructs the pairs in file order.
func (d *Dataset) Pairs() []Pair {
	out := make([]Pair, len(d.Sequence))
	for i, ids := range d.Sequence {
		out[i].Label, _ = d.states.Item(ids[0])
		out[i].Symbol, _ = d.symbols.Item(ids[1])
	}
	return out
}

// Clear drops all pairs and interned tokens.
func (d *Dataset) Clear() {
	d.Sequence = nil
	d.states.Reset()
	d.symbols.Reset()
}
