// SPDX-License-Identifier: MIT

// Package file writes and reads generated sequences on the local filesystem.
// Paths ending in ".xz" are transparently compressed; "-" means Stdout/Stdin.
package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/ulikunitz/xz"
)

// Stdio is the path that selects Stdout for a Sink and Stdin for Open.
const Stdio = "-"

// Sink writes pairs in line format to a file or Stdout.
type Sink struct {
	path    string
	w       io.Writer
	closers []io.Closer // closed in reverse order
}

// Create opens path for writing, truncating an existing file.
func Create(path string) (*Sink, error) {
	if path == "" || path == Stdio {
		return &Sink{path: Stdio, w: os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	s := &Sink{path: path, w: f, closers: []io.Closer{f}}

	if isXZ(path) {
		xw, err := xz.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		s.w = xw
		s.closers = append(s.closers, xw)
	}
	return s, nil
}

// NewSink wraps an existing writer; Close does not close it.
func NewSink(w io.Writer) *Sink {
	return &Sink{path: Stdio, w: w}
}

// Path returns the output path ("-" for Stdout or a wrapped writer).
func (s *Sink) Path() string { return s.path }

// Write appends pairs, one per line.
func (s *Sink) Write(ctx context.Context, pairs []dataset.Pair) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := dataset.Write(s.w, pairs); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Break writes an empty line between sequences; Open skips it.
func (s *Sink) Break() error {
	if _, err := io.WriteString(s.w, "\n"); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Close flushes the compressor (if any) and closes the file.
func (s *Sink) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = fmt.Errorf("failed to close %s: %w", s.path, err)
		}
	}
	s.closers = nil
	return first
}

// Open reads a line-format dataset from path, decompressing ".xz" files.
func Open(path string) (*dataset.Dataset, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != Stdio {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset: %w", err)
		}
		defer f.Close()
		r = f

		if isXZ(path) {
			xzr, err := xz.NewReader(f)
			if err != nil {
				return nil, fmt.Errorf("failed to create xz reader: %w", err)
			}
			r = xzr
		}
	}

	ds, err := dataset.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

func isXZ(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".xz")
}
