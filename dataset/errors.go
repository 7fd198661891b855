// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrInvalidToken indicates a label or symbol that cannot be written
	// unambiguously in the line format.
	ErrInvalidToken = errors.New("dataset: invalid token")

	// ErrMalformedLine indicates an input line that is not of the form <H,E>.
	ErrMalformedLine = errors.New("dataset: malformed line")

	// ErrUnknownID indicates a state or symbol id that was never interned.
	ErrUnknownID = errors.New("dataset: unknown id")
)
