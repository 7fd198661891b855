// SPDX-License-Identifier: MIT
// Package: hmmgen/markov
//
// reach.go: breadth-first reachability over positive-weight transitions.
//
// A state j is reachable from i when a path i → … → j exists whose every
// transition has positive weight. A chain started at i can only ever emit
// symbols of reachable states, so the validate report flags the rest.
//
// Complexity: O(Dim()²) time, O(Dim()) space.

package markov

import "fmt"

// Reachable returns the states reachable from `from` in BFS order, `from`
// first. Ties are broken by ascending index.
//
// Errors: ErrOutOfRange.
func (t *TransitionMatrix) Reachable(from int) ([]int, error) {
	n := t.Dim()
	if from < 0 || from >= n {
		return nil, fmt.Errorf("TransitionMatrix.Reachable(%d): %w", from, ErrOutOfRange)
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	visited[from] = true
	queue = append(queue, from)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for v := 0; v < n; v++ {
			if !visited[v] && t.cdfs[u].Prob(v) > 0 {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return queue, nil
}

// Unreachable returns, in ascending order, the states no path from `from`
// can reach.
//
// Errors: ErrOutOfRange.
func (t *TransitionMatrix) Unreachable(from int) ([]int, error) {
	seen, err := t.Reachable(from)
	if err != nil {
		return nil, err
	}
	mark := make([]bool, t.Dim())
	for _, s := range seen {
		mark[s] = true
	}
	var out []int
	for s, ok := range mark {
		if !ok {
			out = append(out, s)
		}
	}
	return out, nil
}
