// SPDX-License-Identifier: MIT
// Package: legroute/builder
//
// impl_chords.go - implementation of Builder.AdditionalEdges.
//
// Contract:
//   - For i in 0..len(path)-3 inserts (path[i], path[i+2]).
//   - Idempotent: existing edges are skipped; returns the count of new edges.
//   - Keys are validated against the key space like backbone destinations.
//   - Paths shorter than 3 entries add nothing.
//
// Complexity: O(len(path)) time, O(1) extra space.

package builder

import "github.com/katalvlaran/legroute/metrics"

// AdditionalEdges adds skip-one chords along path and reports how many were new.
func (b *Builder) AdditionalEdges(path []int) (int, error) {
	added := 0
	for i := 0; i+chordSkip < len(path); i++ {
		ok, err := b.insert(MethodAdditionalEdges, path[i], path[i+chordSkip], metrics.KindChord)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}
