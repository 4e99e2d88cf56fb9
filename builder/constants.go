// Package builder defines shared constants used by the generation phases,
// ensuring consistent defaults and validation.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the phase name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSeedPath is the canonical name for the backbone phase.
	MethodSeedPath = "SeedPath"
	// MethodAdditionalEdges is the canonical name for the chord phase.
	MethodAdditionalEdges = "AdditionalEdges"
	// MethodNewBuilder is the canonical name for Builder construction.
	MethodNewBuilder = "NewBuilder"
	// MethodGenerate is the canonical name for the top-level entry point.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultSegments is the default number of backbone hops.
const DefaultSegments = 21

// DefaultMinAnchorRank is the 0-based rank index of the west anchor
// (rank 17 in the reference table: San Francisco).
const DefaultMinAnchorRank = 16

// DefaultMaxAnchorRank is the 0-based rank index of the east anchor
// (rank 1 in the reference table: New York City).
const DefaultMaxAnchorRank = 0

// DefaultMaxAttempts caps the draws per backbone placement.
const DefaultMaxAttempts = 1000

// MinSegments is the smallest meaningful backbone: one hop straight to the
// east anchor.
const MinSegments = 1

// chordSkip is the hop distance covered by an additional edge.
const chordSkip = 2
