// Package builder generates the route graph: a randomized west-to-east
// backbone between two anchor cities, augmented with skip-one chords.
//
// The package offers the following key components:
//
//   - Builder: one value per generation run. It owns a fresh core.Graph and
//     exposes the two construction phases as methods:
//     – SeedPath(segments):   backbone from the west anchor to the east anchor.
//     – AdditionalEdges(path): chords (path[i], path[i+2]).
//   - Generate: the top-level entry point. Ranks the dataset by longitude,
//     resolves the anchors, runs both phases and returns a Result.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, float source, attempt cap, logger, metrics.
//
// Backbone algorithm (SeedPath):
//
//	range    = maxKey − minKey                 (index-space, not geographic)
//	interval = round(range / segments)
//	step i < segments−1:
//	    draw minKey + interval·(i+1) + round(U[0,1)·interval)
//	    until the candidate is not already a destination of the current origin
//	step segments−1:
//	    destination = maxKey
//
// Every destination is checked against the key space before insertion, so
// interval arithmetic can never reference a city that does not exist.
//
// Guarantees:
//
//   - Determinism: same dataset, parameters and seed ⇒ identical graphs.
//   - Bounded sampling: each placement draws at most maxAttempts candidates;
//     exhaustion or a degenerate interval surfaces as *PlacementError.
//   - No partial success: Generate returns either a complete Result or an error.
//   - No shared state: every Builder owns its graph; nothing is global.
//
// Errors (sentinel, check with errors.Is):
//
//	ErrTooFewSegments     – segments < 1.
//	ErrNeedRandSource     – stochastic phase without WithSeed/WithRand/WithFloatSource.
//	ErrAmbiguousPlacement – bounded rejection sampling failed (*PlacementError).
//	ErrRankGap            – an anchor or generated key does not resolve to a city.
//	ErrConstructFailed    – misuse of the Builder lifecycle (nil key space, second SeedPath).
package builder
