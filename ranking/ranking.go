// Package ranking orders a city dataset by longitude and maps popularity ranks
// to positions in that order.
//
// The position of a city in the longitude-descending order is its city-key:
// the integer the graph builder uses as vertex identity. For western-hemisphere
// tables (longitude magnitudes) key 0 is the westernmost city and keys grow
// eastwards, so arithmetic over keys walks west to east.
//
// Errors:
//
//	ErrRankGap - ranks are not dense 1..K, or a rank/key lookup falls outside
//	             the dataset. Returned wrapped in *RankGapError.
//	geo.ErrParse - a record's location could not be parsed.
package ranking

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/legroute/cities"
	"github.com/katalvlaran/legroute/geo"
)

// ErrRankGap indicates a rank or key that does not resolve to a real record.
var ErrRankGap = errors.New("ranking: rank does not resolve to a city")

// RankGapError carries the offending rank or key.
type RankGapError struct {
	Rank   int    // 1-based rank from the record, or 0-based rank index on lookup
	Key    int    // city-key involved, -1 when not applicable
	Reason string // what went wrong
}

func (e *RankGapError) Error() string {
	return fmt.Sprintf("ranking: rank %d (key %d): %s", e.Rank, e.Key, e.Reason)
}

// Is reports ErrRankGap.
func (e *RankGapError) Is(target error) bool {
	return target == ErrRankGap
}

// Index is a dataset sorted by longitude together with its rank map.
// It is immutable once built.
type Index struct {
	cities  cities.Dataset   // sorted, key = position
	coords  []geo.Coordinate // parallel to cities
	sortMap []int            // sortMap[rank-1] = key
}

// New parses every record's location, stable-sorts a copy of ds by descending
// longitude and records sortMap[city.Rank-1] = position. Ranks must be dense
// 1..len(ds) with no duplicates.
// Complexity: O(n log n) time, O(n) space.
func New(ds cities.Dataset) (*Index, error) {
	n := len(ds)
	order := make([]int, n)
	coords := make([]geo.Coordinate, n)
	for i, c := range ds {
		coord, err := geo.ParseCoordinate(c.Location)
		if err != nil {
			return nil, fmt.Errorf("ranking: city %q: %w", c.Name, err)
		}
		coords[i] = coord
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return coords[order[a]].Lon > coords[order[b]].Lon
	})

	idx := &Index{
		cities:  make(cities.Dataset, n),
		coords:  make([]geo.Coordinate, n),
		sortMap: make([]int, n),
	}
	seen := make([]bool, n)
	for key, orig := range order {
		c := ds[orig]
		idx.cities[key] = c
		idx.coords[key] = coords[orig]

		r := c.Rank - 1
		if r < 0 || r >= n {
			return nil, &RankGapError{Rank: c.Rank, Key: key, Reason: fmt.Sprintf("outside 1..%d", n)}
		}
		if seen[r] {
			return nil, &RankGapError{Rank: c.Rank, Key: key, Reason: "duplicate rank"}
		}
		seen[r] = true
		idx.sortMap[r] = key
	}

	return idx, nil
}

// Len returns the number of cities.
func (x *Index) Len() int { return len(x.cities) }

// Has reports whether key references a city.
func (x *Index) Has(key int) bool { return key >= 0 && key < len(x.cities) }

// KeyForRank returns the key of the city whose 0-based rank index is rank
// (rank 0 is the most popular city).
func (x *Index) KeyForRank(rank int) (int, error) {
	if rank < 0 || rank >= len(x.sortMap) {
		return -1, &RankGapError{Rank: rank, Key: -1, Reason: fmt.Sprintf("rank index outside 0..%d", len(x.sortMap)-1)}
	}
	return x.sortMap[rank], nil
}

// City returns the record stored under key.
func (x *Index) City(key int) (cities.City, bool) {
	if !x.Has(key) {
		return cities.City{}, false
	}
	return x.cities[key], true
}

// Coordinate returns the parsed location of the city stored under key.
func (x *Index) Coordinate(key int) (geo.Coordinate, bool) {
	if !x.Has(key) {
		return geo.Coordinate{}, false
	}
	return x.coords[key], true
}

// SortMap returns a copy of the rank-index to key mapping.
func (x *Index) SortMap() []int {
	out := make([]int, len(x.sortMap))
	copy(out, x.sortMap)
	return out
}

// Cities returns a copy of the longitude-sorted dataset.
func (x *Index) Cities() cities.Dataset {
	out := make(cities.Dataset, len(x.cities))
	copy(out, x.cities)
	return out
}
