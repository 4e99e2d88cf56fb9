package serialize

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/legroute/cities"
	"github.com/katalvlaran/legroute/core"
	"github.com/katalvlaran/legroute/geo"
)

// ErrUnknownKey indicates a graph key that the Source cannot resolve.
var ErrUnknownKey = errors.New("serialize: unknown city key")

// Source resolves city-keys to records and parsed locations.
// *ranking.Index satisfies it.
type Source interface {
	City(key int) (cities.City, bool)
	Coordinate(key int) (geo.Coordinate, bool)
}

// Leg is one directed edge ready for output.
type Leg struct {
	Origin      string  `csv:"origin"`
	Destination string  `csv:"destination"`
	Distance    float64 `csv:"distance"` // miles
}

// stop is a resolved graph key.
type stop struct {
	name  string
	coord geo.Coordinate
}

func resolve(src Source, key int) (stop, error) {
	c, ok := src.City(key)
	if !ok {
		return stop{}, fmt.Errorf("key %d: %w", key, ErrUnknownKey)
	}
	coord, ok := src.Coordinate(key)
	if !ok {
		return stop{}, fmt.Errorf("key %d: %w", key, ErrUnknownKey)
	}
	return stop{name: c.DisplayName(), coord: coord}, nil
}

// Flatten returns one Leg per edge of g in adjacency order.
// Complexity: O(E).
func Flatten(g *core.Graph, src Source) ([]Leg, error) {
	edges := g.Edges()
	legs := make([]Leg, 0, len(edges))
	for _, e := range edges {
		from, err := resolve(src, e.From)
		if err != nil {
			return nil, fmt.Errorf("Flatten: %w", err)
		}
		to, err := resolve(src, e.To)
		if err != nil {
			return nil, fmt.Errorf("Flatten: %w", err)
		}
		legs = append(legs, Leg{
			Origin:      from.name,
			Destination: to.name,
			Distance:    geo.GreatCircleDistance(from.coord, to.coord),
		})
	}
	return legs, nil
}
