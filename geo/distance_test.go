package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/legroute/geo"
)

var (
	newYork      = geo.Coordinate{Lat: 40.7128, Lon: 74.0060}
	losAngeles   = geo.Coordinate{Lat: 34.0522, Lon: 118.2437}
	sanFrancisco = geo.Coordinate{Lat: 37.78, Lon: 122.42}
)

func TestGreatCircleDistance_Identity(t *testing.T) {
	for _, c := range []geo.Coordinate{newYork, losAngeles, {}, {Lat: 89.9, Lon: 179.9}} {
		assert.Equal(t, 0.0, geo.GreatCircleDistance(c, c), "distance(%s,%s)", c, c)
	}
}

func TestGreatCircleDistance_Symmetric(t *testing.T) {
	pairs := [][2]geo.Coordinate{
		{newYork, losAngeles},
		{losAngeles, sanFrancisco},
		{sanFrancisco, newYork},
	}
	for _, p := range pairs {
		assert.Equal(t, geo.GreatCircleDistance(p[0], p[1]), geo.GreatCircleDistance(p[1], p[0]))
	}
}

func TestGreatCircleDistance_KnownValues(t *testing.T) {
	// hand-computed with R = 3958.8
	assert.InDelta(t, 2445.59, geo.GreatCircleDistance(newYork, losAngeles), 0.005)
	assert.InDelta(t, 69.09, geo.GreatCircleDistance(geo.Coordinate{}, geo.Coordinate{Lon: 1}), 0.005)
}
