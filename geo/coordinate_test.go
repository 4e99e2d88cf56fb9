package geo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/legroute/geo"
)

func TestParseCoordinate_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want geo.Coordinate
	}{
		{"decimal with hemisphere tokens", "40.7128° N, 74.0060° W", geo.Coordinate{Lat: 40.7128, Lon: 74.0060}},
		{"dms slash decimal", "37°47′N 122°25′W / 37.78°N 122.42°W", geo.Coordinate{Lat: 37.78, Lon: 122.42}},
		{"attached hemisphere", "/ 41.88°N 87.63°W", geo.Coordinate{Lat: 41.88, Lon: 87.63}},
		{"mojibake degree", "29°46′N 95°23′W / 29.76Â°N 95.38Â°W", geo.Coordinate{Lat: 29.76, Lon: 95.38}},
		{"bare numbers", "33.45 112.07", geo.Coordinate{Lat: 33.45, Lon: 112.07}},
		{"three part form reads the decimal segment", "40°43′N 73°56′W / 40.71°N 73.94°W / 40.71; -73.94", geo.Coordinate{Lat: 40.71, Lon: 73.94}},
		{"extra trailing tokens", "/ 47.61°N 122.33°W (Seattle)", geo.Coordinate{Lat: 47.61, Lon: 122.33}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := geo.ParseCoordinate(tc.in)
			require.NoError(t, err)
			require.InDelta(t, tc.want.Lat, got.Lat, 1e-9)
			require.InDelta(t, tc.want.Lon, got.Lon, 1e-9)
		})
	}
}

func TestParseCoordinate_Malformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"",
		"/ 40.7°N",
		"north / abc°N 74°W",
		"40.7°N / ",
		"/ NaN°N 74°W",
		"/ 40°N Inf°W",
		"/ 40°N -Infinity°W",
		"/ 0x1p5°N 74°W",
		"/ 4e1°N 74°W",
		"/ 40.1.2°N 74°W",
		"/ -°N 74°W",
	} {
		_, err := geo.ParseCoordinate(in)
		require.Error(t, err, "input %q", in)
		require.True(t, errors.Is(err, geo.ErrParse), "input %q: %v", in, err)

		var pe *geo.ParseError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, in, pe.Text)
	}
}

func TestMustParseCoordinate_Panics(t *testing.T) {
	require.Panics(t, func() { geo.MustParseCoordinate("nowhere") })
	require.NotPanics(t, func() { geo.MustParseCoordinate("/ 1°N 2°W") })
}
