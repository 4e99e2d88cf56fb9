package ranking_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/legroute/cities"
	"github.com/katalvlaran/legroute/cities/citiestest"
	"github.com/katalvlaran/legroute/geo"
	"github.com/katalvlaran/legroute/ranking"
)

func TestNew_SortMap(t *testing.T) {
	idx, err := ranking.New(citiestest.Sample())
	require.NoError(t, err)
	require.Equal(t, 30, idx.Len())

	want := []int{28, 4, 17, 15, 7, 27, 10, 5, 14, 3, 11, 23, 13, 22, 19, 24, 0, 2, 9, 25, 18, 12, 8, 29, 1, 6, 21, 16, 20, 26}
	require.Equal(t, want, idx.SortMap())

	// anchors used by the default generator parameters
	west, err := idx.KeyForRank(16)
	require.NoError(t, err)
	east, err := idx.KeyForRank(0)
	require.NoError(t, err)

	sf, ok := idx.City(west)
	require.True(t, ok)
	require.Equal(t, "San Francisco", sf.DisplayName())
	ny, ok := idx.City(east)
	require.True(t, ok)
	require.Equal(t, "New York City", ny.DisplayName())
}

func TestNew_LongitudeDescending(t *testing.T) {
	idx, err := ranking.New(citiestest.Sample())
	require.NoError(t, err)

	prev, _ := idx.Coordinate(0)
	for key := 1; key < idx.Len(); key++ {
		c, ok := idx.Coordinate(key)
		require.True(t, ok)
		require.LessOrEqual(t, c.Lon, prev.Lon, "key %d", key)
		prev = c
	}
}

func TestNew_StableTies(t *testing.T) {
	ds := cities.Dataset{
		{Name: "A", Location: "/ 10°N 90°W", Rank: 2},
		{Name: "B", Location: "/ 20°N 90°W", Rank: 1},
		{Name: "C", Location: "/ 30°N 95°W", Rank: 3},
	}
	idx, err := ranking.New(ds)
	require.NoError(t, err)
	require.Equal(t, cities.Dataset{ds[2], ds[0], ds[1]}, idx.Cities())
	require.Equal(t, []int{2, 1, 0}, idx.SortMap())
}

func TestNew_RankGaps(t *testing.T) {
	tests := map[string]cities.Dataset{
		"gap": {
			{Name: "A", Location: "/ 1°N 1°W", Rank: 1},
			{Name: "B", Location: "/ 1°N 2°W", Rank: 3},
		},
		"duplicate": {
			{Name: "A", Location: "/ 1°N 1°W", Rank: 1},
			{Name: "B", Location: "/ 1°N 2°W", Rank: 1},
		},
		"zero": {
			{Name: "A", Location: "/ 1°N 1°W", Rank: 0},
		},
	}
	for name, ds := range tests {
		_, err := ranking.New(ds)
		require.Error(t, err, name)
		require.True(t, errors.Is(err, ranking.ErrRankGap), "%s: %v", name, err)

		var rg *ranking.RankGapError
		require.ErrorAs(t, err, &rg, name)
	}
}

func TestNew_ParseError(t *testing.T) {
	_, err := ranking.New(cities.Dataset{{Name: "Nowhere", Location: "unknown", Rank: 1}})
	require.Error(t, err)
	require.True(t, errors.Is(err, geo.ErrParse))
}

func TestNew_NonFiniteLongitude(t *testing.T) {
	_, err := ranking.New(cities.Dataset{
		{Name: "A", Location: "/ 30°N 90°W", Rank: 1},
		{Name: "B", Location: "/ 31°N NaN°W", Rank: 2},
		{Name: "C", Location: "/ 32°N 100°W", Rank: 3},
	})
	require.ErrorIs(t, err, geo.ErrParse)
}

func TestIndex_Lookups(t *testing.T) {
	idx, err := ranking.New(citiestest.Sample())
	require.NoError(t, err)

	_, err = idx.KeyForRank(30)
	require.ErrorIs(t, err, ranking.ErrRankGap)
	_, err = idx.KeyForRank(-1)
	require.ErrorIs(t, err, ranking.ErrRankGap)

	require.True(t, idx.Has(0))
	require.True(t, idx.Has(29))
	require.False(t, idx.Has(30))
	require.False(t, idx.Has(-1))

	_, ok := idx.City(30)
	require.False(t, ok)
	_, ok = idx.Coordinate(-1)
	require.False(t, ok)
}
