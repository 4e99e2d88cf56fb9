// Package citiestest provides a small, fixed city table for tests and examples.
package citiestest

import "github.com/katalvlaran/legroute/cities"

// Sample returns the 30 most populous US cities (2021 estimate) in rank order,
// with locations written the way the source table writes them.
// San Francisco (rank 17) is the westernmost city and Boston (rank 24) the
// easternmost.
func Sample() cities.Dataset {
	return cities.Dataset{
		{Name: "New York City[d]", Location: "40°40′N 73°56′W / 40.66°N 73.94°W", Rank: 1},
		{Name: "Los Angeles", Location: "34°01′N 118°25′W / 34.02°N 118.41°W", Rank: 2},
		{Name: "Chicago", Location: "41°50′N 87°41′W / 41.84°N 87.68°W", Rank: 3},
		{Name: "Houston[3]", Location: "29°47′N 95°23′W / 29.79°N 95.39°W", Rank: 4},
		{Name: "Phoenix", Location: "33°34′N 112°05′W / 33.57°N 112.09°W", Rank: 5},
		{Name: "Philadelphia[e]", Location: "40°00′N 75°08′W / 40.01°N 75.13°W", Rank: 6},
		{Name: "San Antonio", Location: "29°28′N 98°31′W / 29.46°N 98.52°W", Rank: 7},
		{Name: "San Diego", Location: "32°49′N 117°08′W / 32.81°N 117.14°W", Rank: 8},
		{Name: "Dallas", Location: "32°47′N 96°46′W / 32.79°N 96.77°W", Rank: 9},
		{Name: "San Jose", Location: "37°18′N 121°49′W / 37.30°N 121.81°W", Rank: 10},
		{Name: "Austin", Location: "30°18′N 97°45′W / 30.30°N 97.75°W", Rank: 11},
		{Name: "Jacksonville[f]", Location: "30°20′N 81°40′W / 30.34°N 81.66°W", Rank: 12},
		{Name: "Fort Worth", Location: "32°47′N 97°21′W / 32.78°N 97.35°W", Rank: 13},
		{Name: "Columbus", Location: "39°59′N 82°59′W / 39.99°N 82.99°W", Rank: 14},
		{Name: "Indianapolis[g]", Location: "39°47′N 86°09′W / 39.78°N 86.15°W", Rank: 15},
		{Name: "Charlotte", Location: "35°13′N 80°50′W / 35.21°N 80.83°W", Rank: 16},
		{Name: "San Francisco[h]", Location: "37°44′N 123°02′W / 37.73°N 123.03°W", Rank: 17},
		{Name: "Seattle", Location: "47°37′N 122°21′W / 47.62°N 122.35°W", Rank: 18},
		{Name: "Denver[i]", Location: "39°46′N 104°53′W / 39.76°N 104.88°W", Rank: 19},
		{Name: "Washington[j]", Location: "38°54′N 77°01′W / 38.90°N 77.02°W", Rank: 20},
		{Name: "Nashville[k]", Location: "36°10′N 86°47′W / 36.17°N 86.79°W", Rank: 21},
		{Name: "Oklahoma City", Location: "35°28′N 97°31′W / 35.47°N 97.51°W", Rank: 22},
		{Name: "El Paso", Location: "31°51′N 106°26′W / 31.85°N 106.43°W", Rank: 23},
		{Name: "Boston", Location: "42°20′N 71°01′W / 42.34°N 71.02°W", Rank: 24},
		{Name: "Portland", Location: "45°32′N 122°39′W / 45.54°N 122.65°W", Rank: 25},
		{Name: "Las Vegas", Location: "36°14′N 115°16′W / 36.23°N 115.26°W", Rank: 26},
		{Name: "Detroit", Location: "42°23′N 83°06′W / 42.38°N 83.10°W", Rank: 27},
		{Name: "Memphis", Location: "35°06′N 89°58′W / 35.10°N 89.97°W", Rank: 28},
		{Name: "Louisville[l]", Location: "38°10′N 85°39′W / 38.17°N 85.65°W", Rank: 29},
		{Name: "Baltimore[m]", Location: "39°18′N 76°37′W / 39.30°N 76.61°W", Rank: 30},
	}
}
