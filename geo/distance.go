package geo

import "math"

// EarthRadius is the mean Earth radius used by GreatCircleDistance, in
// statute miles. Output consumers expect values computed with this exact
// constant.
const EarthRadius = 3958.8

// MilesToKilometers converts statute miles to kilometers.
const MilesToKilometers = 1.609344

const degtorad = math.Pi / 180.0

// GreatCircleDistance returns the haversine distance between a and b in miles.
//
//	a = sin²(Δφ/2) + cos φ1 ⋅ cos φ2 ⋅ sin²(Δλ/2)
//	c = 2 ⋅ atan2(√a, √(1−a))
//	d = R ⋅ c
func GreatCircleDistance(a, b Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * degtorad
	dLon := (b.Lon - a.Lon) * degtorad

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat +
		math.Cos(a.Lat*degtorad)*math.Cos(b.Lat*degtorad)*sinLon*sinLon

	return EarthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
