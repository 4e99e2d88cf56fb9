// Package geo parses the textual coordinates found in city tables and computes
// great-circle distances between them.
//
// Coordinates are kept as decimal-degree magnitudes: the hemisphere letters of
// the source text are discarded, so "40.7128°N 74.0060°W" becomes
// Coordinate{Lat: 40.7128, Lon: 74.0060}. Longitude ordering and distances are
// computed on these magnitudes, which is sufficient for tables confined to one
// hemisphere.
//
// Distances:
//
//	GreatCircleDistance(a, b) uses the haversine formula with EarthRadius = 3958.8.
//	The radius is expressed in statute miles, so the result is in miles.
//
// Errors:
//
//	ErrParse - coordinate text is malformed (fewer than two magnitudes, or a
//	           token that is not numeric). Returned wrapped in *ParseError.
package geo
