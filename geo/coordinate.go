package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Degree markers recognized when isolating a magnitude. The second form is the
// UTF-8 degree sign decoded as Latin-1, common in scraped tables.
const (
	degreeGlyph    = "°"
	degreeMojibake = "Â°"
	coordSeparator = "/"
)

// Coordinate is a (latitude, longitude) pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// String renders the coordinate with 4 decimals, latitude first.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Lat, c.Lon)
}

// ParseCoordinate extracts latitude and longitude magnitudes from text such as
// "37°47′N 122°25′W / 37.78°N 122.42°W" or "40.7128° N, 74.0060° W".
//
// When the text contains a slash, only the segment after the first slash and
// before any following slash is read (the decimal form). The segment is split on whitespace; every token is
// cut at the degree marker, compass-only tokens (N, S, E, W) are skipped and
// trailing commas are dropped. The first two magnitudes found are returned as
// latitude and longitude.
func ParseCoordinate(text string) (Coordinate, error) {
	segment := text
	if _, after, ok := strings.Cut(segment, coordSeparator); ok {
		segment, _, _ = strings.Cut(after, coordSeparator)
	}

	var (
		values [2]float64
		n      int
	)
	for _, token := range strings.Fields(segment) {
		if n == len(values) {
			break
		}
		raw := magnitude(token)
		if raw == "" {
			continue
		}
		if !isDecimal(raw) {
			return Coordinate{}, &ParseError{Text: text, Reason: fmt.Sprintf("token %q is not numeric", token)}
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Coordinate{}, &ParseError{Text: text, Reason: fmt.Sprintf("token %q is not numeric", token)}
		}
		values[n] = v
		n++
	}
	if n < len(values) {
		return Coordinate{}, &ParseError{Text: text, Reason: fmt.Sprintf("found %d of 2 magnitudes", n)}
	}

	return Coordinate{Lat: values[0], Lon: values[1]}, nil
}

// MustParseCoordinate is like ParseCoordinate but panics on error.
// Intended for fixtures and package-level tables.
func MustParseCoordinate(text string) Coordinate {
	c, err := ParseCoordinate(text)
	if err != nil {
		panic(err)
	}
	return c
}

// magnitude returns the numeric part of a token, or "" for tokens that only
// carry a hemisphere letter.
func magnitude(token string) string {
	if i := strings.Index(token, degreeMojibake); i >= 0 {
		token = token[:i]
	} else if i = strings.Index(token, degreeGlyph); i >= 0 {
		token = token[:i]
	}
	token = strings.TrimRight(token, ",;")
	// strip invisible marks some tables put in front of the numbers
	token = strings.TrimLeft(token, "\ufeff\u200e")

	switch strings.ToUpper(token) {
	case "", "N", "S", "E", "W":
		return ""
	}
	return token
}

// isDecimal reports whether s is a plain decimal number: an optional sign,
// digits and at most one dot. Rejects NaN, Inf, exponents and hex floats.
func isDecimal(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
