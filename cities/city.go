package cities

import "strings"

// City is one row of the source table.
type City struct {
	// Name is the display name, possibly suffixed with a bracketed footnote.
	Name string
	// Location is the textual coordinate, e.g. "40°43′N 73°56′W / 40.72°N 73.94°W".
	Location string
	// Rank is the 1-based popularity rank.
	Rank int
}

// DisplayName returns Name without its bracketed footnote suffix.
func (c City) DisplayName() string {
	name, _, _ := strings.Cut(c.Name, "[")
	return name
}

// Dataset is an ordered collection of cities. The order is significant only
// as the tie-breaker of the longitude ranking.
type Dataset []City

// Names returns the display names in dataset order.
func (ds Dataset) Names() []string {
	out := make([]string, len(ds))
	for i, c := range ds {
		out[i] = c.DisplayName()
	}
	return out
}
