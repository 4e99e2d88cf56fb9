package serialize

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
)

// csvLeg fixes the distance column to two decimals, matching the
// initializer list.
type csvLeg struct {
	Origin      string `csv:"origin"`
	Destination string `csv:"destination"`
	Distance    string `csv:"distance"`
}

// WriteCSV writes legs as an origin,destination,distance table with a header.
func WriteCSV(w io.Writer, legs []Leg) error {
	rows := make([]csvLeg, len(legs))
	for i, l := range legs {
		rows[i] = csvLeg{
			Origin:      l.Origin,
			Destination: l.Destination,
			Distance:    strconv.FormatFloat(l.Distance, 'f', 2, 64),
		}
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	return nil
}

// ReadCSV decodes a table written by WriteCSV.
func ReadCSV(r io.Reader) ([]Leg, error) {
	var legs []Leg
	if err := gocsv.Unmarshal(r, &legs); err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}
	return legs, nil
}
