package cities

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// DefaultRankField is the JSON key holding the popularity rank in the
// census-derived tables the generator was built around.
const DefaultRankField = "2021rank"

// JSON keys for the name and location columns.
const (
	nameField     = "City"
	locationField = "Location"
)

// ErrDecode indicates a dataset could not be decoded.
var ErrDecode = errors.New("cities: decode dataset")

// LoadJSON decodes an array of objects with "City", "Location" and rankField
// keys. The rank may be encoded as a number or as a numeric string. Unknown
// keys are ignored. An empty rankField means DefaultRankField.
func LoadJSON(r io.Reader, rankField string) (Dataset, error) {
	if rankField == "" {
		rankField = DefaultRankField
	}

	var rows []map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	ds := make(Dataset, 0, len(rows))
	for i, row := range rows {
		c := City{}
		if err := decodeString(row, nameField, &c.Name); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDecode, i, err)
		}
		if err := decodeString(row, locationField, &c.Location); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDecode, i, err)
		}
		rank, err := decodeRank(row, rankField)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDecode, i, err)
		}
		c.Rank = rank
		ds = append(ds, c)
	}

	return ds, nil
}

func decodeString(row map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := row[key]
	if !ok {
		return fmt.Errorf("missing %q", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %v", key, err)
	}
	return nil
}

func decodeRank(row map[string]json.RawMessage, key string) (int, error) {
	raw, ok := row[key]
	if !ok {
		return 0, fmt.Errorf("missing %q", key)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, fmt.Errorf("field %q: %v", key, err)
		}
		return v, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("field %q: not a number or string", key)
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("field %q: %v", key, err)
	}
	return v, nil
}

// csvRecord is the CSV row layout: City,Location,Rank.
type csvRecord struct {
	City     string `csv:"City"`
	Location string `csv:"Location"`
	Rank     int    `csv:"Rank"`
}

// LoadCSV decodes a headed CSV table with City, Location and Rank columns.
func LoadCSV(r io.Reader) (Dataset, error) {
	var rows []csvRecord
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	ds := make(Dataset, len(rows))
	for i, row := range rows {
		ds[i] = City{Name: row.City, Location: row.Location, Rank: row.Rank}
	}
	return ds, nil
}

// WriteCSV encodes ds in the layout read by LoadCSV.
func WriteCSV(w io.Writer, ds Dataset) error {
	rows := make([]csvRecord, len(ds))
	for i, c := range ds {
		rows[i] = csvRecord{City: c.Name, Location: c.Location, Rank: c.Rank}
	}
	return gocsv.Marshal(&rows, w)
}
