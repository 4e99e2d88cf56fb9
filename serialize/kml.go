package serialize

import (
	"fmt"
	"image/color"
	"io"

	kml "github.com/twpayne/go-kml"

	"github.com/katalvlaran/legroute/core"
	"github.com/katalvlaran/legroute/geo"
)

const (
	kmlLineWidth = 2.0
)

// KMLOption customizes WriteKML.
type KMLOption func(*kmlConfig)

type kmlConfig struct {
	lonSign float64
	name    string
	color   color.Color
}

// WithEastLongitudes writes longitudes as positive (east of Greenwich).
// By default magnitudes are written as west longitudes.
func WithEastLongitudes() KMLOption {
	return func(c *kmlConfig) { c.lonSign = 1 }
}

// WithDocumentName sets the KML document name.
func WithDocumentName(name string) KMLOption {
	return func(c *kmlConfig) { c.name = name }
}

// WithLineColor sets the color of leg lines. Panics on nil.
func WithLineColor(col color.Color) KMLOption {
	if col == nil {
		panic("serialize: WithLineColor(nil)")
	}
	return func(c *kmlConfig) { c.color = col }
}

// WriteKML writes g as a KML document: one named point per vertex (ascending
// key order) followed by one line per leg (adjacency order).
func WriteKML(w io.Writer, g *core.Graph, src Source, opts ...KMLOption) error {
	cfg := kmlConfig{
		lonSign: -1,
		name:    "legroute",
		color:   color.RGBA{R: 255, G: 64, B: 0, A: 255},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	point := func(c geo.Coordinate) kml.Coordinate {
		return kml.Coordinate{Lon: cfg.lonSign * c.Lon, Lat: c.Lat}
	}

	elems := []kml.Element{kml.Name(cfg.name)}
	for _, key := range g.Vertices() {
		s, err := resolve(src, key)
		if err != nil {
			return fmt.Errorf("WriteKML: %w", err)
		}
		elems = append(elems, kml.Placemark(
			kml.Name(s.name),
			kml.Point(kml.Coordinates(point(s.coord))),
		))
	}

	for _, e := range g.Edges() {
		from, err := resolve(src, e.From)
		if err != nil {
			return fmt.Errorf("WriteKML: %w", err)
		}
		to, err := resolve(src, e.To)
		if err != nil {
			return fmt.Errorf("WriteKML: %w", err)
		}
		miles := geo.GreatCircleDistance(from.coord, to.coord)
		elems = append(elems, kml.Placemark(
			kml.Name(from.name+" - "+to.name),
			kml.Description(fmt.Sprintf("%.2f mi", miles)),
			kml.Style(
				kml.LineStyle(
					kml.Color(cfg.color),
					kml.Width(kmlLineWidth),
				),
			),
			kml.LineString(kml.Coordinates(point(from.coord), point(to.coord))),
		))
	}

	if err := kml.KML(kml.Document(elems...)).Write(w); err != nil {
		return fmt.Errorf("WriteKML: %w", err)
	}
	return nil
}
