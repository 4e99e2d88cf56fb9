package builder_test

import (
	"fmt"

	"github.com/katalvlaran/legroute/builder"
	"github.com/katalvlaran/legroute/cities/citiestest"
)

// ExampleGenerate pins every backbone destination to the middle of its region.
func ExampleGenerate() {
	p := builder.Params{Segments: 2, MinAnchorRank: 16, MaxAnchorRank: 0}
	res, err := builder.Generate(citiestest.Sample(), p,
		builder.WithFloatSource(func() float64 { return 0.5 }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, k := range res.Path {
		c, _ := res.Index.City(k)
		fmt.Println(k, c.DisplayName())
	}
	fmt.Println("edges:", res.Graph.EdgeCount(), "chords:", res.Chords)
	// Output:
	// 0 San Francisco
	// 21 Detroit
	// 28 New York City
	// edges: 3 chords: 1
}
