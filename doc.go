// Package legroute generates synthetic travel-route graphs over a table of
// geocoded cities and serializes their legs with great-circle distances.
//
// A run ranks the cities by longitude, picks a west and an east anchor by
// popularity rank, walks a randomized backbone between them across equal
// index-space regions, adds skip-one chords, and emits every leg as
//
//	Leg("San Francisco", "Detroit", 2116.30),
//
// inside a brace-enclosed initializer list.
//
// Packages:
//
//	geo/          coordinate parsing and haversine distance
//	cities/       city records and JSON/CSV loaders
//	ranking/      longitude order and rank → city-key map
//	core/         ordered vertex set and adjacency structure
//	builder/      backbone, chords and the Generate entry point
//	serialize/    legs, initializer list, CSV and KML writers
//	bfs/          hop counts over a generated graph
//	dijkstra/     cheapest anchor-to-anchor route in miles
//	converters/   gonum adapters and graph summary
//	metrics/      Prometheus collectors for generation runs
//	config/       YAML configuration of the command
//	cmd/legroute  the command-line generator
//
// Quick start:
//
//	res, err := builder.Generate(ds, builder.DefaultParams(), builder.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	legs, err := serialize.Flatten(res.Graph, res.Index)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(serialize.FormatInitializerList(legs))
package legroute
