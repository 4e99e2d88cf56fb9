// Package serialize turns a generated route graph into legs and writes them out.
//
// Flatten walks the adjacency structure (origins in registration order,
// destinations in insertion order) and yields one Leg per directed edge with
// display names and the great-circle distance in miles. The same graph
// always flattens to the same sequence.
//
// Writers:
//
//	FormatInitializerList - the brace-enclosed list consumed by the route simulator:
//	                        {
//	                        Leg("San Francisco", "Detroit", 2116.30),
//	                        };
//	WriteCSV              - origin,destination,distance table.
//	WriteKML              - one point per vertex and one line per leg.
//
// Errors:
//
//	ErrUnknownKey - a graph key has no record in the Source.
package serialize
