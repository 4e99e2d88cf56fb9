// Package metrics defines the prometheus collectors recorded by route
// generation runs.
//
// Collectors are registered on a caller-supplied registry rather than the
// global default one, so independent runs (and tests) never share counters.
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values.
const (
	StatusOK    = "ok"
	StatusError = "error"

	KindBackbone = "backbone"
	KindChord    = "chord"
)

const namespace = "legroute"

// Metrics groups the generation collectors.
type Metrics struct {
	// Runs counts generation runs by outcome.
	Runs *prometheus.CounterVec
	// Edges counts inserted edges by kind (backbone, chord).
	Edges *prometheus.CounterVec
	// Rejections counts candidate destinations discarded as duplicates.
	Rejections prometheus.Counter
	// PlacementAttempts observes how many draws each backbone placement needed.
	PlacementAttempts prometheus.Histogram
	// Vertices is the vertex count of the last successful run.
	Vertices prometheus.Gauge
}

// New creates the collectors and registers them on reg.
// Panics if registration fails (e.g. New called twice on one registry).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of graph generation runs",
			},
			[]string{"status"},
		),
		Edges: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "edges_inserted_total",
				Help:      "Total number of edges inserted into generated graphs",
			},
			[]string{"kind"},
		),
		Rejections: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "placement_rejections_total",
			Help:      "Candidate destinations rejected because the edge already existed",
		}),
		PlacementAttempts: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "placement_attempts",
			Help:      "Draws needed to place one backbone destination",
			Buckets:   []float64{1, 2, 3, 5, 10, 50, 100, 1000},
		}),
		Vertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Vertex count of the most recently generated graph",
		}),
	}
}

// ObserveRun counts one run with the given status.
func (m *Metrics) ObserveRun(status string) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(status).Inc()
}

// ObserveEdge counts one inserted edge of the given kind.
func (m *Metrics) ObserveEdge(kind string) {
	if m == nil {
		return
	}
	m.Edges.WithLabelValues(kind).Inc()
}

// ObservePlacement records the number of draws used for one placement; every
// draw beyond the first was a rejection.
func (m *Metrics) ObservePlacement(attempts int) {
	if m == nil {
		return
	}
	m.PlacementAttempts.Observe(float64(attempts))
	if attempts > 1 {
		m.Rejections.Add(float64(attempts - 1))
	}
}

// ObservePlacementFailure records a placement that exhausted its attempts;
// every draw was a rejection.
func (m *Metrics) ObservePlacementFailure(attempts int) {
	if m == nil {
		return
	}
	m.PlacementAttempts.Observe(float64(attempts))
	m.Rejections.Add(float64(attempts))
}

// SetVertices records the vertex count of a finished graph.
func (m *Metrics) SetVertices(n int) {
	if m == nil {
		return
	}
	m.Vertices.Set(float64(n))
}
