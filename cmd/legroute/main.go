// Command legroute generates a random route graph between two anchor cities
// and prints its legs as an initializer list, CSV table or KML document.
//
// Usage:
//
//	legroute [-config legroute.yaml] [-data cities.json] [-format json|csv]
//	         [-seed N] [-segments N] [-out path] [-output-format initializer|csv|kml]
//	         [-metrics-file path]
//
// Flags override the YAML file, which overrides the built-in defaults.
// Without -data the embedded 30-city table is used.
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/legroute/bfs"
	"github.com/katalvlaran/legroute/builder"
	"github.com/katalvlaran/legroute/cities"
	"github.com/katalvlaran/legroute/config"
	"github.com/katalvlaran/legroute/converters"
	"github.com/katalvlaran/legroute/dijkstra"
	"github.com/katalvlaran/legroute/metrics"
	"github.com/katalvlaran/legroute/serialize"
)

//go:embed cities.json
var embeddedCities []byte

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "legroute:", err)
		}
		os.Exit(1)
	}
}

// run is main without the process exit, writing the result to stdout when no
// output path is configured and logs to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("legroute", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to a YAML config file")
	dataPath := fs.String("data", "", "city table (default: embedded sample)")
	dataFormat := fs.String("format", "", "city table format: json or csv")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")
	segments := fs.Int("segments", 0, "backbone hops")
	outPath := fs.String("out", "", "output file (default: stdout)")
	outFormat := fs.String("output-format", "", "initializer, csv or kml")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Dataset = *dataPath
		case "format":
			cfg.DatasetFormat = *dataFormat
		case "seed":
			cfg.Seed = *seed
		case "segments":
			cfg.Segments = *segments
		case "out":
			cfg.Output = *outPath
		case "output-format":
			cfg.OutputFormat = *outFormat
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Info("starting", "cities", len(ds), "segments", cfg.Segments, "seed", cfg.Seed)

	reg := prometheus.NewRegistry()
	res, err := builder.Generate(ds, cfg.Params(),
		builder.WithSeed(cfg.Seed),
		builder.WithMaxAttempts(cfg.MaxAttempts),
		builder.WithLogger(logger),
		builder.WithMetrics(metrics.New(reg)),
	)
	if err != nil {
		return err
	}

	report(logger, res)

	var buf bytes.Buffer
	if err := render(&buf, cfg.OutputFormat, res); err != nil {
		return err
	}
	if cfg.Output == "" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return err
		}
	} else if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.LogFormat == config.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func loadDataset(cfg config.Config) (cities.Dataset, error) {
	if cfg.Dataset == "" {
		return cities.LoadJSON(bytes.NewReader(embeddedCities), cities.DefaultRankField)
	}

	f, err := os.Open(cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	if cfg.DatasetFormat == config.FormatCSV {
		return cities.LoadCSV(f)
	}
	return cities.LoadJSON(f, cfg.RankField)
}

// report logs the shape of the generated graph and the anchor-to-anchor route.
func report(logger *slog.Logger, res *builder.Result) {
	log := logger.With("run_id", res.RunID.String())

	if s, err := converters.Summarize(res.Graph); err != nil {
		log.Warn("summary failed", "err", err)
	} else {
		log.Info("graph summary",
			"vertices", s.Vertices,
			"edges", s.Edges,
			"self_loops", s.SelfLoops,
			"components", s.Components,
			"acyclic", s.Acyclic,
		)
	}

	if walk, err := bfs.BFS(res.Graph, res.MinAnchor, bfs.WithDirected()); err != nil {
		log.Warn("hop count failed", "err", err)
	} else {
		log.Info("anchor hops", "backbone", len(res.Path)-1, "fewest", walk.Depth[res.MaxAnchor])
	}

	route, err := dijkstra.ShortestRoute(res.Graph, dijkstra.HaversineWeight(res.Index), res.MinAnchor, res.MaxAnchor)
	if err != nil {
		log.Warn("shortest route failed", "err", err)
		return
	}
	log.Info("shortest route", "miles", fmt.Sprintf("%.2f", route.Miles), "hops", route.Hops())
}

func render(w io.Writer, format string, res *builder.Result) error {
	if format == config.OutputKML {
		return serialize.WriteKML(w, res.Graph, res.Index)
	}

	legs, err := serialize.Flatten(res.Graph, res.Index)
	if err != nil {
		return err
	}
	if format == config.OutputCSV {
		return serialize.WriteCSV(w, legs)
	}
	return serialize.WriteInitializerList(w, legs)
}
