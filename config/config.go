// Package config holds the settings of the legroute command: generation
// parameters, dataset and output locations, logging and metrics.
//
// Settings start from DefaultConfig, are overlaid by an optional YAML file
// (unknown keys are rejected) and finally by command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/legroute/builder"
	"github.com/katalvlaran/legroute/cities"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Dataset formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Output formats.
const (
	OutputInitializer = "initializer"
	OutputCSV         = "csv"
	OutputKML         = "kml"
)

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

// Config is the full command configuration.
type Config struct {
	Segments      int   `yaml:"segments"`
	MinAnchorRank int   `yaml:"min_anchor_rank"`
	MaxAnchorRank int   `yaml:"max_anchor_rank"`
	Seed          int64 `yaml:"seed"` // 0 = time-based
	MaxAttempts   int   `yaml:"max_attempts"`

	RankField     string `yaml:"rank_field"`
	Dataset       string `yaml:"dataset"` // empty = built-in sample
	DatasetFormat string `yaml:"dataset_format"`

	Output       string `yaml:"output"` // empty = stdout
	OutputFormat string `yaml:"output_format"`

	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig returns a configuration that generates the reference route
// from the built-in sample and prints the initializer list.
func DefaultConfig() Config {
	p := builder.DefaultParams()
	return Config{
		Segments:      p.Segments,
		MinAnchorRank: p.MinAnchorRank,
		MaxAnchorRank: p.MaxAnchorRank,
		MaxAttempts:   builder.DefaultMaxAttempts,
		RankField:     cities.DefaultRankField,
		DatasetFormat: FormatJSON,
		OutputFormat:  OutputInitializer,
		LogLevel:      "info",
		LogFormat:     LogText,
	}
}

// LoadConfig reads the YAML file at path over DefaultConfig using strict
// parsing. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads YAML from r over DefaultConfig. Unknown keys are an error; an
// empty document leaves the defaults untouched.
func Decode(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("YAML syntax error in config: %w", err)
	}
	return cfg, nil
}

// Params returns the generation parameters.
func (c Config) Params() builder.Params {
	return builder.Params{
		Segments:      c.Segments,
		MinAnchorRank: c.MinAnchorRank,
		MaxAnchorRank: c.MaxAnchorRank,
	}
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// Validate reports every out-of-range setting in one error.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Segments < builder.MinSegments {
		add("segments must be >= %d, got %d", builder.MinSegments, c.Segments)
	}
	if c.MinAnchorRank < 0 {
		add("min_anchor_rank must be >= 0, got %d", c.MinAnchorRank)
	}
	if c.MaxAnchorRank < 0 {
		add("max_anchor_rank must be >= 0, got %d", c.MaxAnchorRank)
	}
	if c.MaxAttempts < 1 {
		add("max_attempts must be >= 1, got %d", c.MaxAttempts)
	}
	if c.RankField == "" {
		add("rank_field must not be empty")
	}
	switch c.DatasetFormat {
	case FormatJSON, FormatCSV:
	default:
		add("dataset_format must be %s or %s, got %q", FormatJSON, FormatCSV, c.DatasetFormat)
	}
	switch c.OutputFormat {
	case OutputInitializer, OutputCSV, OutputKML:
	default:
		add("output_format must be %s, %s or %s, got %q", OutputInitializer, OutputCSV, OutputKML, c.OutputFormat)
	}
	switch c.LogFormat {
	case LogText, LogJSON:
	default:
		add("log_format must be %s or %s, got %q", LogText, LogJSON, c.LogFormat)
	}
	if _, err := c.Level(); err != nil {
		add("log_level %q is not a slog level", c.LogLevel)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
