// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"log/slog"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/legroute/metrics"
)

// TestDefaults verifies the deterministic defaults of newBuilderConfig.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	require.Nil(t, cfg.float())
	require.Equal(t, DefaultMaxAttempts, cfg.maxAttempts)
	require.NotNil(t, cfg.logger)
	require.Nil(t, cfg.metrics)
}

// TestRNGOptions verifies reproducibility with WithSeed and the precedence of
// WithFloatSource over the RNG.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42)).float()
	b := newBuilderConfig(WithSeed(42)).float()
	require.NotNil(t, a)
	for i := 0; i < 5; i++ {
		require.Equal(t, a(), b())
	}

	r := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithRand(r))
	require.Same(t, r, cfg.rng)

	// float source wins regardless of order
	cfg = newBuilderConfig(WithFloatSource(func() float64 { return 0.25 }), WithSeed(3))
	require.Equal(t, 0.25, cfg.float()())
}

// TestOverrides verifies later options override earlier ones.
func TestOverrides(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	m := metrics.New(prometheus.NewRegistry())
	cfg := newBuilderConfig(WithMaxAttempts(3), WithMaxAttempts(9), WithLogger(logger), WithMetrics(m))
	require.Equal(t, 9, cfg.maxAttempts)
	require.Same(t, logger, cfg.logger)
	require.Same(t, m, cfg.metrics)
}

// TestOptionPanics verifies option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithFloatSource(nil) })
	require.Panics(t, func() { WithMaxAttempts(0) })
	require.Panics(t, func() { WithLogger(nil) })
	require.Panics(t, func() { WithMetrics(nil) })
}

// TestRoundHalfUp pins the rounding used by region arithmetic.
func TestRoundHalfUp(t *testing.T) {
	t.Parallel()

	cases := map[float64]int{0: 0, 0.49: 0, 0.5: 1, 1.5: 2, 2.5: 3, 7: 7, 28.0 / 21.0: 1}
	for in, want := range cases {
		require.Equal(t, want, roundHalfUp(in), "round(%v)", in)
	}
}
