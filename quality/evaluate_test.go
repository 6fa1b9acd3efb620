package quality

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	reports, err := Evaluate(context.Background(),
		WithSamples(256),
		WithPairs(ConsecutivePairs(0, 2)...),
		WithSeed(3),
		WithConcurrency(2),
		WithLogger(logger),
	)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	for i, r := range reports {
		assert.Equal(t, Pair{X: uint32(2 * i), Y: uint32(2*i + 1)}, r.Pair)
		assert.Equal(t, 256, r.Samples)
		assert.Less(t, r.Sobol, r.Random, "pair %v", r.Pair)
		assert.Greater(t, r.Ratio(), 1.0)
	}
	assert.True(t, reports[0].Net, "dimensions 0 and 1 form a net")

	assert.Contains(t, buf.String(), "pair evaluated")
	assert.Contains(t, buf.String(), "x=2 y=3")
	assert.Contains(t, buf.String(), "evaluation completed")
}

func TestEvaluateHighDimensionPairs(t *testing.T) {
	pairs := []Pair{{X: 250, Y: 153}, {X: 66, Y: 35}}
	for _, seed := range []uint32{0, 1, 7, 12345} {
		reports, err := Evaluate(context.Background(),
			WithSamples(1024),
			WithPairs(pairs...),
			WithSeed(seed),
		)
		require.NoError(t, err)
		require.Len(t, reports, len(pairs))

		for _, r := range reports {
			assert.Less(t, r.Sobol, 0.005, "seed %d pair %v", seed, r.Pair)
			assert.Greater(t, r.Ratio(), 2.0, "seed %d pair %v", seed, r.Pair)
		}
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	opts := []Option{WithSamples(128), WithSeed(11), WithShuffle(true)}
	a, err := Evaluate(context.Background(), opts...)
	require.NoError(t, err)
	b, err := Evaluate(context.Background(), append(opts, WithConcurrency(1))...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEvaluateInvalid(t *testing.T) {
	_, err := Evaluate(context.Background(), WithSamples(1000))
	assert.ErrorIs(t, err, ErrInvalidSamples)

	_, err = Evaluate(context.Background(), WithSamples(1<<17))
	assert.ErrorIs(t, err, ErrInvalidSamples)

	_, err = Evaluate(context.Background(), WithPairs(Pair{X: 1, Y: 1}))
	assert.ErrorIs(t, err, ErrInvalidPair)

	_, err = Evaluate(context.Background(), WithPairs(Pair{X: 0, Y: 256}))
	assert.ErrorIs(t, err, ErrInvalidPair)
}

func TestEvaluateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Evaluate(ctx, WithLogger(nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsecutivePairs(t *testing.T) {
	assert.Equal(t, []Pair{{4, 5}, {6, 7}}, ConsecutivePairs(4, 2))
	assert.Empty(t, ConsecutivePairs(0, 0))
}

func TestPairReportRatio(t *testing.T) {
	assert.Equal(t, 0.0, PairReport{}.Ratio())
	assert.Equal(t, 4.0, PairReport{Sobol: 0.5, Random: 2}.Ratio())
}
