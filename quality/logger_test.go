package quality

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, slog.LevelDebug)

	l.WithPair(Pair{X: 4, Y: 9}).LogPair(context.Background(), PairReport{Sobol: 0.001, Random: 0.01, Net: true}, nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pair evaluated", entry["msg"])
	assert.Equal(t, float64(4), entry["x"])
	assert.Equal(t, float64(9), entry["y"])
	assert.Equal(t, true, entry["net"])
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelInfo)

	l.WithPair(Pair{X: 1, Y: 2}).LogPair(context.Background(), PairReport{}, nil)
	assert.Empty(t, buf.String(), "debug output below level")

	l.WithPair(Pair{X: 1, Y: 2}).LogPair(context.Background(), PairReport{}, errors.New("boom"))
	assert.Contains(t, buf.String(), "pair evaluation failed")
	assert.Contains(t, buf.String(), "x=1 y=2")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLogReport(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelInfo)

	l.LogReport(context.Background(), []PairReport{{Sobol: 0.002, Random: 0.01}})
	assert.Contains(t, buf.String(), "evaluation completed")
	assert.NotContains(t, buf.String(), "no better than random")

	buf.Reset()
	l.LogReport(context.Background(), []PairReport{{Sobol: 0.02, Random: 0.01}})
	assert.Contains(t, buf.String(), "no better than random")
	assert.Contains(t, buf.String(), "worse=1")
}
