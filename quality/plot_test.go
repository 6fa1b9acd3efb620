package quality

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePBM(t *testing.T) {
	var buf bytes.Buffer
	err := WritePBM(&buf, []float32{0, 0.999}, []float32{0, 0.999}, 4, 2)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "P1", lines[0])
	assert.Equal(t, "4 2", lines[1])
	assert.Equal(t, "10100000", lines[2])
}

func TestWritePBMWraps(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePBM(&buf, nil, nil, 100, 1))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Len(t, lines[2], 70)
	assert.Len(t, lines[3], 30)
}

func TestWritePBMErrors(t *testing.T) {
	assert.Error(t, WritePBM(&bytes.Buffer{}, nil, nil, 0, 1))
	assert.ErrorIs(t, WritePBM(&bytes.Buffer{}, []float32{1}, nil, 1, 1), ErrDimensionMismatch)
}
