package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, 2.667, FormatFloat(8.0/3.0, 3))
	assert.Equal(t, 2.67, FormatFloat(8.0/3.0, 2))
	assert.Equal(t, 3.0, FormatFloat(2.5, 0))
	assert.True(t, math.IsNaN(FormatFloat(math.NaN(), 3)))
	assert.True(t, math.IsInf(FormatFloat(math.Inf(1), 3), 1))
}

func TestLinspace(t *testing.T) {
	grid := Linspace(0, 2, 5)
	require.Len(t, grid, 5)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 1.5, 2}, grid, 1e-15)

	grid = Linspace(-1, 3, 1000)
	assert.Equal(t, -1.0, grid[0])
	assert.InDelta(t, 3.0, grid[len(grid)-1], 1e-12)

	assert.Equal(t, []float64{7}, Linspace(7, 9, 1))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}
