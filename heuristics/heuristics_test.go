package heuristics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathkit/heuristics"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y float32 }

func (p point) XY() (float32, float32) { return p.x, p.y }

func TestManhattan(t *testing.T) {
	h := heuristics.Manhattan[point]{}
	require.True(t, h.IsAdmissible())
	require.Equal(t, float32(7), h.Estimate(point{0, 0}, point{3, 4}))
}

func TestEuclidean(t *testing.T) {
	h := heuristics.Euclidean[point]{}
	got := h.Estimate(point{0, 0}, point{3, 4})
	require.InDelta(t, 5.0, got, 1e-6)
}

func TestDiagonalOctile(t *testing.T) {
	h := heuristics.DefaultDiagonal[point]()
	got := h.Estimate(point{0, 0}, point{3, 3})
	require.InDelta(t, 3*math.Sqrt2, got, 1e-5)

	got2 := h.Estimate(point{0, 0}, point{5, 2})
	want2 := float32(2)*float32(math.Sqrt2) + float32(3)*1.0
	require.InDelta(t, want2, got2, 1e-5)
}

func TestZero(t *testing.T) {
	h := heuristics.Zero[point]{}
	require.Equal(t, float32(0), h.Estimate(point{1, 2}, point{9, 9}))
	require.True(t, h.IsAdmissible())
}
