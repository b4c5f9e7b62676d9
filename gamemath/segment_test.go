package gamemath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentIntersectsRect(t *testing.T) {
	box := Rect{X: 10, Y: 10, W: 10, H: 10}

	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           bool
	}{
		{"crosses horizontally", 0, 15, 30, 15, true},
		{"crosses diagonally", 0, 0, 30, 30, true},
		{"fully inside", 12, 12, 18, 18, true},
		{"ends on edge", 0, 10, 10, 10, true},
		{"passes above", 0, 5, 30, 5, false},
		{"stops short", 0, 15, 9, 15, false},
		{"vertical left of box", 5, 0, 5, 30, false},
		{"degenerate point inside", 15, 15, 15, 15, true},
		{"degenerate point outside", 25, 25, 25, 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SegmentIntersectsRect(tt.x1, tt.y1, tt.x2, tt.y2, box))
		})
	}
}

func TestSegmentBounds(t *testing.T) {
	r := SegmentBounds(32, 0, 0, 0, 2)
	require.Equal(t, Rect{X: 0, Y: -1, W: 32, H: 2}, r)

	r = SegmentBounds(0, 0, 3, 4, 1)
	require.Equal(t, Rect{X: 0, Y: 0, W: 3, H: 4}, r)
	require.InDelta(t, 5.0, SegmentLength(0, 0, 3, 4), 1e-9)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 4, H: 2}
	require.True(t, r.Contains(4, 2))
	require.False(t, r.Contains(4.1, 1))
}
