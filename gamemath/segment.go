package gamemath

import "math"

// Rect is an axis-aligned box with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r (edges included).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// SegmentLength returns the length of the segment (x1,y1)-(x2,y2).
func SegmentLength(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// SegmentBounds returns the bounding box of a segment, padded to at least
// minSize on each axis so axis-aligned segments still occupy space.
func SegmentBounds(x1, y1, x2, y2, minSize float64) Rect {
	r := Rect{
		X: math.Min(x1, x2),
		Y: math.Min(y1, y2),
		W: math.Abs(x2 - x1),
		H: math.Abs(y2 - y1),
	}
	if r.W < minSize {
		r.X -= (minSize - r.W) / 2
		r.W = minSize
	}
	if r.H < minSize {
		r.Y -= (minSize - r.H) / 2
		r.H = minSize
	}
	return r
}

// SegmentIntersectsRect reports whether any part of the segment lies inside r.
// Liang-Barsky clipping against the four edges.
func SegmentIntersectsRect(x1, y1, x2, y2 float64, r Rect) bool {
	dx := x2 - x1
	dy := y2 - y1
	t0, t1 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x1 - r.X, r.X + r.W - x1, y1 - r.Y, r.Y + r.H - y1}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			// Parallel to this edge; reject if outside it
			if q[i] < 0 {
				return false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return t0 <= t1
}
