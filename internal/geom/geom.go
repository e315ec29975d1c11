// Package geom provides the pure pan/zoom geometry used by the view controller.
package geom

import "math"

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned bounding rectangle in screen coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{
		X: r.Left + r.Width()/2,
		Y: r.Top + r.Height()/2,
	}
}

// PinchDistance returns the Euclidean distance between two touch contacts.
func PinchDistance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// ZoomPosition computes the translation for a zoom change anchored at a focal
// point. rect is the surface's current bounding rectangle, focal the screen
// point that should stay visually stationary, prev the current translation.
//
// Zooming all the way back to 1 always recenters the surface, regardless of
// where the focal point is.
func ZoomPosition(rect Rect, focal Point, newZoom, prevZoom float64, prev Point) Point {
	if newZoom == 1 {
		return Point{}
	}

	center := rect.Center()
	if newZoom > prevZoom {
		// Keep the focal point stationary: shift by its offset from the
		// rect center (in unscaled pixels) times the zoom increment.
		return Point{
			X: prev.X + (center.X-focal.X)/prevZoom*(newZoom-prevZoom),
			Y: prev.Y + (center.Y-focal.Y)/prevZoom*(newZoom-prevZoom),
		}
	}

	// Zooming out: rescale the translation so it reaches zero as the zoom
	// reaches 1.
	div := prevZoom - 1
	if div == 0 {
		div = prevZoom
	}
	return Point{
		X: prev.X * (newZoom - 1) / div,
		Y: prev.Y * (newZoom - 1) / div,
	}
}

// ClampShift limits a one-axis pan shift so the surface's edges never cross
// the pannable zone. minLimit and maxLimit bound the zone along the axis;
// minEdge and maxEdge are the surface's current edges along the same axis.
//
// A positive shift moves the surface toward minLimit and is forbidden once
// minEdge already lies past it; a negative shift is the mirror case against
// maxLimit. Shifts that would overshoot are cut to land exactly on the limit.
func ClampShift(shift, minLimit, maxLimit, minEdge, maxEdge float64) float64 {
	switch {
	case shift > 0:
		if minEdge > minLimit {
			return 0
		}
		if minEdge+shift > minLimit {
			return minLimit - minEdge
		}
	case shift < 0:
		if maxEdge < maxLimit {
			return 0
		}
		if maxEdge+shift < maxLimit {
			return maxLimit - maxEdge
		}
	}
	return shift
}
