// Package geom provides 2D geometry helpers for normalized frame coordinates.
package geom

import "math"

// Point2D is a point in normalized frame space with x and y in [0,1].
// Smaller y is toward the top of the frame.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point2D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point2D) Point2D {
	return Point2D{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}

// NormalizedDistance returns the distance between two normalized points
// corrected for the frame's aspect ratio. A square frame reduces to the
// plain normalized distance. When either dimension is not positive the
// plain distance is returned.
func NormalizedDistance(a, b Point2D, frameWidth, frameHeight float64) float64 {
	if frameWidth <= 0 || frameHeight <= 0 {
		return Distance(a, b)
	}
	dx := (a.X - b.X) * frameWidth
	dy := (a.Y - b.Y) * frameHeight
	return math.Sqrt(dx*dx+dy*dy) / math.Max(frameWidth, frameHeight)
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the unit range.
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
