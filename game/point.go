package game

import "fmt"

// Point is a position in the wrap-around field.
type Point struct {
	X int
	Y int
}

// Wrap maps any integer coordinate into [0, FieldSize).
func Wrap(v int) int {
	v %= FieldSize
	if v < 0 {
		v += FieldSize
	}
	return v
}

// Add returns p offset by (dx, dy), wrapped on both axes.
func (p Point) Add(dx, dy int) Point {
	return Point{X: Wrap(p.X + dx), Y: Wrap(p.Y + dy)}
}

// Chebyshev returns the larger of the two per-axis distances between p and q,
// each measured the short way around the field.
func (p Point) Chebyshev(q Point) int {
	return max(axisDistance(p.X, q.X), axisDistance(p.Y, q.Y))
}

// String formats p as (x,y).
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// axisDistance is the wrap-aware distance between two coordinates.
func axisDistance(a, b int) int {
	d := Wrap(a - b)
	if d > FieldSize-d {
		d = FieldSize - d
	}
	return d
}

// Delta returns the shortest signed displacement from a to b on one axis.
func Delta(a, b int) int {
	d := Wrap(b - a)
	if d > FieldSize/2 {
		d -= FieldSize
	}
	return d
}
