// pkg/geom/geom.go
package geom

import "math"

// Point is an immutable pixel-space coordinate.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Chebyshev returns max(|dx|, |dy|) between a and b.
func Chebyshev(a, b Point) float64 {
	return math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))
}

// DistSq returns the squared Euclidean distance between a and b.
func DistSq(a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}

// StepToward moves from toward to by at most maxStep, where the step length is
// measured with the Chebyshev distance. Diagonal motion is therefore up to √2
// faster than motion along an axis.
func StepToward(from, to Point, maxStep float64) Point {
	dist := Chebyshev(from, to)
	if dist == 0 {
		return from
	}
	if dist <= maxStep {
		return to
	}
	return from.Add(to.Sub(from).Scale(maxStep / dist))
}

// HasPassed reports whether moved has reached or overshot target along
// direction (the delta toward target measured before the move).
func HasPassed(moved, target, direction Point) bool {
	return direction.Dot(moved.Sub(target)) >= 0
}
