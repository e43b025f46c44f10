package geom

// Rect is an axis-aligned rectangle. Max is exclusive.
type Rect struct {
	Min, Max Point
}

// RectAround returns a w×h rectangle centered on c.
func RectAround(c Point, w, h float64) Rect {
	return Rect{
		Min: Point{X: c.X - w/2, Y: c.Y - h/2},
		Max: Point{X: c.X + w/2, Y: c.Y + h/2},
	}
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r. Points on the Max edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether r and s share any area. Rectangles that only touch
// along an edge do not overlap.
func (r Rect) Overlaps(s Rect) bool {
	if r.Dx() <= 0 || r.Dy() <= 0 || s.Dx() <= 0 || s.Dy() <= 0 {
		return false
	}
	return r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Offset returns r translated by d.
func (r Rect) Offset(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}
