package core

// Point is a position in screen space (pixels, origin top-left, Y down).
type Point struct{ X, Y float32 }

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Rect is an axis-aligned rectangle. W and H may be negative; drawing a
// rectangle with a negative extent mirrors it along that axis.
type Rect struct{ X, Y, W, H float32 }

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float32) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// RectInts builds a Rect from integer pixel coordinates.
func RectInts(x, y, w, h int) Rect {
	return Rect{float32(x), float32(y), float32(w), float32(h)}
}

// RectFloat64 builds a Rect from float64 coordinates.
func RectFloat64(x, y, w, h float64) Rect {
	return Rect{float32(x), float32(y), float32(w), float32(h)}
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.W == 0 || r.H == 0 }

// Normalize returns the same area with non-negative width and height.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

func (r Rect) Center() Point { return Point{r.X + r.W*0.5, r.Y + r.H*0.5} }

// Contains reports whether p lies inside r. Max edges are exclusive.
func (r Rect) Contains(p Point) bool {
	n := r.Normalize()
	return p.X >= n.X && p.X < n.X+n.W && p.Y >= n.Y && p.Y < n.Y+n.H
}
