package track

import "fmt"

// Rect is an axis-aligned rectangle. Rectangles produced by this package
// are normalized so that X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", r.X0, r.X1, r.Y0, r.Y1)
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Union returns the smallest rectangle enclosing both rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Contains reports whether pt lies inside r or on its edge.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X <= r.X1 && pt.Y >= r.Y0 && pt.Y <= r.Y1
}

// BoundingBox returns the smallest rectangle containing the whole route.
// Callers use it to size the surface the route is drawn on. The zero Route
// has the zero Rect as its bounding box.
func (r Route) BoundingBox() Rect {
	if len(r.segs) == 0 {
		return Rect{}
	}
	bbox := r.segs[0].BoundingBox()
	for _, seg := range r.segs[1:] {
		bbox = bbox.Union(seg.BoundingBox())
	}
	return bbox
}

// BoundingBox returns the tight bounding box of the segment.
func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return NewRectFromPoints(seg.P0, seg.P1)
	case CubicKind:
		c := seg.Cubic()
		bbox := NewRectFromPoints(c.P0, c.P3)
		ex, n := c.Extrema()
		for _, t := range ex[:n] {
			bbox = bbox.UnionPoint(c.Eval(t))
		}
		return bbox
	default:
		return Rect{}
	}
}
