package track

import "fmt"

type SegmentKind int

const (
	// A straight segment.
	LineKind SegmentKind = iota + 1
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one piece of a [Route]. It acts as a tagged union of [Line] and
// [CubicBez]; Kind decides which of the points are meaningful.
//
// For LineKind, P0 is the start and P1 the end. For CubicKind, P0 is the
// start, P1 and P2 are the control points and P3 is the end.
//
// Length is fixed when the segment is created. For cubic segments it is the
// sampled approximation returned by [CubicBez.Arclen].
type Segment struct {
	Kind   SegmentKind
	P0     Point
	P1     Point
	P2     Point
	P3     Point
	Length float64
}

// LineSeg returns a straight segment from p0 to p1.
func LineSeg(p0, p1 Point) Segment {
	return Line{p0, p1}.Seg()
}

// CubicSeg returns a cubic Bézier segment from p0 to p3 with control points
// p1 and p2.
func CubicSeg(p0, p1, p2, p3 Point) Segment {
	return CubicBez{p0, p1, p2, p3}.Seg()
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Cubic returns the curve represented by this segment. This is only valid when Kind ==
// CubicKind.
func (seg Segment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

func (seg Segment) Start() Point { return seg.P0 }

func (seg Segment) End() Point {
	if seg.Kind == CubicKind {
		return seg.P3
	}
	return seg.P1
}

// Eval returns the point at parameter t ∈ [0, 1].
func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

// Tangent returns the exact derivative of the segment at parameter t.
func (seg Segment) Tangent(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Tangent()
	case CubicKind:
		return seg.Cubic().Deriv(t)
	default:
		return Vec2{}
	}
}

func (seg Segment) isFinite() bool {
	switch seg.Kind {
	case LineKind:
		return seg.Line().IsFinite()
	case CubicKind:
		return seg.Cubic().IsFinite()
	default:
		return false
	}
}
