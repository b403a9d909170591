package track

import (
	"fmt"
	"strings"
)

// RouteKind selects one of the two tracks of a [Layout].
type RouteKind int

const (
	// Straight runs along the top track from A to B.
	Straight RouteKind = iota + 1
	// Diagonal leaves the top track at E, crosses over to the bottom track
	// on a cubic Bézier and arrives at D through F.
	Diagonal
)

func (k RouteKind) String() string {
	switch k {
	case Straight:
		return "straight"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("RouteKind(%d)", int(k))
	}
}

// ParseRouteKind parses the name of a route kind. "multi-segment" is
// accepted as another name for [Diagonal].
func ParseRouteKind(s string) (RouteKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "straight":
		return Straight, nil
	case "diagonal", "multi-segment":
		return Diagonal, nil
	default:
		return 0, invalidRoute(-1, "unknown route kind %q", s)
	}
}

// Layout holds the fixed control points of the two tracks.
//
//	A ─── E ─────────────── B
//	       ╲
//	        ╲ (cubic, CP1 and CP2)
//	         ╲
//	C ─────── F ─────────── D
type Layout struct {
	A, B, C, D Point
	E, F       Point
	CP1, CP2   Point
}

// NewLayout derives the junctions and control points from the four track
// ends: E lies junctionOffset to the right of A, F lies junctionOffset to
// the left of D, and the control points sit controlOffset further inward
// horizontally from E and F.
func NewLayout(a, b, c, d Point, junctionOffset, controlOffset float64) Layout {
	e := a.Translate(Vec(junctionOffset, 0))
	f := d.Translate(Vec(-junctionOffset, 0))
	return Layout{
		A: a, B: b, C: c, D: d,
		E: e, F: f,
		CP1: e.Translate(Vec(controlOffset, 0)),
		CP2: f.Translate(Vec(-controlOffset, 0)),
	}
}

// DefaultLayout returns the layout of an 800×450 canvas: top track at y=150,
// bottom track at y=300, both running from x=50 to x=750.
func DefaultLayout() Layout {
	return NewLayout(Pt(50, 150), Pt(750, 150), Pt(50, 300), Pt(750, 300), 100, 100)
}

// BuildRoute builds the route of the given kind over the layout's control
// points. Unknown kinds are rejected with an [*InvalidRouteError].
func BuildRoute(kind RouteKind, l Layout) (Route, error) {
	var segs []Segment
	switch kind {
	case Straight:
		segs = []Segment{LineSeg(l.A, l.B)}
	case Diagonal:
		segs = []Segment{
			LineSeg(l.A, l.E),
			CubicSeg(l.E, l.CP1, l.CP2, l.F),
			LineSeg(l.F, l.D),
		}
	default:
		return Route{}, invalidRoute(-1, "unknown route kind %v", kind)
	}
	r, err := NewRoute(segs...)
	if err != nil {
		return Route{}, fmt.Errorf("building %v route: %w", kind, err)
	}
	Logger().Debug("route built", "kind", kind.String(), "segments", r.Len(), "length", r.TotalLength())
	return r, nil
}
