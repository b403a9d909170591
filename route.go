package track

import (
	"math"
	"sort"
)

// TangentEpsilon is the distance, in route units, on either side of a query
// point that [Route.TangentAngle] samples to estimate the direction of travel.
const TangentEpsilon = 1.0

// Route is an ordered chain of segments. Consecutive segments are expected to
// meet (the end of one is the start of the next); this is assumed, not
// enforced, see [Route.Contiguous].
//
// A Route is immutable once built and safe for concurrent use. The zero
// Route has no segments; querying it yields the origin and an angle of zero.
// Routes returned by [NewRoute] and [BuildRoute] always have at least one
// segment and a positive length.
type Route struct {
	segs  []Segment
	ends  []float64 // ends[i] is the distance at which segs[i] ends
	total float64
}

// NewRoute validates segs and returns the route made of them. It fails with
// an [*InvalidRouteError] if there are no segments, if any point is not
// finite, or if any segment doesn't have a positive, finite length.
func NewRoute(segs ...Segment) (Route, error) {
	if len(segs) == 0 {
		return Route{}, invalidRoute(-1, "no segments")
	}
	r := Route{
		segs: make([]Segment, len(segs)),
		ends: make([]float64, len(segs)),
	}
	copy(r.segs, segs)
	for i, seg := range r.segs {
		switch seg.Kind {
		case LineKind, CubicKind:
		default:
			return Route{}, invalidRoute(i, "unknown segment kind %v", seg.Kind)
		}
		if !seg.isFinite() {
			return Route{}, invalidRoute(i, "non-finite coordinates")
		}
		if !(seg.Length > 0) || math.IsInf(seg.Length, 0) {
			return Route{}, invalidRoute(i, "length %g is not positive", seg.Length)
		}
		r.total += seg.Length
		r.ends[i] = r.total
	}
	if !(r.total > 0) || math.IsInf(r.total, 0) {
		return Route{}, invalidRoute(-1, "total length %g is not positive", r.total)
	}
	return r, nil
}

// TotalLength returns the sum of the segment lengths.
func (r Route) TotalLength() float64 { return r.total }

// Len returns the number of segments.
func (r Route) Len() int { return len(r.segs) }

// Segment returns the i'th segment.
func (r Route) Segment(i int) Segment { return r.segs[i] }

// Segments returns a copy of the route's segments.
func (r Route) Segments() []Segment {
	out := make([]Segment, len(r.segs))
	copy(out, r.segs)
	return out
}

// IsZero reports whether r is the zero Route.
func (r Route) IsZero() bool { return len(r.segs) == 0 }

// Start returns the start of the first segment.
func (r Route) Start() Point {
	if len(r.segs) == 0 {
		return Point{}
	}
	return r.segs[0].Start()
}

// End returns the end of the last segment.
func (r Route) End() Point {
	if len(r.segs) == 0 {
		return Point{}
	}
	return r.segs[len(r.segs)-1].End()
}

// Clamp limits d to [0, r.TotalLength()].
func (r Route) Clamp(d float64) float64 {
	return max(0, min(d, r.total))
}

// Locate returns the index of the segment containing distance d and the
// segment parameter at d. Distances outside the route are clamped, so the
// result is (0, 0) for d ≤ 0 and (Len()-1, 1) for d ≥ TotalLength. A distance
// that falls exactly on a boundary belongs to the earlier segment.
//
// Locate returns (-1, 0) for the zero Route.
func (r Route) Locate(d float64) (int, float64) {
	n := len(r.segs)
	if n == 0 {
		return -1, 0
	}
	if d <= 0 || math.IsNaN(d) {
		return 0, 0
	}
	if d >= r.total {
		return n - 1, 1
	}
	i := sort.SearchFloat64s(r.ends, d)
	if i == n {
		return n - 1, 1
	}
	var start float64
	if i > 0 {
		start = r.ends[i-1]
	}
	t := (d - start) / r.segs[i].Length
	return i, max(0, min(t, 1))
}

// PointAtDistance returns the point reached after traveling d along the
// route. d ≤ 0 yields the route's start and d ≥ TotalLength its end.
func (r Route) PointAtDistance(d float64) Point {
	if len(r.segs) == 0 {
		return Point{}
	}
	if d <= 0 || math.IsNaN(d) {
		return r.Start()
	}
	if d >= r.total {
		return r.End()
	}
	i, t := r.Locate(d)
	return r.segs[i].Eval(t)
}

// TangentAngle returns the direction of travel at distance d, in radians, as
// atan2(dy, dx) between the points at d−[TangentEpsilon] and
// d+[TangentEpsilon]. Both sample distances are clamped to the route, so
// within TangentEpsilon of either end the estimate is one-sided and slightly
// biased.
func (r Route) TangentAngle(d float64) float64 {
	if len(r.segs) == 0 {
		return 0
	}
	p1 := r.PointAtDistance(r.Clamp(d - TangentEpsilon))
	p2 := r.PointAtDistance(r.Clamp(d + TangentEpsilon))
	return p2.Sub(p1).Angle()
}

// Contiguous reports whether every segment starts within tol of where the
// previous one ended.
func (r Route) Contiguous(tol float64) bool {
	for i := 1; i < len(r.segs); i++ {
		if !r.segs[i-1].End().Near(r.segs[i].Start(), tol) {
			return false
		}
	}
	return true
}

// Concat returns a route consisting of the segments of all routes, in order.
func Concat(routes ...Route) (Route, error) {
	var segs []Segment
	for _, r := range routes {
		segs = append(segs, r.segs...)
	}
	return NewRoute(segs...)
}
