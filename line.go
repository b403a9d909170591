package track

// Line represents a straight piece of track.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Tangent returns the direction of travel, which is the same everywhere on
// the line.
func (l Line) Tangent() Vec2 {
	return l.P1.Sub(l.P0)
}

func (l Line) IsFinite() bool {
	return l.P0.IsFinite() && l.P1.IsFinite()
}

// Seg returns the line as a route segment.
func (l Line) Seg() Segment {
	return Segment{Kind: LineKind, P0: l.P0, P1: l.P1, Length: l.Length()}
}
