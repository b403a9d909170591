package track

import (
	"math"
	"slices"
)

// ArclenSamples is the number of chords used to approximate the length of a
// cubic Bézier segment. Routes built with the same control points always get
// the same lengths because the count is fixed.
const ArclenSamples = 20

// CubicBez is a cubic Bézier curve: start point P0, control points P1 and P2,
// end point P3.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3.0 * mt * mt * t
	d := 3.0 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Deriv returns the first derivative of the curve at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d01 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d12 := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d23 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d01.Add(d12).Add(d23)
}

// SampledArclen approximates the arclength of the curve by evaluating it at n
// equally spaced parameter values and summing the distances between
// consecutive samples. The result never exceeds the true length and
// converges to it as n grows. n < 1 is treated as 1, which yields the chord
// length.
func (c CubicBez) SampledArclen(n int) float64 {
	if n < 1 {
		n = 1
	}
	var length float64
	prev := c.P0
	for i := 1; i <= n; i++ {
		cur := c.Eval(float64(i) / float64(n))
		length += prev.Distance(cur)
		prev = cur
	}
	return length
}

// Arclen returns the length of the curve as used by routes, see
// [ArclenSamples].
func (c CubicBez) Arclen() float64 {
	return c.SampledArclen(ArclenSamples)
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) IsFinite() bool {
	return c.P0.IsFinite() && c.P1.IsFinite() && c.P2.IsFinite() && c.P3.IsFinite()
}

// Seg returns the curve as a route segment with its sampled length.
func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3, Length: c.Arclen()}
}

// Extrema returns the parameters in (0, 1) at which the curve reaches a
// horizontal or vertical extremum, in ascending order. At most four exist.
func (c CubicBez) Extrema() ([4]float64, int) {
	var out [4]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		// The derivative of one coordinate is the quadratic Bézier with
		// control values 3·d0, 3·d1, 3·d2; the factor doesn't move its roots.
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		roots, n := solveQuadratic(d0, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	slices.Sort(out[:outN])
	return out, outN
}

// solveQuadratic finds the real roots of c0 + c1·x + c2·x² = 0. A vanishing
// c2 falls back to the linear equation; if all coefficients are zero, 0 is
// reported as the only root.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	if arg < 0.0 {
		return [2]float64{}, 0
	} else if arg == 0.0 {
		return [2]float64{-0.5 * sc1}, 1
	}
	// Avoid cancellation by computing the larger root first.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}
