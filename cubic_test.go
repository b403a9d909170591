package track

import (
	"math"
	"testing"
)

// parabola is y = x² for x ∈ [0, 1].
var parabola = CubicBez{
	Pt(0.0, 0.0),
	Pt(1.0/3.0, 0.0),
	Pt(2.0/3.0, 1.0/3.0),
	Pt(1.0, 1.0),
}

// parabolaLength is the exact arclength of y = x² over [0, 1].
var parabolaLength = math.Sqrt(5)/2 + math.Asinh(2)/4

func TestCubicBezEval(t *testing.T) {
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		p := parabola.Eval(ts)
		if d := math.Abs(p.Y - p.X*p.X); d > 1e-12 {
			t.Errorf("t=%g: point %v is %g off the parabola", ts, p, d)
		}
	}
	diff(t, parabola.Start(), parabola.Eval(0))
	diff(t, parabola.End(), parabola.Eval(1))
}

func TestCubicBezDeriv(t *testing.T) {
	const n = 10
	const delta = 1e-6
	for i := 0; i < n+1; i++ {
		ts := float64(i) / float64(n)
		p := parabola.Eval(ts)
		p1 := parabola.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := parabola.Deriv(ts)
		if l := d.Add(dApprox.Negate()).Hypot(); l >= delta*10 {
			t.Errorf("got difference of %g, want at most %g", l, delta*10)
		}
	}
}

func TestCubicBezSampledArclen(t *testing.T) {
	prev := 0.0
	for n := 1; n <= 1024; n *= 2 {
		got := parabola.SampledArclen(n)
		// Doubling the sample count refines the polyline, which can only make
		// it longer, and no polyline through points of the curve is longer
		// than the curve.
		if got < prev {
			t.Errorf("n=%d: length %g shrank from %g", n, got, prev)
		}
		if got > parabolaLength+1e-12 {
			t.Errorf("n=%d: length %g exceeds true length %g", n, got, parabolaLength)
		}
		prev = got
	}
	if d := parabolaLength - prev; d > 1e-5 {
		t.Errorf("with 1024 samples, off by %g", d)
	}

	chord := parabola.P0.Distance(parabola.P3)
	if got := parabola.SampledArclen(1); got != chord {
		t.Errorf("one sample: got %g, want chord %g", got, chord)
	}
	if got := parabola.SampledArclen(0); got != chord {
		t.Errorf("zero samples: got %g, want chord %g", got, chord)
	}
	if got, want := parabola.Arclen(), parabola.SampledArclen(ArclenSamples); got != want {
		t.Errorf("Arclen() = %g, want %g", got, want)
	}
}

func TestCubicBezStraight(t *testing.T) {
	// Control points on the chord, evenly spaced: the curve is the line
	// itself, traced at constant speed.
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	if got := c.Arclen(); math.Abs(got-3) > 1e-12 {
		t.Errorf("got length %g, want 3", got)
	}
	diff(t, Pt(1.5, 0), c.Eval(0.5), approx(1e-12))
	diff(t, Vec(3, 0), c.Deriv(0.3), approx(1e-12))
}
