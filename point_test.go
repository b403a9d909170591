package track

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, -4), Pt(4, -2).Sub(Pt(1, 2)))
	diff(t, Pt(400, 150), Pt(50, 150).Lerp(Pt(750, 150), 0.5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if !p3.Near(p4, 5) || p3.Near(p4, 4.999) {
		t.Error("Near disagrees with Distance")
	}
}

func TestPointIsFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(1, 2), true},
		{Pt(math.Inf(1), 0), false},
		{Pt(0, math.Inf(-1)), false},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.NaN()), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %t, want %t", tt.p, got, tt.want)
		}
	}
}

func TestVecAngle(t *testing.T) {
	if a := Vec(1, 0).Angle(); a != 0 {
		t.Errorf("got %g, want 0", a)
	}
	// y grows downward, so pointing down is a quarter turn clockwise.
	if a := Vec(0, 1).Angle(); math.Abs(a-math.Pi/2) > 1e-15 {
		t.Errorf("got %g, want π/2", a)
	}
	for _, th := range []float64{-3, -1, 0, 0.5, 2, 3} {
		if got := VecFromAngle(th).Angle(); math.Abs(got-th) > 1e-12 {
			t.Errorf("VecFromAngle(%g).Angle() = %g", th, got)
		}
		if h := VecFromAngle(th).Mul(3).Hypot(); math.Abs(h-3) > 1e-12 {
			t.Errorf("got magnitude %g, want 3", h)
		}
	}
}
