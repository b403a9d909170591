package track

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	if d := math.Abs(l.Length() - want); d > 1e-12 {
		t.Errorf("%g > %g", d, 1e-12)
	}
	seg := l.Seg()
	if seg.Kind != LineKind || seg.Length != l.Length() {
		t.Errorf("got segment %+v", seg)
	}
}

func TestLineEval(t *testing.T) {
	l := Line{Pt(50, 150), Pt(750, 150)}
	diff(t, l.Start(), l.Eval(0))
	diff(t, l.End(), l.Eval(1))
	diff(t, Pt(225, 150), l.Eval(0.25))
	diff(t, Vec(700, 0), l.Tangent())
}

func TestLineIsFinite(t *testing.T) {
	if !(Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsFinite() {
		t.Error("line is infinite but shouldn't be")
	}

	if (Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsFinite() {
		t.Errorf("line is finite but shouldn't be")
	}

	if (Line{Pt(0.0, math.NaN()), Pt(0.0, 1.0)}).IsFinite() {
		t.Errorf("line is finite but shouldn't be")
	}
}
