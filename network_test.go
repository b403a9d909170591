package track

import (
	"errors"
	"sync"
	"testing"
)

func mustNetwork(t *testing.T) *Network {
	t.Helper()
	n, err := NetworkFromLayout(DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestNetworkFromLayout(t *testing.T) {
	n := mustNetwork(t)
	diff(t, []string{"A", "B", "C", "D", "E", "F"}, n.Nodes())

	var labels []string
	for _, e := range n.EdgesFrom("E") {
		labels = append(labels, e.Label)
	}
	diff(t, []string{"E-B", "E-F"}, labels)
	if got := n.EdgesFrom("B"); len(got) != 0 {
		t.Errorf("B is a terminus, got edges %v", got)
	}

	p, ok := n.Node("F")
	if !ok {
		t.Fatal("node F missing")
	}
	diff(t, Pt(650, 300), p)

	e, ok := n.Edge("E-F")
	if !ok {
		t.Fatal("edge E-F missing")
	}
	if e.From != "E" || e.To != "F" || e.Route.Segment(0).Kind != CubicKind {
		t.Errorf("got edge %+v", e)
	}
}

func TestNetworkPathMatchesBuildRoute(t *testing.T) {
	n := mustNetwork(t)
	tests := []struct {
		kind   RouteKind
		labels []string
	}{
		{Straight, []string{"A-E", "E-B"}},
		{Diagonal, []string{"A-E", "E-F", "F-D"}},
	}
	for _, tt := range tests {
		built := mustRoute(t, tt.kind)
		path, err := n.Path(tt.labels...)
		if err != nil {
			t.Fatal(err)
		}
		if path.TotalLength() != built.TotalLength() {
			t.Errorf("%v: got length %g, want %g", tt.kind, path.TotalLength(), built.TotalLength())
		}
		for _, d := range []float64{0, 75, 120, 350, 500, path.TotalLength()} {
			diff(t, built.PointAtDistance(d), path.PointAtDistance(d), approx(1e-9))
		}
	}
}

func TestNetworkErrors(t *testing.T) {
	n := mustNetwork(t)

	if err := n.AddNode("A", Pt(0, 0)); !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("duplicate node: got %v", err)
	}
	if err := n.AddNode("", Pt(0, 0)); err == nil {
		t.Error("empty name accepted")
	}
	if err := n.ConnectLine("A-X", "A", "X"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("unknown node: got %v", err)
	}
	if err := n.ConnectLine("A-E", "A", "E"); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("duplicate edge: got %v", err)
	}

	wrong, err := NewRoute(LineSeg(Pt(0, 0), Pt(1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if err := n.Connect("A-C", "A", "C", wrong); !errors.Is(err, ErrInvalidRoute) {
		t.Errorf("misplaced route: got %v", err)
	}
	if err := n.Connect("A-C", "A", "C", Route{}); !errors.Is(err, ErrInvalidRoute) {
		t.Errorf("zero route: got %v", err)
	}
	if _, ok := n.Edge("A-C"); ok {
		t.Error("rejected edge was added")
	}

	if _, err := n.Path("A-E", "F-D"); !errors.Is(err, ErrInvalidRoute) {
		t.Errorf("disconnected path: got %v", err)
	}
	if _, err := n.Path("A-E", "nope"); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("unknown edge: got %v", err)
	}
	if _, err := n.Path(); !errors.Is(err, ErrInvalidRoute) {
		t.Errorf("empty path: got %v", err)
	}
}

func TestNetworkConcurrentUse(t *testing.T) {
	n := mustNetwork(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			name := string(rune('G' + i))
			if err := n.AddNode(name, Pt(float64(i), 500)); err != nil {
				t.Error(err)
			}
		}()
		go func() {
			defer wg.Done()
			r, err := n.Path("A-E", "E-F", "F-D")
			if err != nil {
				t.Error(err)
				return
			}
			_ = r.PointAtDistance(r.TotalLength() / 2)
		}()
	}
	wg.Wait()
	if got := len(n.Nodes()); got != 14 {
		t.Errorf("got %d nodes, want 14", got)
	}
}
