package track

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// NodeTolerance is how far an edge's route may start or end from the
// position of its node.
const NodeTolerance = 1e-6

// Edge is a labeled, directed connection between two nodes of a [Network].
type Edge struct {
	Label string
	From  string
	To    string
	Route Route
}

// Network is a set of named nodes joined by labeled edges, each owning the
// route a train follows between the two nodes. It is independent of how
// the nodes and edges are presented.
//
// A Network is safe for concurrent use.
type Network struct {
	mu    sync.RWMutex
	nodes map[string]Point
	edges map[string]Edge
	out   map[string][]string // node name to labels of edges leaving it
}

func NewNetwork() *Network {
	return &Network{
		nodes: make(map[string]Point),
		edges: make(map[string]Edge),
		out:   make(map[string][]string),
	}
}

// AddNode adds a node at the given position.
func (n *Network) AddNode(name string, at Point) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("add node: empty name")
	}
	if !at.IsFinite() {
		return fmt.Errorf("add node %q: non-finite position %v", name, at)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.nodes[name]; ok {
		return fmt.Errorf("add node %q: %w", name, ErrDuplicateNode)
	}
	n.nodes[name] = at
	Logger().Debug("node added", "node", name, "x", at.X, "y", at.Y)
	return nil
}

// Connect adds an edge from one node to another. The route must start at
// from and end at to, within [NodeTolerance].
func (n *Network) Connect(label, from, to string, r Route) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("connect %s→%s: empty label", from, to)
	}
	if r.IsZero() {
		return fmt.Errorf("connect %q: %w", label, invalidRoute(-1, "no segments"))
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.edges[label]; ok {
		return fmt.Errorf("connect %q: %w", label, ErrDuplicateEdge)
	}
	fp, ok := n.nodes[from]
	if !ok {
		return fmt.Errorf("connect %q: node %q: %w", label, from, ErrUnknownNode)
	}
	tp, ok := n.nodes[to]
	if !ok {
		return fmt.Errorf("connect %q: node %q: %w", label, to, ErrUnknownNode)
	}
	if !r.Start().Near(fp, NodeTolerance) {
		return fmt.Errorf("connect %q: %w", label,
			invalidRoute(0, "starts at %v, node %q is at %v", r.Start(), from, fp))
	}
	if !r.End().Near(tp, NodeTolerance) {
		return fmt.Errorf("connect %q: %w", label,
			invalidRoute(r.Len()-1, "ends at %v, node %q is at %v", r.End(), to, tp))
	}
	n.edges[label] = Edge{Label: label, From: from, To: to, Route: r}
	n.out[from] = append(n.out[from], label)
	Logger().Debug("edge added", "edge", label, "from", from, "to", to, "length", r.TotalLength())
	return nil
}

// ConnectLine adds a straight edge between two existing nodes.
func (n *Network) ConnectLine(label, from, to string) error {
	fp, tp, err := n.endpoints(label, from, to)
	if err != nil {
		return err
	}
	r, err := NewRoute(LineSeg(fp, tp))
	if err != nil {
		return fmt.Errorf("connect %q: %w", label, err)
	}
	return n.Connect(label, from, to, r)
}

// ConnectCurve adds a cubic Bézier edge between two existing nodes.
func (n *Network) ConnectCurve(label, from, to string, cp1, cp2 Point) error {
	fp, tp, err := n.endpoints(label, from, to)
	if err != nil {
		return err
	}
	r, err := NewRoute(CubicSeg(fp, cp1, cp2, tp))
	if err != nil {
		return fmt.Errorf("connect %q: %w", label, err)
	}
	return n.Connect(label, from, to, r)
}

func (n *Network) endpoints(label, from, to string) (Point, Point, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	fp, ok := n.nodes[from]
	if !ok {
		return Point{}, Point{}, fmt.Errorf("connect %q: node %q: %w", label, from, ErrUnknownNode)
	}
	tp, ok := n.nodes[to]
	if !ok {
		return Point{}, Point{}, fmt.Errorf("connect %q: node %q: %w", label, to, ErrUnknownNode)
	}
	return fp, tp, nil
}

// Node returns the position of the named node.
func (n *Network) Node(name string) (Point, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	p, ok := n.nodes[name]
	return p, ok
}

// Nodes returns the names of all nodes in lexical order.
func (n *Network) Nodes() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	names := make([]string, 0, len(n.nodes))
	for name := range n.nodes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (n *Network) Edge(label string) (Edge, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	e, ok := n.edges[label]
	return e, ok
}

// EdgesFrom returns the edges leaving the named node, ordered by label.
func (n *Network) EdgesFrom(name string) []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	labels := slices.Clone(n.out[name])
	slices.Sort(labels)
	out := make([]Edge, 0, len(labels))
	for _, l := range labels {
		out = append(out, n.edges[l])
	}
	return out
}

// Path joins the routes of the given edges into one route. Each edge must
// leave from the node the previous one arrived at.
func (n *Network) Path(labels ...string) (Route, error) {
	if len(labels) == 0 {
		return Route{}, invalidRoute(-1, "no segments")
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	routes := make([]Route, 0, len(labels))
	var at string
	for i, l := range labels {
		e, ok := n.edges[l]
		if !ok {
			return Route{}, fmt.Errorf("path: edge %q: %w", l, ErrUnknownEdge)
		}
		if i > 0 && e.From != at {
			return Route{}, fmt.Errorf("path: edge %q leaves %q, previous edge arrives at %q: %w",
				l, e.From, at, ErrInvalidRoute)
		}
		at = e.To
		routes = append(routes, e.Route)
	}
	return Concat(routes...)
}

// NetworkFromLayout returns the nodes A–F of l joined by the edges of the two
// built-in tracks: "A-E", "E-B" and "E-F" (the crossover), "F-D" and "C-F".
// Path("A-E", "E-B") follows the straight route and Path("A-E", "E-F", "F-D")
// the diagonal one.
func NetworkFromLayout(l Layout) (*Network, error) {
	n := NewNetwork()
	for _, node := range []struct {
		name string
		at   Point
	}{
		{"A", l.A}, {"B", l.B}, {"C", l.C}, {"D", l.D}, {"E", l.E}, {"F", l.F},
	} {
		if err := n.AddNode(node.name, node.at); err != nil {
			return nil, err
		}
	}
	for _, e := range [][3]string{{"A-E", "A", "E"}, {"E-B", "E", "B"}, {"C-F", "C", "F"}, {"F-D", "F", "D"}} {
		if err := n.ConnectLine(e[0], e[1], e[2]); err != nil {
			return nil, err
		}
	}
	if err := n.ConnectCurve("E-F", "E", "F", l.CP1, l.CP2); err != nil {
		return nil, err
	}
	return n, nil
}
