package graph

import "fmt"

// Epsilon is the reserved label denoting "no symbol consumed/emitted".
// There is no separate epsilon sentinel: label 0 is epsilon everywhere
// arcs are matched (composition, closure, remove).
const Epsilon = 0

// node holds the per-node flags and adjacency lists of a graph state.
type node struct {
	start, accept bool
	in, out       []int
}

// arc holds the endpoints, labels and weight of a single transition.
type arc struct {
	up, down       int
	ilabel, olabel int
	weight         float64
}

// state is the shared, immutable-after-construction graph data. All
// Graph handles referencing the same state observe the same nodes,
// arcs, and gradient accumulator.
type state struct {
	nodes       []node
	arcs        []arc
	startNodes  []int
	acceptNodes []int

	calcGrad bool
	grad     *state // gradient accumulator graph's state, lazily created

	// Autograd linkage: the graphs this state was derived from, and the
	// backward operator that routes deltas to them. Both are nil for a
	// leaf graph built directly with AddNode/AddArc.
	inputs   []Graph
	backward backwardOp
}

// Graph is a handle onto a weighted directed multigraph. The zero value
// is not valid; use New or one of the algebra constructors.
type Graph struct {
	s *state
}

// New creates an empty graph with no nodes or arcs. Its gradient
// tracking is enabled (CalcGrad() == true) by default.
func New() Graph {
	return Graph{s: &state{calcGrad: true}}
}

// newResult creates a graph produced by an algebra operation, recording
// its inputs and backward operator for the autograd driver.
func newResult(backward backwardOp, inputs ...Graph) Graph {
	return Graph{s: &state{
		calcGrad: true,
		inputs:   inputs,
		backward: backward,
	}}
}

// valid reports whether g references allocated state.
func (g Graph) valid() bool { return g.s != nil }

// AddNode appends a node and returns its index. If start is true the
// node is appended to the ordered start-node list; if accept is true it
// is appended to the ordered accept-node list.
func (g Graph) AddNode(start, accept bool) int {
	idx := len(g.s.nodes)
	g.s.nodes = append(g.s.nodes, node{start: start, accept: accept})
	if start {
		g.s.startNodes = append(g.s.startNodes, idx)
	}
	if accept {
		g.s.acceptNodes = append(g.s.acceptNodes, idx)
	}
	return idx
}

// MakeAccept flags node n as an accept node, appending it to the
// accept-node list. Idempotent: calling it twice on the same node does
// not duplicate the entry.
func (g Graph) MakeAccept(n int) {
	g.checkNode(n)
	if g.s.nodes[n].accept {
		return
	}
	g.s.nodes[n].accept = true
	g.s.acceptNodes = append(g.s.acceptNodes, n)
}

// AddArc appends an arc up->down with the given labels and weight and
// returns its index. Label 0 is Epsilon.
func (g Graph) AddArc(up, down, ilabel, olabel int, weight float64) int {
	g.checkNode(up)
	g.checkNode(down)
	idx := len(g.s.arcs)
	g.s.arcs = append(g.s.arcs, arc{up: up, down: down, ilabel: ilabel, olabel: olabel, weight: weight})
	g.s.nodes[up].out = append(g.s.nodes[up].out, idx)
	g.s.nodes[down].in = append(g.s.nodes[down].in, idx)
	return idx
}

// NumNodes returns the number of nodes in the graph.
func (g Graph) NumNodes() int { return len(g.s.nodes) }

// NumArcs returns the number of arcs in the graph.
func (g Graph) NumArcs() int { return len(g.s.arcs) }

func (g Graph) checkNode(n int) {
	if n < 0 || n >= len(g.s.nodes) {
		panic(fmt.Errorf("%w: node %d (have %d nodes)", ErrIndexOutOfRange, n, len(g.s.nodes)))
	}
}

func (g Graph) checkArc(a int) {
	if a < 0 || a >= len(g.s.arcs) {
		panic(fmt.Errorf("%w: arc %d (have %d arcs)", ErrIndexOutOfRange, a, len(g.s.arcs)))
	}
}

// Start reports whether node n is a start node.
func (g Graph) Start(n int) bool { g.checkNode(n); return g.s.nodes[n].start }

// Accept reports whether node n is an accept node.
func (g Graph) Accept(n int) bool { g.checkNode(n); return g.s.nodes[n].accept }

// StartNodes returns the start nodes in insertion order. The returned
// slice is a copy; mutating it does not affect the graph.
func (g Graph) StartNodes() []int { return append([]int(nil), g.s.startNodes...) }

// AcceptNodes returns the accept nodes in insertion order. The returned
// slice is a copy; mutating it does not affect the graph.
func (g Graph) AcceptNodes() []int { return append([]int(nil), g.s.acceptNodes...) }

// In returns the indices of arcs entering node n, in arc-insertion
// order. The returned slice is a copy.
func (g Graph) In(n int) []int { g.checkNode(n); return append([]int(nil), g.s.nodes[n].in...) }

// Out returns the indices of arcs leaving node n, in arc-insertion
// order. The returned slice is a copy.
func (g Graph) Out(n int) []int { g.checkNode(n); return append([]int(nil), g.s.nodes[n].out...) }

// NumIn returns the in-degree of node n.
func (g Graph) NumIn(n int) int { g.checkNode(n); return len(g.s.nodes[n].in) }

// NumOut returns the out-degree of node n.
func (g Graph) NumOut(n int) int { g.checkNode(n); return len(g.s.nodes[n].out) }

// UpNode returns the source node of arc a.
func (g Graph) UpNode(a int) int { g.checkArc(a); return g.s.arcs[a].up }

// DownNode returns the destination node of arc a.
func (g Graph) DownNode(a int) int { g.checkArc(a); return g.s.arcs[a].down }

// ILabel returns the input label of arc a.
func (g Graph) ILabel(a int) int { g.checkArc(a); return g.s.arcs[a].ilabel }

// OLabel returns the output label of arc a.
func (g Graph) OLabel(a int) int { g.checkArc(a); return g.s.arcs[a].olabel }

// Weight returns the weight of arc a.
func (g Graph) Weight(a int) float64 { g.checkArc(a); return g.s.arcs[a].weight }

// SetWeight overwrites the weight of arc a in place. It does not touch
// the gradient accumulator or any autograd linkage; optimizers use it
// to apply a computed update to a trainable graph's arc weights between
// training steps.
func (g Graph) SetWeight(a int, w float64) { g.checkArc(a); g.s.arcs[a].weight = w }

// IsItem reports whether g is an item graph: exactly two nodes
// (start=0, accept=1) and one arc (0->1, labels 0/0).
func (g Graph) IsItem() bool {
	if g.NumNodes() != 2 || g.NumArcs() != 1 {
		return false
	}
	a := g.s.arcs[0]
	return a.up == 0 && a.down == 1 && a.ilabel == Epsilon && a.olabel == Epsilon &&
		g.s.nodes[0].start && !g.s.nodes[0].accept && g.s.nodes[1].accept
}

// Item returns the scalar weight of an item graph.
func (g Graph) Item() (float64, error) {
	if !g.IsItem() {
		return 0, fmt.Errorf("%w: Item() requires a two-node, one-arc item graph", ErrInvalidOperation)
	}
	return g.s.arcs[0].weight, nil
}

// mustItem is the internal equivalent of Item used by constructors that
// the specification defines only over item graphs; failing this
// invariant is a programmer error in how the algebra was composed, so
// it panics rather than threading an error through every call site.
func mustItem(g Graph) float64 {
	v, err := g.Item()
	if err != nil {
		panic(err)
	}
	return v
}

// NewItem builds an item graph carrying the scalar weight w. Item
// graphs are the leaves of the scalar (add/subtract/negate) algebra.
func NewItem(w float64) Graph {
	g := New()
	g.AddNode(true, false)
	g.AddNode(false, true)
	g.AddArc(0, 1, Epsilon, Epsilon, w)
	return g
}

// CalcGrad reports whether backward should accumulate gradients into
// this graph.
func (g Graph) CalcGrad() bool { return g.s.calcGrad }

// SetCalcGrad sets whether backward should accumulate gradients into
// this graph. All handles sharing this graph's state observe the
// change.
func (g Graph) SetCalcGrad(v bool) { g.s.calcGrad = v }

// Grad returns the accumulated gradient graph and whether one has been
// recorded yet (addGrad initializes it lazily).
func (g Graph) Grad() (Graph, bool) {
	if g.s.grad == nil {
		return Graph{}, false
	}
	return Graph{s: g.s.grad}, true
}

// ZeroGrad clears the gradient accumulator, so the next AddGrad call
// re-initializes it from scratch. Used between optimizer steps.
func (g Graph) ZeroGrad() { g.s.grad = nil }

// AddGrad accumulates a gradient vector into g's gradient accumulator,
// one weight per arc of g, initializing the accumulator on first call
// and adding element-wise on subsequent calls.
func (g Graph) AddGrad(weights []float64) error {
	if len(weights) != g.NumArcs() {
		return fmt.Errorf("%w: got %d weights, graph has %d arcs", ErrShapeMismatch, len(weights), g.NumArcs())
	}
	if g.s.grad == nil {
		acc := cloneShape(g)
		g.s.grad = acc.s
		for i, w := range weights {
			g.s.grad.arcs[i].weight = w
		}
		return nil
	}
	for i, w := range weights {
		g.s.grad.arcs[i].weight += w
	}
	return nil
}

// AddGradFrom accumulates another graph's arc weights (typically a
// deltas graph of the same shape) into g's gradient accumulator.
func (g Graph) AddGradFrom(other Graph) error {
	weights := make([]float64, other.NumArcs())
	for i := range weights {
		weights[i] = other.s.arcs[i].weight
	}
	return g.AddGrad(weights)
}

// cloneShape copies g's nodes and arcs (including weights) into a fresh,
// autograd-free graph. Used to materialize a same-shape gradient
// accumulator.
func cloneShape(g Graph) Graph {
	out := New()
	for n := 0; n < g.NumNodes(); n++ {
		out.AddNode(g.s.nodes[n].start, g.s.nodes[n].accept)
	}
	for a := 0; a < g.NumArcs(); a++ {
		src := g.s.arcs[a]
		out.AddArc(src.up, src.down, src.ilabel, src.olabel, src.weight)
	}
	return out
}
