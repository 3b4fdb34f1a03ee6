package graph

// backwardOp is implemented by one struct per algebraic operation,
// each carrying exactly the saved state its gradient rule needs. This
// avoids a single heterogeneous closure type in favor of a tagged
// variant per operator, mirroring how the rest of the algebra keeps one
// concrete type per construction.
type backwardOp interface {
	// backward computes the gradient to route to each input graph given
	// the gradient accumulated on the operation's output graph. The
	// returned slice has one entry per input graph, in the same order
	// as the inputs recorded on the output's state.
	backward(output Graph) []Graph
}

// Backward runs the reverse-mode autograd driver seeded at output. If
// output has no gradient accumulated on it yet, it is seeded with a
// vector of ones (for an item graph, this is the scalar seed 1.0 of
// S1-S4). It visits the autograd DAG rooted at output in reverse
// topological order - a node's backward operator fires only once every
// graph that consumes it has already routed its gradient in - and
// accumulates the routed gradients via AddGrad on every graph with
// CalcGrad() true.
func Backward(output Graph) error {
	// Phase 1: discover every state reachable from output by walking
	// backward through recorded inputs, and count how many times each
	// state is consumed (duplicate edges, e.g. add(x, x), count twice).
	remaining := map[*state]int{}
	discovered := map[*state]bool{}

	var discover func(g Graph)
	discover = func(g Graph) {
		if discovered[g.s] {
			return
		}
		discovered[g.s] = true
		for _, in := range g.s.inputs {
			remaining[in.s]++
			discover(in)
		}
	}
	discover(output)

	// Phase 2: seed the root's gradient accumulator if it isn't already
	// set, then process states in an order where a state is only
	// processed once all of its consumers have already routed gradient
	// into it (i.e. once remaining[state] has been decremented to zero
	// by every consumer that discovered it).
	if _, ok := output.Grad(); !ok {
		ones := make([]float64, output.NumArcs())
		for i := range ones {
			ones[i] = 1
		}
		if err := output.AddGrad(ones); err != nil {
			return err
		}
	}

	ready := []Graph{output}
	processed := map[*state]bool{}

	for len(ready) > 0 {
		g := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		if processed[g.s] {
			continue
		}
		processed[g.s] = true

		if g.s.backward == nil {
			continue
		}
		grads := g.s.backward.backward(g)
		for i, in := range g.s.inputs {
			if i < len(grads) && grads[i].valid() && in.CalcGrad() {
				if err := in.AddGradFrom(grads[i]); err != nil {
					return err
				}
			}
			remaining[in.s]--
			if remaining[in.s] == 0 {
				ready = append(ready, in)
			}
		}
	}

	return nil
}
