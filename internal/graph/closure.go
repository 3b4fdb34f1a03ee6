package graph

// Closure builds the Kleene closure of g: a fresh start/accept node 0,
// every original arc copied in order with its up/down shifted by one,
// then epsilon arcs from node 0 into every original start node and a
// direct epsilon arc from every original accept node to every original
// start node. The original nodes lose their start flags but keep their
// accept flags; node 0 is the sole start node of the result.
func Closure(g Graph) Graph {
	out := New()
	out.AddNode(true, true)
	for n := 0; n < g.NumNodes(); n++ {
		out.AddNode(false, g.Accept(n))
	}
	arcMap := make([]int, g.NumArcs())
	for a := 0; a < g.NumArcs(); a++ {
		arcMap[a] = out.AddArc(g.UpNode(a)+1, g.DownNode(a)+1, g.ILabel(a), g.OLabel(a), g.Weight(a))
	}
	starts := g.StartNodes()
	for _, s := range starts {
		out.AddArc(0, s+1, Epsilon, Epsilon, 0)
	}
	for _, a := range g.AcceptNodes() {
		for _, s := range starts {
			out.AddArc(a+1, s+1, Epsilon, Epsilon, 0)
		}
	}
	out.s.inputs = []Graph{g}
	out.s.backward = closureBackward{arcMap: arcMap}
	return out
}

type closureBackward struct {
	arcMap []int
}

func (b closureBackward) backward(output Graph) []Graph {
	acc, ok := output.Grad()
	input := output.s.inputs[0]
	grad := cloneShape(input)
	if ok {
		for srcArc, dstArc := range b.arcMap {
			grad.s.arcs[srcArc].weight = acc.Weight(dstArc)
		}
	} else {
		for i := range grad.s.arcs {
			grad.s.arcs[i].weight = 0
		}
	}
	return []Graph{grad}
}
