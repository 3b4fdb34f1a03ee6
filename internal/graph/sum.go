package graph

// Sum returns the disjoint union of graphs: every node and arc is
// copied into a single result graph with node indices shifted by the
// running node count, and every start/accept flag is preserved. Scored
// under Forward, a Sum graph yields the logsumexp over all its inputs'
// path scores, since none of the inputs share a node.
func Sum(graphs []Graph) Graph {
	out := New()
	nodeOffset := make([]int, len(graphs))
	arcCount := make([]int, len(graphs))

	for gi, g := range graphs {
		nodeOffset[gi] = out.NumNodes()
		for n := 0; n < g.NumNodes(); n++ {
			out.AddNode(g.Start(n), g.Accept(n))
		}
	}
	for gi, g := range graphs {
		off := nodeOffset[gi]
		arcCount[gi] = g.NumArcs()
		for a := 0; a < g.NumArcs(); a++ {
			out.AddArc(g.UpNode(a)+off, g.DownNode(a)+off, g.ILabel(a), g.OLabel(a), g.Weight(a))
		}
	}

	out.s.inputs = append([]Graph(nil), graphs...)
	out.s.backward = sumBackward{arcCount: arcCount}
	return out
}

type sumBackward struct {
	arcCount []int
}

func (b sumBackward) backward(output Graph) []Graph {
	acc, ok := output.Grad()
	grads := make([]Graph, len(output.s.inputs))
	arcStart := 0
	for i, input := range output.s.inputs {
		g := cloneShape(input)
		if ok {
			for a := 0; a < b.arcCount[i]; a++ {
				g.s.arcs[a].weight = acc.Weight(arcStart + a)
			}
		} else {
			for a := range g.s.arcs {
				g.s.arcs[a].weight = 0
			}
		}
		grads[i] = g
		arcStart += b.arcCount[i]
	}
	return grads
}
