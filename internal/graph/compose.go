package graph

// Compose builds the intersection of two graphs: a acts on the input
// side, b on the output side, and every path through the result pairs
// a path through a with a path through b whose labels line up (a's
// output label matches b's input label, including epsilon:epsilon).
//
// Composition runs in two passes. Pass one walks backward from every
// accept pair to find every node pair that can reach an accept pair
// (findReachable), so pass two never builds a dead-end state. Pass two
// walks forward from the start pairs, following matched label
// transitions plus unpaired epsilon moves on either side. Both passes
// skip the unpaired epsilon moves at a pair that already has a matched
// epsilon:epsilon transition (epsilonMatched: out of the pair in pass
// two, into it in pass one) to avoid counting the same net transition
// through two different paths.
func Compose(a, b Graph) Graph {
	reachable := findReachable(a, b)

	out := New()
	newNode := make(map[[2]int]int)

	type pair struct{ i, j int }
	queue := []pair{}

	for _, s1 := range a.StartNodes() {
		for _, s2 := range b.StartNodes() {
			key := [2]int{s1, s2}
			if !reachable[key] {
				continue
			}
			if _, ok := newNode[key]; ok {
				continue
			}
			newNode[key] = out.AddNode(true, a.Accept(s1) && b.Accept(s2))
			queue = append(queue, pair{s1, s2})
		}
	}

	var gradInfo []arcProvenance

	ensureNode := func(n1, n2 int) (int, bool) {
		key := [2]int{n1, n2}
		if !reachable[key] {
			return 0, false
		}
		if idx, ok := newNode[key]; ok {
			return idx, true
		}
		idx := out.AddNode(a.Start(n1) && b.Start(n2), a.Accept(n1) && b.Accept(n2))
		newNode[key] = idx
		queue = append(queue, pair{n1, n2})
		return idx, true
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		currNode := newNode[[2]int{curr.i, curr.j}]

		epsilonMatched := false
		for _, ap := range a.Out(curr.i) {
			for _, bp := range b.Out(curr.j) {
				if a.OLabel(ap) != b.ILabel(bp) {
					continue
				}
				if a.OLabel(ap) == Epsilon {
					epsilonMatched = true
				}
				dn1, dn2 := a.DownNode(ap), b.DownNode(bp)
				idx, ok := ensureNode(dn1, dn2)
				if !ok {
					continue
				}
				w := a.Weight(ap) + b.Weight(bp)
				out.AddArc(currNode, idx, a.ILabel(ap), b.OLabel(bp), w)
				gradInfo = append(gradInfo, arcProvenance{ap, bp})
			}
		}
		if epsilonMatched {
			continue
		}
		for _, ap := range a.Out(curr.i) {
			if a.OLabel(ap) != Epsilon {
				continue
			}
			dn1, dn2 := a.DownNode(ap), curr.j
			idx, ok := ensureNode(dn1, dn2)
			if !ok {
				continue
			}
			out.AddArc(currNode, idx, a.ILabel(ap), Epsilon, a.Weight(ap))
			gradInfo = append(gradInfo, arcProvenance{ap, -1})
		}
		for _, bp := range b.Out(curr.j) {
			if b.ILabel(bp) != Epsilon {
				continue
			}
			dn1, dn2 := curr.i, b.DownNode(bp)
			idx, ok := ensureNode(dn1, dn2)
			if !ok {
				continue
			}
			out.AddArc(currNode, idx, Epsilon, b.OLabel(bp), b.Weight(bp))
			gradInfo = append(gradInfo, arcProvenance{-1, bp})
		}
	}

	out.s.inputs = []Graph{a, b}
	out.s.backward = composeBackward{gradInfo: gradInfo, aArcs: a.NumArcs(), bArcs: b.NumArcs()}
	return out
}

// findReachable computes, for every node-pair (i, j) of a and b, whether
// that pair can reach some accept pair through the composed
// transition system - matched label moves, or unpaired epsilon moves
// on either side when the pair wasn't already reached by a matched
// epsilon:epsilon move.
func findReachable(a, b Graph) map[[2]int]bool {
	reachable := make(map[[2]int]bool)
	type pair struct{ i, j int }
	var queue []pair

	for _, f := range a.AcceptNodes() {
		for _, s := range b.AcceptNodes() {
			key := [2]int{f, s}
			if !reachable[key] {
				reachable[key] = true
				queue = append(queue, pair{f, s})
			}
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		epsilonMatched := false
		for _, ap := range a.In(curr.i) {
			for _, bp := range b.In(curr.j) {
				if a.OLabel(ap) != b.ILabel(bp) {
					continue
				}
				if a.OLabel(ap) == Epsilon {
					epsilonMatched = true
				}
				un1, un2 := a.UpNode(ap), b.UpNode(bp)
				key := [2]int{un1, un2}
				if !reachable[key] {
					reachable[key] = true
					queue = append(queue, pair{un1, un2})
				}
			}
		}
		if !epsilonMatched {
			for _, ap := range a.In(curr.i) {
				if a.OLabel(ap) != Epsilon {
					continue
				}
				un1 := a.UpNode(ap)
				key := [2]int{un1, curr.j}
				if !reachable[key] {
					reachable[key] = true
					queue = append(queue, pair{un1, curr.j})
				}
			}
			for _, bp := range b.In(curr.j) {
				if b.ILabel(bp) != Epsilon {
					continue
				}
				un2 := b.UpNode(bp)
				key := [2]int{curr.i, un2}
				if !reachable[key] {
					reachable[key] = true
					queue = append(queue, pair{curr.i, un2})
				}
			}
		}
	}
	return reachable
}

type arcProvenance struct{ i, j int }

type composeBackward struct {
	gradInfo     []arcProvenance
	aArcs, bArcs int
}

func (b composeBackward) backward(output Graph) []Graph {
	a1, a2 := output.s.inputs[0], output.s.inputs[1]
	acc, ok := output.Grad()

	var g1, g2 Graph
	if a1.CalcGrad() {
		g1 = cloneShape(a1)
		for i := range g1.s.arcs {
			g1.s.arcs[i].weight = 0
		}
	}
	if a2.CalcGrad() {
		g2 = cloneShape(a2)
		for i := range g2.s.arcs {
			g2.s.arcs[i].weight = 0
		}
	}
	if ok {
		for arcIdx, prov := range b.gradInfo {
			delta := acc.Weight(arcIdx)
			if a1.CalcGrad() && prov.i >= 0 {
				g1.s.arcs[prov.i].weight += delta
			}
			if a2.CalcGrad() && prov.j >= 0 {
				g2.s.arcs[prov.j].weight += delta
			}
		}
	}

	grads := make([]Graph, 2)
	if a1.CalcGrad() {
		grads[0] = g1
	}
	if a2.CalcGrad() {
		grads[1] = g2
	}
	return grads
}
