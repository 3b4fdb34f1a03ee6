package graph

// Remove eliminates every arc whose (ilabel, olabel) pair matches the
// given labels, by contracting the chains of matching arcs: a node is
// kept iff it is a start node or at least one of its incoming arcs
// does not match (a node with no incoming arcs that isn't a start is
// dropped). From each kept node, a walk across matching arcs alone
// finds every node it can reach; the kept node becomes an accept node
// if any node in that reachable set is accept, and gains a direct
// (zero-weight) copy of every non-matching arc leaving the reachable
// set.
//
// The weight carried by a matching arc, and the weight of the
// surviving arc it is contracted across, are both discarded: a single
// node can reach a target through several matching-arc chains of
// different lengths, and there is no canonical way to attribute one
// weight to the resulting direct arc. Remove therefore carries no
// backward operator: it is not part of the differentiable algebra.
func Remove(g Graph, ilabel, olabel int) Graph {
	matches := func(a int) bool { return g.ILabel(a) == ilabel && g.OLabel(a) == olabel }
	return removeMatching(g, matches)
}

// RemoveLabel is Remove restricted to arcs where ilabel == olabel ==
// label; the common case of removing all epsilon arcs.
func RemoveLabel(g Graph, label int) Graph {
	return Remove(g, label, label)
}

func removeMatching(g Graph, matches func(a int) bool) Graph {
	n := g.NumNodes()

	keep := make([]bool, n)
	for i := 0; i < n; i++ {
		if g.Start(i) {
			keep[i] = true
			continue
		}
		for _, a := range g.In(i) {
			if !matches(a) {
				keep[i] = true
				break
			}
		}
	}

	out := New()
	newIndex := make([]int, n)
	for i := range newIndex {
		newIndex[i] = -1
	}
	for i := 0; i < n; i++ {
		if keep[i] {
			newIndex[i] = out.AddNode(g.Start(i), false)
		}
	}

	for i := 0; i < n; i++ {
		if !keep[i] {
			continue
		}
		visited := map[int]bool{i: true}
		queue := []int{i}
		accept := false
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			if g.Accept(v) {
				accept = true
			}
			for _, a := range g.Out(v) {
				if matches(a) {
					w := g.DownNode(a)
					if !visited[w] {
						visited[w] = true
						queue = append(queue, w)
					}
					continue
				}
				out.AddArc(newIndex[i], newIndex[g.DownNode(a)], g.ILabel(a), g.OLabel(a), 0)
			}
		}
		if accept {
			out.MakeAccept(newIndex[i])
		}
	}
	return out
}
