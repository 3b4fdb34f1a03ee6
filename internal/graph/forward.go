package graph

import "math"

// logadd computes log(exp(a) + exp(b)) in a numerically stable way,
// treating negative infinity as the additive identity.
func logadd(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	hi, lo := a, b
	if lo > hi {
		hi, lo = lo, hi
	}
	return hi + math.Log1p(math.Exp(lo-hi))
}

// Forward scores g under the log semiring: the returned item graph
// carries the logsumexp of every start-to-accept path's weight, where a
// path's weight is the sum of its arcs' weights. Forward returns
// ErrCycleDetected if g has a cycle or self-loop, if any node is never
// reached by the topological walk from the start nodes (including a
// non-start node with no incoming arcs, even one that is not on any
// accept path), or if g has no accept node reachable from a start.
func Forward(g Graph) (Graph, error) {
	n := g.NumNodes()
	indegree := make([]int, n)
	for a := 0; a < g.NumArcs(); a++ {
		if g.UpNode(a) == g.DownNode(a) {
			return Graph{}, ErrCycleDetected
		}
		indegree[g.DownNode(a)]++
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = math.Inf(-1)
	}
	for _, s := range g.StartNodes() {
		scores[s] = 0
	}
	queue := make([]int, 0, n)
	for _, s := range g.StartNodes() {
		if indegree[s] == 0 {
			queue = append(queue, s)
		}
	}
	remaining := append([]int(nil), indegree...)

	visited := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visited++
		for _, a := range g.Out(node) {
			down := g.DownNode(a)
			scores[down] = logadd(scores[down], scores[node]+g.Weight(a))
			remaining[down]--
			if remaining[down] == 0 {
				queue = append(queue, down)
			}
		}
	}
	if visited != n {
		return Graph{}, ErrCycleDetected
	}

	output := math.Inf(-1)
	for _, acc := range g.AcceptNodes() {
		if scores[acc] == math.Inf(-1) {
			return Graph{}, ErrCycleDetected
		}
		output = logadd(output, scores[acc])
	}
	if math.IsInf(output, -1) {
		return Graph{}, ErrCycleDetected
	}

	out := NewItem(output)
	out.s.inputs = []Graph{g}
	out.s.backward = forwardBackward{scores: scores, output: output}
	return out, nil
}

type forwardBackward struct {
	scores []float64
	output float64
}

// backward routes gradient through the log-semiring forward score by
// walking the input graph in reverse topological order: each accept
// node starts with d * exp(score - output); each arc into a node gets
// that node's gradient times exp(scoreUp + arcWeight - scoreDown) - the
// arc's share of the node's score under the log semiring - and that
// arc gradient is added to the gradient of the arc's source node.
func (fb forwardBackward) backward(output Graph) []Graph {
	input := output.s.inputs[0]
	d := mustItem(gradOrZero(output))

	n := input.NumNodes()
	nodeGrad := make([]float64, n)
	for _, acc := range input.AcceptNodes() {
		nodeGrad[acc] += d * math.Exp(fb.scores[acc]-fb.output)
	}

	remaining := make([]int, n)
	for a := 0; a < input.NumArcs(); a++ {
		remaining[input.UpNode(a)]++
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if remaining[i] == 0 {
			queue = append(queue, i)
		}
	}

	arcGrad := make([]float64, input.NumArcs())
	processed := make([]bool, n)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if processed[node] {
			continue
		}
		processed[node] = true
		for _, a := range input.In(node) {
			up := input.UpNode(a)
			w := math.Exp(fb.scores[up] + input.Weight(a) - fb.scores[node])
			g := w * nodeGrad[node]
			arcGrad[a] = g
			nodeGrad[up] += g
			remaining[up]--
			if remaining[up] == 0 {
				queue = append(queue, up)
			}
		}
	}

	grad := cloneShape(input)
	for a := range grad.s.arcs {
		grad.s.arcs[a].weight = arcGrad[a]
	}
	return []Graph{grad}
}
