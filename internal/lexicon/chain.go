// Package lexicon builds linear acceptor graphs from label sequences
// and combines them into a lexicon graph, bridging the tokenizer
// package's label sequences into the graph algebra.
package lexicon

import "github.com/born-ml/gtn/internal/graph"

// Chain builds a linear acceptor graph over labels: len(labels)+1 nodes
// (node 0 the sole start node, the last node the sole accept node) and
// one arc per label, each carrying the label on both the input and
// output side and an initial weight of 0. An empty labels slice yields
// a single node that is both start and accept, accepting the empty
// path with score 0.
func Chain(labels []int32) graph.Graph {
	g := graph.New()
	n := g.AddNode(true, len(labels) == 0)
	for i, label := range labels {
		accept := i == len(labels)-1
		next := g.AddNode(false, accept)
		g.AddArc(n, next, int(label), int(label), 0)
		n = next
	}
	return g
}
