// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gtn provides the public API for building and differentiating
// weighted finite-state transducers.
//
// The package defines the core graph type and the algebra over it:
//   - Graph: a weighted, directed multigraph with an autograd record
//   - Item graphs: two-node, one-arc graphs carrying a scalar, used by
//     the scalar algebra (Negate, Add, Subtract)
//   - The transducer algebra: Clone, Closure, Sum, Remove, Compose
//   - Forward: log-semiring path scoring
//   - Backward: reverse-mode gradient accumulation
//
// Example:
//
//	a := gtn.NewItem(1.0)
//	b := gtn.NewItem(2.0)
//	c := gtn.Add(a, b)
//	gtn.Backward(c)
//	grad, _ := a.Grad()
package gtn

import "github.com/born-ml/gtn/internal/graph"

// Epsilon is the reserved label denoting "no symbol consumed/emitted".
const Epsilon = graph.Epsilon

// Graph is a handle onto a weighted directed multigraph and its
// autograd record.
type Graph = graph.Graph

// Projection selects which label Clone copies when projecting a graph
// onto a single label stream.
type Projection = graph.Projection

// Projection values for Clone.
const (
	ProjectionNone   = graph.ProjectionNone
	ProjectionInput  = graph.ProjectionInput
	ProjectionOutput = graph.ProjectionOutput
)

// New creates an empty graph with no nodes or arcs.
func New() Graph { return graph.New() }

// NewItem builds an item graph carrying the scalar weight w.
func NewItem(w float64) Graph { return graph.NewItem(w) }

// Negate returns an item graph carrying -g's weight.
func Negate(g Graph) Graph { return graph.Negate(g) }

// Add returns an item graph carrying a's weight plus b's weight.
func Add(a, b Graph) Graph { return graph.Add(a, b) }

// Subtract returns an item graph carrying a's weight minus b's weight.
func Subtract(a, b Graph) Graph { return graph.Subtract(a, b) }

// Clone builds a structurally identical copy of g, optionally
// projecting one label stream onto the other.
func Clone(g Graph, proj Projection) Graph { return graph.Clone(g, proj) }

// ProjectInput clones g with both labels set to the input label.
func ProjectInput(g Graph) Graph { return graph.ProjectInput(g) }

// ProjectOutput clones g with both labels set to the output label.
func ProjectOutput(g Graph) Graph { return graph.ProjectOutput(g) }

// Closure builds the Kleene closure of g.
func Closure(g Graph) Graph { return graph.Closure(g) }

// Sum returns the disjoint union of graphs.
func Sum(graphs []Graph) Graph { return graph.Sum(graphs) }

// Remove eliminates every arc whose (ilabel, olabel) pair matches the
// given labels, contracting the chains of matching arcs.
func Remove(g Graph, ilabel, olabel int) Graph { return graph.Remove(g, ilabel, olabel) }

// RemoveLabel removes every arc where ilabel == olabel == label; the
// common case of removing all epsilon arcs.
func RemoveLabel(g Graph, label int) Graph { return graph.RemoveLabel(g, label) }

// Compose builds the intersection of two graphs under label matching.
func Compose(a, b Graph) Graph { return graph.Compose(a, b) }

// Forward scores g under the log semiring, returning an item graph
// carrying the logsumexp of every start-to-accept path's weight.
func Forward(g Graph) (Graph, error) { return graph.Forward(g) }

// Backward runs the reverse-mode autograd driver seeded at output,
// accumulating gradients into every graph with CalcGrad() true that
// output was built from.
func Backward(output Graph) error { return graph.Backward(output) }
