// Package graph implements a differentiable weighted finite-state
// transducer algebra: graph construction, the algebraic operators
// (negate, add, subtract, clone, closure, sum, remove, compose,
// forward), and a reverse-mode automatic differentiation driver over
// the DAG of operations that produced a graph.
//
// A Graph is a value-like handle onto shared state. Copying a Graph
// does not copy its nodes and arcs; every handle referencing the same
// state observes the same nodes, arcs, and gradient accumulator.
package graph
