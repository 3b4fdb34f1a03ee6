package graph

import "errors"

// Sentinel errors for the graph algebra. Call sites wrap these with
// context via fmt.Errorf("...: %w", Err...).
var (
	// ErrInvalidOperation is returned by Item, and used as the panic
	// value by Negate, Add and Subtract, when the graph is not an item
	// graph (see IsItem).
	ErrInvalidOperation = errors.New("invalid operation on non-item graph")

	// ErrShapeMismatch is returned when AddGrad is called with a gradient
	// vector whose length doesn't equal the graph's arc count.
	ErrShapeMismatch = errors.New("gradient shape does not match arc count")

	// ErrCycleDetected is returned by Forward when the input graph has a
	// cycle, a self-loop, a node its topological walk from the start
	// nodes never reaches, or no accept node reachable from a start.
	ErrCycleDetected = errors.New("graph has a cycle, self-loop or is disconnected")

	// ErrIndexOutOfRange is used, wrapped, as the panic value when a node
	// or arc index passed to an accessor is out of bounds.
	ErrIndexOutOfRange = errors.New("node or arc index out of range")
)
