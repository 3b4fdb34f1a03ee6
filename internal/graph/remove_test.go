package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRemoveLabel_EpsilonChain builds 0 -eps-> 1 -'a'-> 2 -eps-> 3(accept).
// Node 1's only incoming arc is the matching epsilon from 0, so it is
// dropped; node 3's only incoming arc is the matching epsilon from 2,
// so it too is dropped. Only 0 and 2 survive: 0 gains a direct copy of
// the 'a' arc pulled across the leading epsilon, and 2 becomes an
// accept node because it can reach the (dropped) accept node 3 via a
// matching arc alone. The surviving arc's weight is dropped to 0.
func TestRemoveLabel_EpsilonChain(t *testing.T) {
	g := New()
	n0 := g.AddNode(true, false)
	n1 := g.AddNode(false, false)
	n2 := g.AddNode(false, false)
	n3 := g.AddNode(false, true)
	g.AddArc(n0, n1, Epsilon, Epsilon, 0)
	g.AddArc(n1, n2, 5, 5, 1.5)
	g.AddArc(n2, n3, Epsilon, Epsilon, 0)

	out := RemoveLabel(g, Epsilon)

	require.Equal(t, 2, out.NumNodes())
	require.Equal(t, 1, out.NumArcs())

	assert.True(t, out.Start(0))
	assert.False(t, out.Accept(0))
	assert.True(t, out.Accept(1))
	assert.Equal(t, 0, out.UpNode(0))
	assert.Equal(t, 1, out.DownNode(0))
	assert.Equal(t, 5, out.ILabel(0))
	assert.Equal(t, 5, out.OLabel(0))
	assert.Equal(t, 0.0, out.Weight(0))
}

// TestRemoveLabel_NoMatchingArcsPreservesTopology checks that when no
// arc matches the removed label, every node survives (each has a
// non-matching incoming arc or is a start node) and the arc topology
// and labels are unchanged; per the removal algorithm every surviving
// arc's weight is still reset to 0, since Remove does not attempt to
// preserve weights on any arc it re-emits.
func TestRemoveLabel_NoMatchingArcsPreservesTopology(t *testing.T) {
	g := buildLinear(1, 2)
	out := RemoveLabel(g, Epsilon)
	assert.Equal(t, g.NumNodes(), out.NumNodes())
	assert.Equal(t, g.NumArcs(), out.NumArcs())
	for a := 0; a < out.NumArcs(); a++ {
		assert.Equal(t, g.ILabel(a), out.ILabel(a))
		assert.Equal(t, g.OLabel(a), out.OLabel(a))
		assert.Equal(t, 0.0, out.Weight(a))
	}
}
