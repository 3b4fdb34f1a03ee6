package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompose_SingleArc composes two single-arc acceptors: a maps 1->2
// with weight 0.5, b maps 2->3 with weight 0.25. The only matched path
// produces one arc labeled (1, 3) with weight 0.75; seeding its gradient
// with 1.0 routes 1.0 back to both a's and b's arc.
func TestCompose_SingleArc(t *testing.T) {
	a := New()
	a0 := a.AddNode(true, false)
	a1 := a.AddNode(false, true)
	a.AddArc(a0, a1, 1, 2, 0.5)

	b := New()
	b0 := b.AddNode(true, false)
	b1 := b.AddNode(false, true)
	b.AddArc(b0, b1, 2, 3, 0.25)

	c := Compose(a, b)

	require.Equal(t, 1, c.NumArcs())
	assert.Equal(t, 1, c.ILabel(0))
	assert.Equal(t, 3, c.OLabel(0))
	assert.InDelta(t, 0.75, c.Weight(0), 1e-9)

	require.NoError(t, c.AddGrad([]float64{1.0}))
	require.NoError(t, Backward(c))

	ga, ok := a.Grad()
	require.True(t, ok)
	assert.Equal(t, 1.0, ga.Weight(0))

	gb, ok := b.Grad()
	require.True(t, ok)
	assert.Equal(t, 1.0, gb.Weight(0))
}

// TestCompose_UnmatchedLabelsProduceEmptyResult checks that composing
// two acceptors whose labels never align yields no arcs and no reachable
// accept pair.
func TestCompose_UnmatchedLabelsProduceEmptyResult(t *testing.T) {
	a := buildLinear(1)
	b := buildLinear(9)

	c := Compose(a, b)
	assert.Equal(t, 0, c.NumArcs())
}

// TestCompose_EpsilonDetourPreservesMatchedPath builds a with an epsilon
// detour (0 -eps-> 1 -'a'-> 2) composed against b with a single 'a' arc.
// An unpaired epsilon move on a's side advances a alone, then the 'a'
// arcs match and advance both sides together, so the result has one
// epsilon arc followed by one matched arc on the only path to accept.
func TestCompose_EpsilonDetourPreservesMatchedPath(t *testing.T) {
	a := New()
	a0 := a.AddNode(true, false)
	a1 := a.AddNode(false, false)
	a2 := a.AddNode(false, true)
	a.AddArc(a0, a1, Epsilon, Epsilon, 0.1)
	a.AddArc(a1, a2, 7, 7, 0.2)

	b := buildLinear(7)

	c := Compose(a, b)
	require.Equal(t, 2, c.NumArcs())
	require.Equal(t, 3, c.NumNodes())

	var epsArc, matchArc = -1, -1
	for i := 0; i < c.NumArcs(); i++ {
		if c.ILabel(i) == Epsilon {
			epsArc = i
		} else {
			matchArc = i
		}
	}
	require.NotEqual(t, -1, epsArc)
	require.NotEqual(t, -1, matchArc)
	assert.InDelta(t, 0.1, c.Weight(epsArc), 1e-9)
	assert.Equal(t, 7, c.ILabel(matchArc))
	assert.Equal(t, 7, c.OLabel(matchArc))
	assert.InDelta(t, 7.2, c.Weight(matchArc), 1e-9)
	assert.Equal(t, c.DownNode(epsArc), c.UpNode(matchArc))
	assert.True(t, c.Accept(c.DownNode(matchArc)))
}
