package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackward_Negate(t *testing.T) {
	x := NewItem(3)
	y := Negate(x)

	require.NoError(t, Backward(y))
	grad, ok := x.Grad()
	require.True(t, ok)
	assert.Equal(t, -1.0, grad.Weight(0))
}

func TestBackward_Add(t *testing.T) {
	a := NewItem(1)
	b := NewItem(2)
	c := Add(a, b)

	require.NoError(t, Backward(c))
	ga, _ := a.Grad()
	gb, _ := b.Grad()
	assert.Equal(t, 1.0, ga.Weight(0))
	assert.Equal(t, 1.0, gb.Weight(0))
}

func TestBackward_Subtract(t *testing.T) {
	a := NewItem(5)
	b := NewItem(2)
	c := Subtract(a, b)

	require.NoError(t, Backward(c))
	ga, _ := a.Grad()
	gb, _ := b.Grad()
	assert.Equal(t, 1.0, ga.Weight(0))
	assert.Equal(t, -1.0, gb.Weight(0))
}

// TestBackward_SharedInputVisitedOnce checks that a value used twice in
// the same expression accumulates the gradient contribution from both
// uses, and that the shared node is only processed once it has
// received both.
func TestBackward_SharedInputVisitedOnce(t *testing.T) {
	x := NewItem(4)
	y := Add(x, x)

	require.NoError(t, Backward(y))
	grad, ok := x.Grad()
	require.True(t, ok)
	assert.Equal(t, 2.0, grad.Weight(0))
}

func TestBackward_CalcGradFalseSkipsAccumulation(t *testing.T) {
	x := NewItem(4)
	x.SetCalcGrad(false)
	y := Negate(x)

	require.NoError(t, Backward(y))
	_, ok := x.Grad()
	assert.False(t, ok)
}

func TestBackward_DeepChain(t *testing.T) {
	a := NewItem(1)
	b := NewItem(2)
	c := Add(a, b)       // 3
	d := Negate(c)       // -3
	e := Subtract(d, a) // -4

	require.NoError(t, Backward(e))
	ga, _ := a.Grad()
	gb, _ := b.Grad()
	// e = -(a+b) - a = -2a - b; de/da = -2, de/db = -1
	assert.Equal(t, -2.0, ga.Weight(0))
	assert.Equal(t, -1.0, gb.Weight(0))
}
