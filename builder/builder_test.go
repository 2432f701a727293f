package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfstep/builder"
)

func TestLesson_Shape(t *testing.T) {
	g := builder.Lesson()

	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.Equal(t, []string{"D", "E"}, g.Neighbors("B"))
	assert.Equal(t, []string{"E", "F"}, g.Neighbors("C"))
	assert.Nil(t, g.Neighbors("D"))
	assert.Nil(t, g.Neighbors("E"))
	assert.Nil(t, g.Neighbors("F"))
}

func TestLesson_Layout(t *testing.T) {
	g := builder.Lesson()

	// Three rows: A alone on top, B/C in the middle, D/E/F at the bottom.
	_, yA, ok := g.Position("A")
	require.True(t, ok)
	_, yB, _ := g.Position("B")
	_, yC, _ := g.Position("C")
	_, yD, _ := g.Position("D")
	assert.Less(t, yA, yB)
	assert.Equal(t, yB, yC)
	assert.Less(t, yB, yD)
}

func TestLesson_FreshInstancePerCall(t *testing.T) {
	assert.NotSame(t, builder.Lesson(), builder.Lesson())
}

func TestChain_Shape(t *testing.T) {
	g, err := builder.Chain(4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"N1"}, g.Neighbors("N0"))
	assert.Equal(t, []string{"N3"}, g.Neighbors("N2"))
	assert.Nil(t, g.Neighbors("N3"))
}

func TestChain_SingleNode(t *testing.T) {
	g, err := builder.Chain(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestChain_TooFew(t *testing.T) {
	_, err := builder.Chain(0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestCompleteBinaryTree_Shape(t *testing.T) {
	g, err := builder.CompleteBinaryTree(3)
	require.NoError(t, err)

	assert.Equal(t, 7, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, []string{"T-2", "T-3"}, g.Neighbors("T-1"))
	assert.Equal(t, []string{"T-4", "T-5"}, g.Neighbors("T-2"))

	// Leaves have no children.
	for i := 4; i <= 7; i++ {
		assert.Nil(t, g.Neighbors(fmt.Sprintf("T-%d", i)))
	}
}

func TestCompleteBinaryTree_TooFew(t *testing.T) {
	_, err := builder.CompleteBinaryTree(0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}
