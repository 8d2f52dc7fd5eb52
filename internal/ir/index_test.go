package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	types := NewTypeTable()
	intT := types.Intern("Int")
	pairT := types.Intern("Pair")

	b := NewBuilder(types, "f")
	x := b.Param("x", intT)
	y := b.Param("y", intT)
	cond := b.Param("c", types.Intern("i1"))
	join := b.Block("join")
	left := b.Block("left")
	right := b.Block("right")
	entry := b.Block("entry")
	b.CondBr(cond, left, right)
	b.SetBlock(left)
	tup := b.MakeTuple(pairT, x, y)
	b.Br(join)
	b.SetBlock(right)
	b.Br(join)
	b.SetBlock(join)
	b.RetVoid()

	idx := BuildIndex(b.Func())

	assert.Same(t, b.Func(), idx.Func())

	// defs cover instructions, not parameters
	assert.IsType(t, &MakeTuple{}, idx.Def(tup))
	assert.Nil(t, idx.Def(x))
	assert.Nil(t, idx.Def(12345))

	assert.Equal(t, intT, idx.TypeOf(x))
	assert.Equal(t, pairT, idx.TypeOf(tup))
	assert.Equal(t, NoType, idx.TypeOf(12345))

	assert.Equal(t, left, idx.BlockOf(tup))

	// join has two predecessors, the branch arms one each
	assert.ElementsMatch(t, []BlockID{left, right}, idx.Preds(join))
	_, ok := idx.SinglePred(join)
	assert.False(t, ok)

	pred, ok := idx.SinglePred(left)
	require.True(t, ok)
	assert.Equal(t, entry, pred)

	_, ok = idx.SinglePred(entry)
	assert.False(t, ok)
}

func TestIndexTermPanicsOnMissingBlock(t *testing.T) {
	types := NewTypeTable()
	b := NewBuilder(types, "f")
	b.Block("entry")
	b.RetVoid()

	idx := BuildIndex(b.Func())
	assert.Panics(t, func() { idx.Term(99) })
}
