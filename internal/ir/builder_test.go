package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAllocatesSequentially(t *testing.T) {
	types := NewTypeTable()
	intT := types.Intern("Int")

	b := NewBuilder(types, "f")
	x := b.Param("x", intT)
	b.Block("entry")
	lit := b.IntLit(intT, 64, 7)
	sum := b.BinOp("add", intT, x, lit)
	b.Ret(sum)

	assert.Equal(t, ValueID(1), x)
	assert.Equal(t, ValueID(2), lit)
	assert.Equal(t, ValueID(3), sum)

	fn := b.Func()
	require.Len(t, fn.Blocks, 1)
	assert.Equal(t, "f", fn.Name)
	require.NoError(t, Verify(fn))
}

func TestBuilderPanics(t *testing.T) {
	types := NewTypeTable()
	intT := types.Intern("Int")

	assert.PanicsWithValue(t, "ir: emit outside a block", func() {
		NewBuilder(types, "f").IntLit(intT, 64, 0)
	})

	assert.PanicsWithValue(t, "ir: emit after terminator", func() {
		b := NewBuilder(types, "f")
		b.Block("entry")
		b.RetVoid()
		b.IntLit(intT, 64, 0)
	})

	assert.PanicsWithValue(t, "ir: block already terminated", func() {
		b := NewBuilder(types, "f")
		b.Block("entry")
		b.RetVoid()
		b.RetVoid()
	})

	assert.PanicsWithValue(t, "ir: SetBlock on unknown block", func() {
		NewBuilder(types, "f").SetBlock(9)
	})
}
