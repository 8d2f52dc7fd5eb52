package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wellFormed(types *TypeTable) *Function {
	intT := types.Intern("Int")
	pairT := types.Intern("Pair")

	b := NewBuilder(types, "ok")
	x := b.Param("x", intT)
	y := b.Param("y", intT)
	b.SetReturn(intT)
	b.Block("entry")
	tup := b.MakeTuple(pairT, x, y)
	ext := b.TupleExtract(intT, tup, 0)
	b.Ret(ext)
	return b.Func()
}

func TestVerifyAcceptsWellFormed(t *testing.T) {
	types := NewTypeTable()
	assert.NoError(t, Verify(wellFormed(types)))
}

func TestVerifyRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fn *Function)
		want   string
	}{
		{
			name:   "no blocks",
			mutate: func(fn *Function) { fn.Blocks = nil },
			want:   "no blocks",
		},
		{
			name:   "missing terminator",
			mutate: func(fn *Function) { fn.Blocks[0].Term = nil },
			want:   "no terminator",
		},
		{
			name: "value defined twice",
			mutate: func(fn *Function) {
				dup := fn.Blocks[0].Instrs[1].(*TupleExtract)
				dup.Result = fn.Params[0].ID
			},
			want: "defined twice",
		},
		{
			name: "use of an undefined value",
			mutate: func(fn *Function) {
				fn.Blocks[0].Instrs[0].(*MakeTuple).Elems[0] = 99
			},
			want: "undefined value",
		},
		{
			name: "branch to an undefined block",
			mutate: func(fn *Function) {
				fn.Blocks[0].Term = &Br{Target: 42}
			},
			want: "undefined block",
		},
		{
			name: "block defined twice",
			mutate: func(fn *Function) {
				fn.Blocks = append(fn.Blocks, &Block{ID: fn.Blocks[0].ID, Term: &Unreachable{}})
			},
			want: "defined twice",
		},
		{
			name: "duplicate switch tag",
			mutate: func(fn *Function) {
				id := fn.Blocks[0].ID
				fn.Blocks[0].Term = &SwitchTag{
					Subject: fn.Params[0].ID,
					Cases: []TagCase{
						{Tag: "a", Target: id},
						{Tag: "a", Target: id},
					},
				}
			},
			want: "twice",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fn := wellFormed(NewTypeTable())
			tc.mutate(fn)
			err := Verify(fn)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestVerifyModuleStopsAtFirstBadFunction(t *testing.T) {
	types := NewTypeTable()
	good := wellFormed(types)
	bad := wellFormed(types)
	bad.Name = "bad"
	bad.Blocks[0].Term = nil

	err := VerifyModule(&Module{Functions: []*Function{good, bad}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad:")
}
