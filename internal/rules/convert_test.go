package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sablelang/sable/internal/ir"
)

func TestSimplifyAddrToPtrRoundTrip(t *testing.T) {
	types := ir.NewTypeTable()
	ptrT := types.Intern("RawPtr")
	addrT := types.Intern("AddrInt")

	b := ir.NewBuilder(types, "f")
	p := b.Param("p", ptrT)
	b.Block("entry")
	addr := b.PtrToAddr(addrT, p)
	back := b.AddrToPtr(ptrT, addr)
	b.Ret(back)

	idx := ir.BuildIndex(b.Func())
	in := idx.Def(back).(*ir.AddrToPtr)

	got, ok := SimplifyAddrToPtr(idx, in)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestSimplifyAddrToPtrTypeMismatch(t *testing.T) {
	types := ir.NewTypeTable()
	ptrT := types.Intern("RawPtr")
	otherT := types.Intern("OtherPtr")
	addrT := types.Intern("AddrInt")

	// converting back to a different pointer type is not a round trip
	b := ir.NewBuilder(types, "f")
	p := b.Param("p", ptrT)
	b.Block("entry")
	addr := b.PtrToAddr(addrT, p)
	back := b.AddrToPtr(otherT, addr)
	b.Ret(back)

	idx := ir.BuildIndex(b.Func())
	in := idx.Def(back).(*ir.AddrToPtr)

	_, ok := SimplifyAddrToPtr(idx, in)
	assert.False(t, ok)
}

func TestSimplifyPtrToAddrRoundTrip(t *testing.T) {
	types := ir.NewTypeTable()
	ptrT := types.Intern("RawPtr")
	addrT := types.Intern("AddrInt")

	b := ir.NewBuilder(types, "f")
	a := b.Param("a", addrT)
	b.Block("entry")
	ptr := b.AddrToPtr(ptrT, a)
	back := b.PtrToAddr(addrT, ptr)
	b.Ret(back)

	idx := ir.BuildIndex(b.Func())
	in := idx.Def(back).(*ir.PtrToAddr)

	got, ok := SimplifyPtrToAddr(idx, in)
	require.True(t, ok)
	assert.Equal(t, a, got)
}

func TestSimplifyPtrToAddrTypeMismatch(t *testing.T) {
	types := ir.NewTypeTable()
	ptrT := types.Intern("RawPtr")
	addrT := types.Intern("AddrInt")
	otherT := types.Intern("AddrBool")

	b := ir.NewBuilder(types, "f")
	a := b.Param("a", addrT)
	b.Block("entry")
	ptr := b.AddrToPtr(ptrT, a)
	back := b.PtrToAddr(otherT, ptr)
	b.Ret(back)

	idx := ir.BuildIndex(b.Func())
	in := idx.Def(back).(*ir.PtrToAddr)

	_, ok := SimplifyPtrToAddr(idx, in)
	assert.False(t, ok)
}

func TestSimplifyRefToRawPtrRoundTrip(t *testing.T) {
	types := ir.NewTypeTable()
	rawT := types.Intern("RawPtr")
	refT := types.Intern("RefNode")

	b := ir.NewBuilder(types, "f")
	p := b.Param("p", rawT)
	b.Block("entry")
	ref := b.RawPtrToRef(refT, p)
	back := b.RefToRawPtr(rawT, ref)
	b.Ret(back)

	idx := ir.BuildIndex(b.Func())
	in := idx.Def(back).(*ir.RefToRawPtr)

	got, ok := SimplifyRefToRawPtr(idx, in)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestSimplifyRefToRawPtrOpaqueSource(t *testing.T) {
	types := ir.NewTypeTable()
	rawT := types.Intern("RawPtr")
	refT := types.Intern("RefNode")

	b := ir.NewBuilder(types, "f")
	r := b.Param("r", refT)
	b.Block("entry")
	back := b.RefToRawPtr(rawT, r)
	b.Ret(back)

	idx := ir.BuildIndex(b.Func())
	in := idx.Def(back).(*ir.RefToRawPtr)

	_, ok := SimplifyRefToRawPtr(idx, in)
	assert.False(t, ok)
}

func TestSimplifyOpaquePtrToRefRoundTrip(t *testing.T) {
	types := ir.NewTypeTable()
	refT := types.Intern("RefNode")
	opaqueT := types.Intern("OpaquePtr")

	b := ir.NewBuilder(types, "f")
	r := b.Param("r", refT)
	b.Block("entry")
	op := b.RefToOpaquePtr(opaqueT, r)
	back := b.OpaquePtrToRef(refT, op)
	b.Ret(back)

	idx := ir.BuildIndex(b.Func())
	in := idx.Def(back).(*ir.OpaquePtrToRef)

	got, ok := SimplifyOpaquePtrToRef(idx, in)
	require.True(t, ok)
	assert.Equal(t, r, got)
}

func TestSimplifyOpaquePtrToRefTypeMismatch(t *testing.T) {
	types := ir.NewTypeTable()
	refT := types.Intern("RefNode")
	otherT := types.Intern("RefLeaf")
	opaqueT := types.Intern("OpaquePtr")

	b := ir.NewBuilder(types, "f")
	r := b.Param("r", refT)
	b.Block("entry")
	op := b.RefToOpaquePtr(opaqueT, r)
	back := b.OpaquePtrToRef(otherT, op)
	b.Ret(back)

	idx := ir.BuildIndex(b.Func())
	in := idx.Def(back).(*ir.OpaquePtrToRef)

	_, ok := SimplifyOpaquePtrToRef(idx, in)
	assert.False(t, ok)
}
