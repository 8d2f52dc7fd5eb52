package rules

import "github.com/sablelang/sable/internal/ir"

// SimplifyAddrToPtr cancels a pointer/address round trip:
// addr_to_ptr(ptr_to_addr(x)) -> x, provided the outer result type matches
// the original pointer's type exactly.
func SimplifyAddrToPtr(idx *ir.Index, in *ir.AddrToPtr) (ir.ValueID, bool) {
	inner, ok := idx.Def(in.X).(*ir.PtrToAddr)
	if !ok {
		return ir.InvalidValue, false
	}
	if idx.TypeOf(inner.X) != in.Type {
		return ir.InvalidValue, false
	}
	return inner.X, true
}

// SimplifyPtrToAddr cancels the inverse round trip:
// ptr_to_addr(addr_to_ptr(x)) -> x, with the same exact-type condition.
func SimplifyPtrToAddr(idx *ir.Index, in *ir.PtrToAddr) (ir.ValueID, bool) {
	inner, ok := idx.Def(in.X).(*ir.AddrToPtr)
	if !ok {
		return ir.InvalidValue, false
	}
	if idx.TypeOf(inner.X) != in.Type {
		return ir.InvalidValue, false
	}
	return inner.X, true
}

// SimplifyRefToRawPtr cancels ref_to_raw_ptr(raw_ptr_to_ref(x)) -> x.
// No type check is needed: the pair is inverse by construction.
func SimplifyRefToRawPtr(idx *ir.Index, in *ir.RefToRawPtr) (ir.ValueID, bool) {
	inner, ok := idx.Def(in.X).(*ir.RawPtrToRef)
	if !ok {
		return ir.InvalidValue, false
	}
	return inner.X, true
}

// SimplifyOpaquePtrToRef cancels opaque_ptr_to_ref(ref_to_opaque_ptr(x)) -> x
// when the recovered reference type equals x's type.
func SimplifyOpaquePtrToRef(idx *ir.Index, in *ir.OpaquePtrToRef) (ir.ValueID, bool) {
	inner, ok := idx.Def(in.X).(*ir.RefToOpaquePtr)
	if !ok {
		return ir.InvalidValue, false
	}
	if idx.TypeOf(inner.X) != in.Type {
		return ir.InvalidValue, false
	}
	return inner.X, true
}
