package rules

import "github.com/sablelang/sable/internal/ir"

// SimplifyCheckedCast proves a downcast safe when it exactly inverts a
// prior upcast:
//
//	%u = upcast %x : T1 -> T2
//	%d = downcast %u : T2 -> T1   ->  %x
//
// Both type equalities are required: the downcast must consume the upcast's
// result type and produce the upcast's original operand type. Anything else
// is a genuine narrowing and stays.
func SimplifyCheckedCast(idx *ir.Index, in *ir.CheckedCast) (ir.ValueID, bool) {
	if in.Kind != ir.Downcast {
		return ir.InvalidValue, false
	}
	up, ok := idx.Def(in.X).(*ir.CheckedCast)
	if !ok || up.Kind != ir.Upcast {
		return ir.InvalidValue, false
	}
	if idx.TypeOf(in.X) != up.Type {
		return ir.InvalidValue, false
	}
	if in.Type != idx.TypeOf(up.X) {
		return ir.InvalidValue, false
	}
	return up.X, true
}
