package rules

import "github.com/sablelang/sable/internal/ir"

// SimplifyTupleExtract folds an extract out of a visible tuple constructor.
// Example: tuple_extract(make_tuple(a, b, c), 1) -> b
func SimplifyTupleExtract(idx *ir.Index, in *ir.TupleExtract) (ir.ValueID, bool) {
	tuple, ok := idx.Def(in.Tuple).(*ir.MakeTuple)
	if !ok {
		return ir.InvalidValue, false
	}
	// An out-of-range index is a malformed-IR bug upstream; let it panic.
	return tuple.Elems[in.Index], true
}

// SimplifyFieldExtract folds an extract out of a visible struct constructor.
// Example: field_extract(make_struct(a, b), 1) -> b
func SimplifyFieldExtract(idx *ir.Index, in *ir.FieldExtract) (ir.ValueID, bool) {
	st, ok := idx.Def(in.Base).(*ir.MakeStruct)
	if !ok {
		return ir.InvalidValue, false
	}
	return st.Fields[in.Index], true
}

// SimplifyStructReconstruct recognizes a struct rebuilt field by field from
// one source value of the same type and yields that source:
//
//	%s0 = field_extract %x, 0
//	%s1 = field_extract %x, 1
//	%y  = make_struct %s0, %s1   ; typeof(%y) == typeof(%x)  ->  %x
//
// Every element must extract the field matching its own position; a permuted
// or partial reconstruction is a different value and must not fold.
func SimplifyStructReconstruct(idx *ir.Index, in *ir.MakeStruct) (ir.ValueID, bool) {
	if len(in.Fields) == 0 {
		return ir.InvalidValue, false
	}

	first, ok := idx.Def(in.Fields[0]).(*ir.FieldExtract)
	if !ok {
		return ir.InvalidValue, false
	}
	if in.Type != idx.TypeOf(first.Base) {
		return ir.InvalidValue, false
	}

	for i, f := range in.Fields {
		ex, ok := idx.Def(f).(*ir.FieldExtract)
		if !ok {
			return ir.InvalidValue, false
		}
		if ex.Base != first.Base {
			return ir.InvalidValue, false
		}
		if ex.Index != i {
			return ir.InvalidValue, false
		}
	}
	return first.Base, true
}
