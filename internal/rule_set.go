package internal

import (
	"github.com/sablelang/sable/internal/ir"
	"github.com/sablelang/sable/internal/rules"
)

/*
* Implement each simplification rule as a separate struct
 */

// SimplifyRule is the interface for all peephole simplification rules.
// Apply inspects one instruction through the read-only index and either
// returns an already-existing value that may replace the instruction's
// result, or reports that nothing matched. Rules never mutate the IR.
type SimplifyRule interface {
	// Apply runs the rule on the given instruction.
	Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool)

	// Name returns the name of the rule.
	Name() string
}

type TupleExtractRule struct{}

func (r *TupleExtractRule) Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	if te, ok := in.(*ir.TupleExtract); ok {
		return rules.SimplifyTupleExtract(idx, te)
	}
	return ir.InvalidValue, false
}

func (r *TupleExtractRule) Name() string {
	return "tuple-extract"
}

type FieldExtractRule struct{}

func (r *FieldExtractRule) Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	if fe, ok := in.(*ir.FieldExtract); ok {
		return rules.SimplifyFieldExtract(idx, fe)
	}
	return ir.InvalidValue, false
}

func (r *FieldExtractRule) Name() string {
	return "field-extract"
}

type StructReconstructRule struct{}

func (r *StructReconstructRule) Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	if ms, ok := in.(*ir.MakeStruct); ok {
		return rules.SimplifyStructReconstruct(idx, ms)
	}
	return ir.InvalidValue, false
}

func (r *StructReconstructRule) Name() string {
	return "struct-reconstruct"
}

type AddrToPtrRule struct{}

func (r *AddrToPtrRule) Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	if c, ok := in.(*ir.AddrToPtr); ok {
		return rules.SimplifyAddrToPtr(idx, c)
	}
	return ir.InvalidValue, false
}

func (r *AddrToPtrRule) Name() string {
	return "addr-to-ptr-round-trip"
}

type PtrToAddrRule struct{}

func (r *PtrToAddrRule) Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	if c, ok := in.(*ir.PtrToAddr); ok {
		return rules.SimplifyPtrToAddr(idx, c)
	}
	return ir.InvalidValue, false
}

func (r *PtrToAddrRule) Name() string {
	return "ptr-to-addr-round-trip"
}

type RefToRawPtrRule struct{}

func (r *RefToRawPtrRule) Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	if c, ok := in.(*ir.RefToRawPtr); ok {
		return rules.SimplifyRefToRawPtr(idx, c)
	}
	return ir.InvalidValue, false
}

func (r *RefToRawPtrRule) Name() string {
	return "ref-to-raw-round-trip"
}

type OpaquePtrToRefRule struct{}

func (r *OpaquePtrToRefRule) Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	if c, ok := in.(*ir.OpaquePtrToRef); ok {
		return rules.SimplifyOpaquePtrToRef(idx, c)
	}
	return ir.InvalidValue, false
}

func (r *OpaquePtrToRefRule) Name() string {
	return "opaque-ptr-round-trip"
}

type CheckedCastRule struct{}

func (r *CheckedCastRule) Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	if c, ok := in.(*ir.CheckedCast); ok {
		return rules.SimplifyCheckedCast(idx, c)
	}
	return ir.InvalidValue, false
}

func (r *CheckedCastRule) Name() string {
	return "upcast-downcast"
}

type BoolLitRule struct{}

func (r *BoolLitRule) Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	if lit, ok := in.(*ir.IntLit); ok {
		return rules.SimplifyBoolLit(idx, lit)
	}
	return ir.InvalidValue, false
}

func (r *BoolLitRule) Name() string {
	return "bool-literal"
}

type VariantRematerializeRule struct{}

func (r *VariantRematerializeRule) Apply(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	if mv, ok := in.(*ir.MakeVariant); ok {
		return rules.SimplifyVariantRematerialize(idx, mv)
	}
	return ir.InvalidValue, false
}

func (r *VariantRematerializeRule) Name() string {
	return "variant-rematerialize"
}
