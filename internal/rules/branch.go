package rules

import "github.com/sablelang/sable/internal/ir"

// SimplifyBoolLit replaces a 1-bit literal with the condition that proved
// it. When a block is reachable only as the true (or false) successor of a
// cond_br, a literal true (or false) inside it re-derives the branch
// condition itself:
//
//	bb0: cond_br %c, bb1, bb2
//	bb1: %t = int_lit i1 1   ->  %c
//
// The literal must sit in the matching successor; a true literal on the
// false edge means the opposite and must not fold.
func SimplifyBoolLit(idx *ir.Index, in *ir.IntLit) (ir.ValueID, bool) {
	if in.Width != 1 {
		return ir.InvalidValue, false
	}

	blk := idx.BlockOf(in.Result)
	pred, ok := idx.SinglePred(blk)
	if !ok {
		return ir.InvalidValue, false
	}
	br, ok := idx.Term(pred).(*ir.CondBr)
	if !ok {
		return ir.InvalidValue, false
	}

	taken := br.Else
	if in.Bool() {
		taken = br.Then
	}
	if taken != blk {
		return ir.InvalidValue, false
	}
	return br.Cond, true
}

// SimplifyVariantRematerialize replaces a payload-free variant constructor
// with the subject of the switch that dispatched on its tag:
//
//	bb0: switch_tag %s, #none: bb1
//	bb1: %v = make_variant $Opt #none   ->  %s
//
// Valid only when the block is the unique case destination for that tag and
// the constructed type equals the subject's type. Payload-carrying
// constructors build new state and never fold.
func SimplifyVariantRematerialize(idx *ir.Index, in *ir.MakeVariant) (ir.ValueID, bool) {
	if in.HasPayload {
		return ir.InvalidValue, false
	}

	blk := idx.BlockOf(in.Result)
	pred, ok := idx.SinglePred(blk)
	if !ok {
		return ir.InvalidValue, false
	}
	sw, ok := idx.Term(pred).(*ir.SwitchTag)
	if !ok {
		return ir.InvalidValue, false
	}
	if in.Type != idx.TypeOf(sw.Subject) {
		return ir.InvalidValue, false
	}

	target, ok := sw.CaseTarget(in.Tag)
	if !ok || target != blk {
		return ir.InvalidValue, false
	}
	return sw.Subject, true
}
