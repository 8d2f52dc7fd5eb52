package internal

import (
	"fmt"
	"sort"

	"github.com/sablelang/sable/internal/ir"
	tt "github.com/sablelang/sable/internal/types"
)

// Engine manages the simplification process.
type Engine struct {
	ignoredRules map[string]bool
	rules        map[string]SimplifyRule
}

// NewEngine creates a new simplification engine with the given per-rule
// configuration applied on top of the defaults.
func NewEngine(config map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{}
	engine.applyRules(config)
	return engine, nil
}

// Define the ruleConstructor type
type ruleConstructor func() SimplifyRule

// Define the ruleMap type
type ruleMap map[string]ruleConstructor

// Create a map to hold the mappings of rule names to their constructors
var allRuleConstructors = ruleMap{
	"tuple-extract":          func() SimplifyRule { return &TupleExtractRule{} },
	"field-extract":          func() SimplifyRule { return &FieldExtractRule{} },
	"struct-reconstruct":     func() SimplifyRule { return &StructReconstructRule{} },
	"addr-to-ptr-round-trip": func() SimplifyRule { return &AddrToPtrRule{} },
	"ptr-to-addr-round-trip": func() SimplifyRule { return &PtrToAddrRule{} },
	"ref-to-raw-round-trip":  func() SimplifyRule { return &RefToRawPtrRule{} },
	"opaque-ptr-round-trip":  func() SimplifyRule { return &OpaquePtrToRefRule{} },
	"upcast-downcast":        func() SimplifyRule { return &CheckedCastRule{} },
	"bool-literal":           func() SimplifyRule { return &BoolLitRule{} },
	"variant-rematerialize":  func() SimplifyRule { return &VariantRematerializeRule{} },
}

func (e *Engine) applyRules(config map[string]tt.ConfigRule) {
	e.rules = make(map[string]SimplifyRule)
	for key, cstr := range allRuleConstructors {
		e.rules[key] = cstr()
	}

	for key, cfg := range config {
		if _, known := allRuleConstructors[key]; !known {
			// Unknown rule, continue to the next one
			continue
		}
		if cfg.Off {
			e.IgnoreRule(key)
		}
	}
}

// IgnoreRule disables a rule by name.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// RuleNames returns the registered rule names, sorted.
func (e *Engine) RuleNames() []string {
	names := make([]string, 0, len(e.rules))
	for name := range e.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Simplify decides whether the value in defines is provably equal to an
// already-existing value and returns that value. It dispatches on the
// concrete instruction kind; kinds with no registered rule, and rules whose
// precondition fails, yield (InvalidValue, false). Simplify is pure: it
// never mutates the instruction, its operands or any block it inspects, so
// repeated calls on an unchanged function return the same answer.
func (e *Engine) Simplify(idx *ir.Index, in ir.Instr) (ir.ValueID, bool) {
	v, _, ok := e.simplify(idx, in)
	return v, ok
}

func (e *Engine) simplify(idx *ir.Index, in ir.Instr) (ir.ValueID, string, bool) {
	name := ruleFor(in)
	if name == "" || e.ignoredRules[name] {
		return ir.InvalidValue, "", false
	}
	rule, ok := e.rules[name]
	if !ok {
		return ir.InvalidValue, "", false
	}
	v, ok := rule.Apply(idx, in)
	return v, name, ok
}

// ruleFor maps an instruction kind to the rule that handles it. The switch
// enumerates the closed instruction set so that adding a kind is a
// compile-visible edit here rather than a silent fall-through.
func ruleFor(in ir.Instr) string {
	switch in.(type) {
	case *ir.TupleExtract:
		return "tuple-extract"
	case *ir.FieldExtract:
		return "field-extract"
	case *ir.MakeStruct:
		return "struct-reconstruct"
	case *ir.AddrToPtr:
		return "addr-to-ptr-round-trip"
	case *ir.PtrToAddr:
		return "ptr-to-addr-round-trip"
	case *ir.RefToRawPtr:
		return "ref-to-raw-round-trip"
	case *ir.OpaquePtrToRef:
		return "opaque-ptr-round-trip"
	case *ir.CheckedCast:
		return "upcast-downcast"
	case *ir.IntLit:
		return "bool-literal"
	case *ir.MakeVariant:
		return "variant-rematerialize"
	case *ir.MakeTuple, *ir.RawPtrToRef, *ir.RefToOpaquePtr,
		*ir.BinOp, *ir.Call, *ir.Load, *ir.Store:
		return ""
	}
	return ""
}

// RunFunction drives simplification over one function: it batches the
// substitutions found in a full walk, replaces every use, drops the dead
// defining instructions, and repeats until a walk finds nothing. The core
// Simplify stays read-only; all mutation happens here, between walks.
func (e *Engine) RunFunction(fn *ir.Function) []tt.Rewrite {
	var all []tt.Rewrite

	for {
		idx := ir.BuildIndex(fn)
		subst := make(map[ir.ValueID]ir.ValueID)

		for _, blk := range fn.Blocks {
			for _, in := range blk.Instrs {
				v, rule, ok := e.simplify(idx, in)
				if !ok {
					continue
				}
				old := ir.ResultOf(in)
				subst[old] = v
				all = append(all, tt.Rewrite{
					Rule:     rule,
					Function: fn.Name,
					Block:    blockLabel(blk),
					Old:      old,
					New:      v,
				})
			}
		}
		if len(subst) == 0 {
			return all
		}

		// Substitutions may chain within one batch (the replacement of one
		// value can itself have been replaced); chase each to its root.
		// Cycles cannot occur: a rule always returns a value defined before
		// the instruction it replaces.
		resolve := func(v ir.ValueID) ir.ValueID {
			for {
				next, ok := subst[v]
				if !ok {
					return v
				}
				v = next
			}
		}

		for _, blk := range fn.Blocks {
			kept := blk.Instrs[:0]
			for _, in := range blk.Instrs {
				if r := ir.ResultOf(in); r != ir.InvalidValue {
					if _, dead := subst[r]; dead {
						continue
					}
				}
				ir.RemapOperands(in, resolve)
				kept = append(kept, in)
			}
			blk.Instrs = kept
			ir.RemapTerm(blk.Term, resolve)
		}
	}
}

// RunModule drives simplification over every function of a module.
func (e *Engine) RunModule(mod *ir.Module) []tt.Rewrite {
	var all []tt.Rewrite
	for _, fn := range mod.Functions {
		all = append(all, e.RunFunction(fn)...)
	}
	return all
}

func blockLabel(blk *ir.Block) string {
	if blk.Label != "" {
		return blk.Label
	}
	return fmt.Sprintf("bb%d", blk.ID)
}
