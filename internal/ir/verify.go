package ir

import "fmt"

// Verify checks structural well-formedness of a function: single assignment,
// a terminator on every block, operands that name real values and branch
// targets that name real blocks. The optimizer assumes all of this and does
// not re-validate, so the driver runs Verify once after construction.
func Verify(fn *Function) error {
	if len(fn.Blocks) == 0 {
		return fmt.Errorf("%s: function has no blocks", fn.Name)
	}

	defined := make(map[ValueID]bool)
	for _, p := range fn.Params {
		if p.ID == InvalidValue {
			return fmt.Errorf("%s: parameter %q has no value", fn.Name, p.Name)
		}
		if defined[p.ID] {
			return fmt.Errorf("%s: value %%%d defined twice", fn.Name, p.ID)
		}
		defined[p.ID] = true
	}

	blocks := make(map[BlockID]bool)
	for _, b := range fn.Blocks {
		if blocks[b.ID] {
			return fmt.Errorf("%s: block %s defined twice", fn.Name, blockName(b.ID, b.Label))
		}
		blocks[b.ID] = true

		for _, in := range b.Instrs {
			r := ResultOf(in)
			if r == InvalidValue {
				continue
			}
			if defined[r] {
				return fmt.Errorf("%s: value %%%d defined twice", fn.Name, r)
			}
			defined[r] = true
		}
	}

	var uses []ValueID
	var succs []BlockID
	for _, b := range fn.Blocks {
		name := blockName(b.ID, b.Label)
		if b.Term == nil {
			return fmt.Errorf("%s: block %s has no terminator", fn.Name, name)
		}

		uses = uses[:0]
		for _, in := range b.Instrs {
			uses = Operands(uses, in)
		}
		uses = TermUses(uses, b.Term)
		for _, u := range uses {
			if !defined[u] {
				return fmt.Errorf("%s: block %s uses undefined value %%%d", fn.Name, name, u)
			}
		}

		succs = Successors(succs[:0], b.Term)
		for _, s := range succs {
			if !blocks[s] {
				return fmt.Errorf("%s: block %s branches to undefined block bb%d", fn.Name, name, s)
			}
		}

		if sw, ok := b.Term.(*SwitchTag); ok {
			seen := make(map[string]bool, len(sw.Cases))
			for _, c := range sw.Cases {
				if seen[c.Tag] {
					return fmt.Errorf("%s: block %s switches on tag #%s twice", fn.Name, name, c.Tag)
				}
				seen[c.Tag] = true
			}
		}
	}
	return nil
}

// VerifyModule runs Verify over every function of a module.
func VerifyModule(mod *Module) error {
	for _, fn := range mod.Functions {
		if err := Verify(fn); err != nil {
			return err
		}
	}
	return nil
}
