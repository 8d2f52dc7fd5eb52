package ir

// Term is the base interface for SIR terminators. Like Instr, the variant
// set is closed.
type Term interface {
	sirTerm()
}

// Ret exits the current function, optionally carrying a value.
type Ret struct {
	Value    ValueID
	HasValue bool
}

func (*Ret) sirTerm() {}

// Br jumps unconditionally to another block.
type Br struct {
	Target BlockID
}

func (*Br) sirTerm() {}

// CondBr jumps to Then when Cond is true and to Else otherwise.
type CondBr struct {
	Cond ValueID
	Then BlockID
	Else BlockID
}

func (*CondBr) sirTerm() {}

// TagCase maps one variant tag to a target block.
type TagCase struct {
	Tag    string
	Target BlockID
}

// SwitchTag dispatches on the case tag of a sum-typed subject.
type SwitchTag struct {
	Subject    ValueID
	Cases      []TagCase
	Default    BlockID
	HasDefault bool
}

func (*SwitchTag) sirTerm() {}

// CaseTarget returns the block targeted for tag, if the switch names it.
// The default destination is deliberately not consulted: reaching a block
// through the default edge proves nothing about the subject's tag.
func (s *SwitchTag) CaseTarget(tag string) (BlockID, bool) {
	for _, c := range s.Cases {
		if c.Tag == tag {
			return c.Target, true
		}
	}
	return InvalidBlock, false
}

// Unreachable marks an invalid control-flow path.
type Unreachable struct{}

func (*Unreachable) sirTerm() {}
