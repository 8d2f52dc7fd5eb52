package ir

// Index is a derived, read-only view over one function: defining
// instructions, owning blocks and predecessor sets. It is computed once and
// stays valid until the function is mutated; mutation and lookup must not
// overlap.
type Index struct {
	fn      *Function
	defs    map[ValueID]Instr
	blockOf map[ValueID]BlockID
	types   map[ValueID]TypeID
	preds   map[BlockID][]BlockID
}

// BuildIndex computes the Index for fn.
func BuildIndex(fn *Function) *Index {
	idx := &Index{
		fn:      fn,
		defs:    make(map[ValueID]Instr),
		blockOf: make(map[ValueID]BlockID),
		types:   make(map[ValueID]TypeID),
		preds:   make(map[BlockID][]BlockID),
	}

	for _, p := range fn.Params {
		idx.types[p.ID] = p.Type
	}

	var succs []BlockID
	for _, b := range fn.Blocks {
		for _, in := range b.Instrs {
			r := ResultOf(in)
			if r == InvalidValue {
				continue
			}
			idx.defs[r] = in
			idx.blockOf[r] = b.ID
			idx.types[r] = TypeOfInstr(in)
		}
		succs = Successors(succs[:0], b.Term)
		for _, s := range succs {
			idx.preds[s] = append(idx.preds[s], b.ID)
		}
	}
	return idx
}

// Func returns the indexed function.
func (x *Index) Func() *Function { return x.fn }

// Def returns the instruction defining v, or nil when v is a parameter or
// unknown.
func (x *Index) Def(v ValueID) Instr { return x.defs[v] }

// TypeOf returns the type of v, or NoType when v is unknown.
func (x *Index) TypeOf(v ValueID) TypeID { return x.types[v] }

// BlockOf returns the block owning the definition of v.
func (x *Index) BlockOf(v ValueID) BlockID { return x.blockOf[v] }

// Preds returns the predecessor blocks of b. The slice is owned by the
// Index and must not be mutated.
func (x *Index) Preds(b BlockID) []BlockID { return x.preds[b] }

// SinglePred returns b's unique predecessor, or (InvalidBlock, false) when
// b has zero or several predecessors.
func (x *Index) SinglePred(b BlockID) (BlockID, bool) {
	ps := x.preds[b]
	if len(ps) != 1 {
		return InvalidBlock, false
	}
	return ps[0], true
}

// Term returns the terminator of block b. A missing block or terminator is
// a malformed-IR bug in the caller, so this panics rather than recovering.
func (x *Index) Term(b BlockID) Term {
	blk := x.fn.BlockByID(b)
	if blk == nil || blk.Term == nil {
		panic("ir: block without terminator")
	}
	return blk.Term
}
