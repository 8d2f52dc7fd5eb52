package ir

// Builder constructs a Function instruction by instruction. It allocates
// ValueIDs and BlockIDs and appends into a current block, so tests and
// front ends never hand-number values.
type Builder struct {
	types *TypeTable
	fn    *Function
	cur   *Block
	nextV ValueID
	nextB BlockID
}

// NewBuilder starts a function with the given name. Blocks must be opened
// with Block before emitting instructions.
func NewBuilder(types *TypeTable, name string) *Builder {
	return &Builder{
		types: types,
		fn:    &Function{Name: name},
		nextV: 1,
		nextB: 1,
	}
}

// Types returns the type table the builder interns into.
func (b *Builder) Types() *TypeTable { return b.types }

// Param declares a function parameter and returns its value.
func (b *Builder) Param(name string, t TypeID) ValueID {
	id := b.newValue()
	b.fn.Params = append(b.fn.Params, Param{ID: id, Name: name, Type: t})
	return id
}

// SetReturn records the function return type.
func (b *Builder) SetReturn(t TypeID) { b.fn.Return = t }

// Block opens a new basic block and makes it current.
func (b *Builder) Block(label string) BlockID {
	blk := &Block{ID: b.nextB, Label: label}
	b.nextB++
	b.fn.Blocks = append(b.fn.Blocks, blk)
	b.cur = blk
	return blk.ID
}

// SetBlock makes an already-opened block current again.
func (b *Builder) SetBlock(id BlockID) {
	blk := b.fn.BlockByID(id)
	if blk == nil {
		panic("ir: SetBlock on unknown block")
	}
	b.cur = blk
}

// Func seals and returns the built function.
func (b *Builder) Func() *Function { return b.fn }

func (b *Builder) newValue() ValueID {
	id := b.nextV
	b.nextV++
	return id
}

func (b *Builder) emit(in Instr) {
	if b.cur == nil {
		panic("ir: emit outside a block")
	}
	if b.cur.Term != nil {
		panic("ir: emit after terminator")
	}
	b.cur.Instrs = append(b.cur.Instrs, in)
}

func (b *Builder) terminate(t Term) {
	if b.cur == nil {
		panic("ir: terminator outside a block")
	}
	if b.cur.Term != nil {
		panic("ir: block already terminated")
	}
	b.cur.Term = t
}

// MakeTuple emits a tuple constructor.
func (b *Builder) MakeTuple(t TypeID, elems ...ValueID) ValueID {
	r := b.newValue()
	b.emit(&MakeTuple{Result: r, Type: t, Elems: elems})
	return r
}

// TupleExtract emits a tuple element read.
func (b *Builder) TupleExtract(t TypeID, tuple ValueID, index int) ValueID {
	r := b.newValue()
	b.emit(&TupleExtract{Result: r, Type: t, Tuple: tuple, Index: index})
	return r
}

// MakeStruct emits a struct constructor.
func (b *Builder) MakeStruct(t TypeID, fields ...ValueID) ValueID {
	r := b.newValue()
	b.emit(&MakeStruct{Result: r, Type: t, Fields: fields})
	return r
}

// FieldExtract emits a struct field read.
func (b *Builder) FieldExtract(t TypeID, base ValueID, index int) ValueID {
	r := b.newValue()
	b.emit(&FieldExtract{Result: r, Type: t, Base: base, Index: index})
	return r
}

// MakeVariant emits a payload-free variant constructor.
func (b *Builder) MakeVariant(t TypeID, tag string) ValueID {
	r := b.newValue()
	b.emit(&MakeVariant{Result: r, Type: t, Tag: tag})
	return r
}

// MakeVariantPayload emits a variant constructor carrying a payload.
func (b *Builder) MakeVariantPayload(t TypeID, tag string, payload ValueID) ValueID {
	r := b.newValue()
	b.emit(&MakeVariant{Result: r, Type: t, Tag: tag, Payload: payload, HasPayload: true})
	return r
}

// AddrToPtr emits an address-to-pointer conversion.
func (b *Builder) AddrToPtr(t TypeID, x ValueID) ValueID {
	r := b.newValue()
	b.emit(&AddrToPtr{Result: r, Type: t, X: x})
	return r
}

// PtrToAddr emits a pointer-to-address conversion.
func (b *Builder) PtrToAddr(t TypeID, x ValueID) ValueID {
	r := b.newValue()
	b.emit(&PtrToAddr{Result: r, Type: t, X: x})
	return r
}

// RefToRawPtr emits a reference-to-raw-pointer conversion.
func (b *Builder) RefToRawPtr(t TypeID, x ValueID) ValueID {
	r := b.newValue()
	b.emit(&RefToRawPtr{Result: r, Type: t, X: x})
	return r
}

// RawPtrToRef emits a raw-pointer-to-reference conversion.
func (b *Builder) RawPtrToRef(t TypeID, x ValueID) ValueID {
	r := b.newValue()
	b.emit(&RawPtrToRef{Result: r, Type: t, X: x})
	return r
}

// RefToOpaquePtr emits a reference-to-opaque-pointer conversion.
func (b *Builder) RefToOpaquePtr(t TypeID, x ValueID) ValueID {
	r := b.newValue()
	b.emit(&RefToOpaquePtr{Result: r, Type: t, X: x})
	return r
}

// OpaquePtrToRef emits an opaque-pointer-to-reference conversion.
func (b *Builder) OpaquePtrToRef(t TypeID, x ValueID) ValueID {
	r := b.newValue()
	b.emit(&OpaquePtrToRef{Result: r, Type: t, X: x})
	return r
}

// CheckedCast emits an upcast or downcast to the target type.
func (b *Builder) CheckedCast(kind CastKind, t TypeID, x ValueID) ValueID {
	r := b.newValue()
	b.emit(&CheckedCast{Result: r, Type: t, Kind: kind, X: x})
	return r
}

// IntLit emits an integer literal of the given bit width.
func (b *Builder) IntLit(t TypeID, width int, value int64) ValueID {
	r := b.newValue()
	b.emit(&IntLit{Result: r, Type: t, Width: width, Value: value})
	return r
}

// BinOp emits a named binary operation.
func (b *Builder) BinOp(op string, t TypeID, l, r ValueID) ValueID {
	res := b.newValue()
	b.emit(&BinOp{Result: res, Type: t, Op: op, L: l, R: r})
	return res
}

// Call emits a direct call.
func (b *Builder) Call(t TypeID, callee string, args ...ValueID) ValueID {
	r := b.newValue()
	b.emit(&Call{Result: r, Type: t, Callee: callee, Args: args})
	return r
}

// Load emits a read through an address.
func (b *Builder) Load(t TypeID, addr ValueID) ValueID {
	r := b.newValue()
	b.emit(&Load{Result: r, Type: t, Addr: addr})
	return r
}

// Store emits a write through an address.
func (b *Builder) Store(addr, value ValueID) {
	b.emit(&Store{Addr: addr, Value: value})
}

// Ret terminates the current block returning value.
func (b *Builder) Ret(value ValueID) {
	b.terminate(&Ret{Value: value, HasValue: true})
}

// RetVoid terminates the current block with a bare return.
func (b *Builder) RetVoid() {
	b.terminate(&Ret{})
}

// Br terminates the current block with an unconditional jump.
func (b *Builder) Br(target BlockID) {
	b.terminate(&Br{Target: target})
}

// CondBr terminates the current block with a conditional branch.
func (b *Builder) CondBr(cond ValueID, then, els BlockID) {
	b.terminate(&CondBr{Cond: cond, Then: then, Else: els})
}

// SwitchTag terminates the current block with a tag dispatch.
func (b *Builder) SwitchTag(subject ValueID, cases []TagCase) {
	b.terminate(&SwitchTag{Subject: subject, Cases: cases})
}

// SwitchTagDefault is SwitchTag with a default destination.
func (b *Builder) SwitchTagDefault(subject ValueID, cases []TagCase, def BlockID) {
	b.terminate(&SwitchTag{Subject: subject, Cases: cases, Default: def, HasDefault: true})
}

// Unreachable terminates the current block as unreachable.
func (b *Builder) Unreachable() {
	b.terminate(&Unreachable{})
}
