package ir

// Instr is the base interface for SIR instructions. The set of
// implementations in this file is closed; the optimizer dispatches on the
// concrete type with an exhaustive switch.
type Instr interface {
	sirInstr()
}

// CastKind discriminates checked cast directions.
type CastKind int

const (
	// Upcast widens to a supertype. Always succeeds.
	Upcast CastKind = iota
	// Downcast narrows to a subtype. May trap at runtime.
	Downcast
)

func (k CastKind) String() string {
	if k == Upcast {
		return "upcast"
	}
	return "downcast"
}

// MakeTuple constructs a tuple value from its elements.
type MakeTuple struct {
	Result ValueID
	Type   TypeID
	Elems  []ValueID
}

func (*MakeTuple) sirInstr() {}

// TupleExtract reads element Index out of a tuple.
type TupleExtract struct {
	Result ValueID
	Type   TypeID
	Tuple  ValueID
	Index  int
}

func (*TupleExtract) sirInstr() {}

// MakeStruct constructs a struct value from its field values, in
// declaration order.
type MakeStruct struct {
	Result ValueID
	Type   TypeID
	Fields []ValueID
}

func (*MakeStruct) sirInstr() {}

// FieldExtract reads field Index out of a struct.
type FieldExtract struct {
	Result ValueID
	Type   TypeID
	Base   ValueID
	Index  int
}

func (*FieldExtract) sirInstr() {}

// MakeVariant constructs a sum-typed value with the given case tag and an
// optional payload.
type MakeVariant struct {
	Result     ValueID
	Type       TypeID
	Tag        string
	Payload    ValueID
	HasPayload bool
}

func (*MakeVariant) sirInstr() {}

// AddrToPtr converts a typed address to a raw pointer.
type AddrToPtr struct {
	Result ValueID
	Type   TypeID
	X      ValueID
}

func (*AddrToPtr) sirInstr() {}

// PtrToAddr converts a raw pointer back to a typed address.
type PtrToAddr struct {
	Result ValueID
	Type   TypeID
	X      ValueID
}

func (*PtrToAddr) sirInstr() {}

// RefToRawPtr reinterprets a reference as a raw pointer.
type RefToRawPtr struct {
	Result ValueID
	Type   TypeID
	X      ValueID
}

func (*RefToRawPtr) sirInstr() {}

// RawPtrToRef reinterprets a raw pointer as a reference.
type RawPtrToRef struct {
	Result ValueID
	Type   TypeID
	X      ValueID
}

func (*RawPtrToRef) sirInstr() {}

// RefToOpaquePtr erases a reference to an opaque pointer.
type RefToOpaquePtr struct {
	Result ValueID
	Type   TypeID
	X      ValueID
}

func (*RefToOpaquePtr) sirInstr() {}

// OpaquePtrToRef recovers a reference from an opaque pointer.
type OpaquePtrToRef struct {
	Result ValueID
	Type   TypeID
	X      ValueID
}

func (*OpaquePtrToRef) sirInstr() {}

// CheckedCast converts X to the target type, widening or narrowing
// depending on Kind.
type CheckedCast struct {
	Result ValueID
	Type   TypeID
	Kind   CastKind
	X      ValueID
}

func (*CheckedCast) sirInstr() {}

// IntLit materializes an integer constant of the given bit width. Width 1
// is the boolean carrier type.
type IntLit struct {
	Result ValueID
	Type   TypeID
	Width  int
	Value  int64
}

func (*IntLit) sirInstr() {}

// Bool reports the literal interpreted as a boolean.
func (i *IntLit) Bool() bool { return i.Value != 0 }

// BinOp applies a named binary operation.
type BinOp struct {
	Result ValueID
	Type   TypeID
	Op     string
	L, R   ValueID
}

func (*BinOp) sirInstr() {}

// Call invokes a function by name.
type Call struct {
	Result ValueID
	Type   TypeID
	Callee string
	Args   []ValueID
}

func (*Call) sirInstr() {}

// Load reads a value through an address.
type Load struct {
	Result ValueID
	Type   TypeID
	Addr   ValueID
}

func (*Load) sirInstr() {}

// Store writes a value through an address. It produces no result.
type Store struct {
	Addr  ValueID
	Value ValueID
}

func (*Store) sirInstr() {}
