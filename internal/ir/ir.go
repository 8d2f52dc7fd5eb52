package ir

// ValueID identifies a single-assignment value within a function.
type ValueID uint32

// BlockID identifies a basic block within a function.
type BlockID uint32

const (
	// InvalidValue is the zero ValueID. It never names a real value and is
	// used as the "no result" sentinel throughout the optimizer.
	InvalidValue ValueID = 0

	// InvalidBlock is the zero BlockID.
	InvalidBlock BlockID = 0
)

// Module is the SIR root for a single compilation unit.
type Module struct {
	Name      string
	Functions []*Function
}

// Function is a typed, single-assignment SIR function.
// Blocks[0] is the entry block.
type Function struct {
	Name   string
	Params []Param
	Return TypeID
	Blocks []*Block
}

// Param describes a function parameter value.
type Param struct {
	ID   ValueID
	Name string
	Type TypeID
}

// Block is a basic block: an instruction list closed by exactly one
// terminator. Predecessors are not stored; they are derived by Index.
type Block struct {
	ID     BlockID
	Label  string
	Instrs []Instr
	Term   Term
}

// Func returns the function with the given name, or nil.
func (m *Module) Func(name string) *Function {
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// BlockByID returns the block with the given ID, or nil.
func (f *Function) BlockByID(id BlockID) *Block {
	for _, b := range f.Blocks {
		if b.ID == id {
			return b
		}
	}
	return nil
}
