package ir

// TypeID is an interned type identity. The optimizer only ever compares
// TypeIDs for equality; type structure is a front-end concern and never
// reaches this package.
type TypeID uint32

// NoType marks instructions that produce no value (e.g. store).
const NoType TypeID = 0

// TypeTable interns type names so that equal spellings share one TypeID.
type TypeTable struct {
	byName map[string]TypeID
	names  []string
}

// NewTypeTable creates an empty table. TypeID 0 is reserved for NoType.
func NewTypeTable() *TypeTable {
	return &TypeTable{
		byName: make(map[string]TypeID),
		names:  []string{""},
	}
}

// Intern returns the TypeID for name, allocating one on first use.
func (t *TypeTable) Intern(name string) TypeID {
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := TypeID(len(t.names))
	t.names = append(t.names, name)
	t.byName[name] = id
	return id
}

// Name returns the spelling interned for id, or "" for NoType.
func (t *TypeTable) Name(id TypeID) string {
	if int(id) >= len(t.names) {
		return ""
	}
	return t.names[id]
}

// Len reports the number of interned types, including NoType.
func (t *TypeTable) Len() int { return len(t.names) }
