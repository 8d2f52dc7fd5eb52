package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseModule parses the textual SIR form produced by FormatModule.
// Value names and block labels are scoped to their function; types are
// interned into the given table.
func ParseModule(types *TypeTable, src string) (*Module, error) {
	p := &parser{types: types, mod: &Module{}}
	lines := strings.Split(src, "\n")
	for n, line := range lines {
		if err := p.line(strings.TrimSpace(line)); err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
	}
	if p.fn != nil {
		return nil, fmt.Errorf("unterminated function %q", p.fn.Name)
	}
	return p.mod, nil
}

type parser struct {
	types *TypeTable
	mod   *Module

	// per-function state
	fn     *Function
	cur    *Block
	values map[string]ValueID
	blocks map[string]BlockID
	nextV  ValueID
	nextB  BlockID
}

func (p *parser) line(s string) error {
	if i := strings.Index(s, "//"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if s == "" {
		return nil
	}

	toks, err := lexLine(s)
	if err != nil {
		return err
	}
	lx := &tokens{toks: toks}

	switch {
	case lx.peekIdent("module"):
		lx.next()
		name, err := lx.ident()
		if err != nil {
			return err
		}
		p.mod.Name = name
		return lx.end()

	case lx.peekIdent("fn"):
		return p.funcHeader(lx)

	case lx.peekPunct("}"):
		lx.next()
		if p.fn == nil {
			return fmt.Errorf("unexpected %q", "}")
		}
		p.fn = nil
		p.cur = nil
		return lx.end()
	}

	if p.fn == nil {
		return fmt.Errorf("instruction outside a function")
	}

	// "label:" opens a block
	if len(lx.toks) == 2 && lx.toks[0].kind == tkIdent && lx.toks[1].is(tkPunct, ":") {
		p.openBlock(lx.toks[0].text)
		return nil
	}

	if p.cur == nil {
		return fmt.Errorf("instruction outside a block")
	}
	return p.instrLine(lx)
}

func (p *parser) funcHeader(lx *tokens) error {
	if p.fn != nil {
		return fmt.Errorf("nested function")
	}
	lx.next() // fn
	name, err := lx.atName()
	if err != nil {
		return err
	}

	p.fn = &Function{Name: name}
	p.values = make(map[string]ValueID)
	p.blocks = make(map[string]BlockID)
	p.nextV = 1
	p.nextB = 1
	p.cur = nil
	p.mod.Functions = append(p.mod.Functions, p.fn)

	if err := lx.punct("("); err != nil {
		return err
	}
	for !lx.peekPunct(")") {
		if len(p.fn.Params) > 0 {
			if err := lx.punct(","); err != nil {
				return err
			}
		}
		vname, err := lx.value()
		if err != nil {
			return err
		}
		if err := lx.punct(":"); err != nil {
			return err
		}
		t, err := p.typeRef(lx)
		if err != nil {
			return err
		}
		p.fn.Params = append(p.fn.Params, Param{ID: p.defineValue(vname), Name: vname, Type: t})
	}
	lx.next() // )

	if lx.peekPunct("->") {
		lx.next()
		t, err := p.typeRef(lx)
		if err != nil {
			return err
		}
		p.fn.Return = t
	}
	if err := lx.punct("{"); err != nil {
		return err
	}
	return lx.end()
}

func (p *parser) openBlock(label string) {
	id := p.blockRef(label)
	blk := p.fn.BlockByID(id)
	if blk == nil {
		blk = &Block{ID: id, Label: label}
		p.fn.Blocks = append(p.fn.Blocks, blk)
	}
	p.cur = blk
}

// blockRef returns the BlockID for a label, allocating on first mention so
// forward branches parse in one pass. The Block itself is materialized when
// its label line is seen.
func (p *parser) blockRef(label string) BlockID {
	if id, ok := p.blocks[label]; ok {
		return id
	}
	id := p.nextB
	p.nextB++
	p.blocks[label] = id
	return id
}

func (p *parser) defineValue(name string) ValueID {
	if id, ok := p.values[name]; ok {
		return id
	}
	id := p.nextV
	p.nextV++
	p.values[name] = id
	return id
}

func (p *parser) valueRef(lx *tokens) (ValueID, error) {
	name, err := lx.value()
	if err != nil {
		return InvalidValue, err
	}
	return p.defineValue(name), nil
}

func (p *parser) typeRef(lx *tokens) (TypeID, error) {
	name, err := lx.typeName()
	if err != nil {
		return NoType, err
	}
	return p.types.Intern(name), nil
}

func (p *parser) instrLine(lx *tokens) error {
	// value-producing form: %r = op ...
	if lx.peekKind(tkValue) {
		rname, _ := lx.value()
		if err := lx.punct("="); err != nil {
			return err
		}
		result := p.defineValue(rname)
		return p.opWithResult(lx, result)
	}

	op, err := lx.ident()
	if err != nil {
		return err
	}
	switch op {
	case "store":
		addr, err := p.valueRef(lx)
		if err != nil {
			return err
		}
		if err := lx.punct(","); err != nil {
			return err
		}
		val, err := p.valueRef(lx)
		if err != nil {
			return err
		}
		p.cur.Instrs = append(p.cur.Instrs, &Store{Addr: addr, Value: val})
		return lx.end()
	case "ret":
		t := &Ret{}
		if !lx.done() {
			v, err := p.valueRef(lx)
			if err != nil {
				return err
			}
			t.Value, t.HasValue = v, true
		}
		return p.terminate(lx, t)
	case "br":
		label, err := lx.ident()
		if err != nil {
			return err
		}
		return p.terminate(lx, &Br{Target: p.blockRef(label)})
	case "cond_br":
		cond, err := p.valueRef(lx)
		if err != nil {
			return err
		}
		if err := lx.punct(","); err != nil {
			return err
		}
		then, err := lx.ident()
		if err != nil {
			return err
		}
		if err := lx.punct(","); err != nil {
			return err
		}
		els, err := lx.ident()
		if err != nil {
			return err
		}
		return p.terminate(lx, &CondBr{Cond: cond, Then: p.blockRef(then), Else: p.blockRef(els)})
	case "switch_tag":
		return p.switchTag(lx)
	case "unreachable":
		return p.terminate(lx, &Unreachable{})
	}
	return fmt.Errorf("unknown instruction %q", op)
}

func (p *parser) switchTag(lx *tokens) error {
	subject, err := p.valueRef(lx)
	if err != nil {
		return err
	}
	t := &SwitchTag{Subject: subject}
	for lx.peekPunct(",") {
		lx.next()
		if lx.peekIdent("default") {
			lx.next()
			if err := lx.punct(":"); err != nil {
				return err
			}
			label, err := lx.ident()
			if err != nil {
				return err
			}
			t.Default, t.HasDefault = p.blockRef(label), true
			continue
		}
		tag, err := lx.tag()
		if err != nil {
			return err
		}
		if err := lx.punct(":"); err != nil {
			return err
		}
		label, err := lx.ident()
		if err != nil {
			return err
		}
		t.Cases = append(t.Cases, TagCase{Tag: tag, Target: p.blockRef(label)})
	}
	return p.terminate(lx, t)
}

func (p *parser) terminate(lx *tokens, t Term) error {
	if p.cur.Term != nil {
		return fmt.Errorf("block %q already terminated", p.cur.Label)
	}
	p.cur.Term = t
	return lx.end()
}

func (p *parser) opWithResult(lx *tokens, result ValueID) error {
	op, err := lx.ident()
	if err != nil {
		return err
	}

	switch op {
	case "make_tuple", "make_struct":
		t, err := p.typeRef(lx)
		if err != nil {
			return err
		}
		elems, err := p.valueList(lx)
		if err != nil {
			return err
		}
		if op == "make_tuple" {
			p.cur.Instrs = append(p.cur.Instrs, &MakeTuple{Result: result, Type: t, Elems: elems})
		} else {
			p.cur.Instrs = append(p.cur.Instrs, &MakeStruct{Result: result, Type: t, Fields: elems})
		}
		return lx.end()

	case "tuple_extract", "field_extract":
		t, err := p.typeRef(lx)
		if err != nil {
			return err
		}
		src, err := p.valueRef(lx)
		if err != nil {
			return err
		}
		if err := lx.punct(","); err != nil {
			return err
		}
		index, err := lx.number()
		if err != nil {
			return err
		}
		if op == "tuple_extract" {
			p.cur.Instrs = append(p.cur.Instrs, &TupleExtract{Result: result, Type: t, Tuple: src, Index: int(index)})
		} else {
			p.cur.Instrs = append(p.cur.Instrs, &FieldExtract{Result: result, Type: t, Base: src, Index: int(index)})
		}
		return lx.end()

	case "make_variant":
		t, err := p.typeRef(lx)
		if err != nil {
			return err
		}
		tag, err := lx.tag()
		if err != nil {
			return err
		}
		in := &MakeVariant{Result: result, Type: t, Tag: tag}
		if lx.peekPunct(",") {
			lx.next()
			payload, err := p.valueRef(lx)
			if err != nil {
				return err
			}
			in.Payload, in.HasPayload = payload, true
		}
		p.cur.Instrs = append(p.cur.Instrs, in)
		return lx.end()

	case "addr_to_ptr", "ptr_to_addr", "ref_to_raw_ptr", "raw_ptr_to_ref",
		"ref_to_opaque_ptr", "opaque_ptr_to_ref", "upcast", "downcast", "load":
		t, err := p.typeRef(lx)
		if err != nil {
			return err
		}
		x, err := p.valueRef(lx)
		if err != nil {
			return err
		}
		p.cur.Instrs = append(p.cur.Instrs, unaryInstr(op, result, t, x))
		return lx.end()

	case "int_lit":
		wtok, err := lx.ident()
		if err != nil {
			return err
		}
		if !strings.HasPrefix(wtok, "i") {
			return fmt.Errorf("bad width %q", wtok)
		}
		width, err := strconv.Atoi(wtok[1:])
		if err != nil {
			return fmt.Errorf("bad width %q", wtok)
		}
		value, err := lx.number()
		if err != nil {
			return err
		}
		p.cur.Instrs = append(p.cur.Instrs, &IntLit{
			Result: result,
			Type:   p.types.Intern(wtok),
			Width:  width,
			Value:  value,
		})
		return lx.end()

	case "binop":
		name, err := lx.ident()
		if err != nil {
			return err
		}
		t, err := p.typeRef(lx)
		if err != nil {
			return err
		}
		l, err := p.valueRef(lx)
		if err != nil {
			return err
		}
		if err := lx.punct(","); err != nil {
			return err
		}
		r, err := p.valueRef(lx)
		if err != nil {
			return err
		}
		p.cur.Instrs = append(p.cur.Instrs, &BinOp{Result: result, Type: t, Op: name, L: l, R: r})
		return lx.end()

	case "call":
		t, err := p.typeRef(lx)
		if err != nil {
			return err
		}
		callee, err := lx.atName()
		if err != nil {
			return err
		}
		args, err := p.valueList(lx)
		if err != nil {
			return err
		}
		p.cur.Instrs = append(p.cur.Instrs, &Call{Result: result, Type: t, Callee: callee, Args: args})
		return lx.end()
	}
	return fmt.Errorf("unknown instruction %q", op)
}

func unaryInstr(op string, result ValueID, t TypeID, x ValueID) Instr {
	switch op {
	case "addr_to_ptr":
		return &AddrToPtr{Result: result, Type: t, X: x}
	case "ptr_to_addr":
		return &PtrToAddr{Result: result, Type: t, X: x}
	case "ref_to_raw_ptr":
		return &RefToRawPtr{Result: result, Type: t, X: x}
	case "raw_ptr_to_ref":
		return &RawPtrToRef{Result: result, Type: t, X: x}
	case "ref_to_opaque_ptr":
		return &RefToOpaquePtr{Result: result, Type: t, X: x}
	case "opaque_ptr_to_ref":
		return &OpaquePtrToRef{Result: result, Type: t, X: x}
	case "upcast":
		return &CheckedCast{Result: result, Type: t, Kind: Upcast, X: x}
	case "downcast":
		return &CheckedCast{Result: result, Type: t, Kind: Downcast, X: x}
	case "load":
		return &Load{Result: result, Type: t, Addr: x}
	}
	panic("unreachable")
}

func (p *parser) valueList(lx *tokens) ([]ValueID, error) {
	var vs []ValueID
	for !lx.done() {
		if len(vs) > 0 {
			if err := lx.punct(","); err != nil {
				return nil, err
			}
		}
		v, err := p.valueRef(lx)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// ---- lexer ----

type tokenKind int

const (
	tkIdent tokenKind = iota
	tkNumber
	tkValue  // %name
	tkType   // $Name
	tkTag    // #Name
	tkAtName // @name
	tkPunct
)

type token struct {
	kind tokenKind
	text string
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

func lexLine(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '%' || c == '$' || c == '#' || c == '@':
			j := i + 1
			for j < len(s) && isWordByte(s[j]) {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("dangling %q", string(c))
			}
			kind := map[byte]tokenKind{'%': tkValue, '$': tkType, '#': tkTag, '@': tkAtName}[c]
			toks = append(toks, token{kind, s[i+1 : j]})
			i = j
		case c == '-' && i+1 < len(s) && s[i+1] == '>':
			toks = append(toks, token{tkPunct, "->"})
			i += 2
		case c == '-' || (c >= '0' && c <= '9'):
			j := i + 1
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			toks = append(toks, token{tkNumber, s[i:j]})
			i = j
		case isWordByte(c):
			j := i
			for j < len(s) && isWordByte(s[j]) {
				j++
			}
			toks = append(toks, token{tkIdent, s[i:j]})
			i = j
		case strings.IndexByte("(){},:=", c) >= 0:
			toks = append(toks, token{tkPunct, string(c)})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q", string(c))
		}
	}
	return toks, nil
}

func isWordByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// ---- token stream ----

type tokens struct {
	toks []token
	pos  int
}

func (t *tokens) done() bool { return t.pos >= len(t.toks) }

func (t *tokens) next() token {
	tok := t.toks[t.pos]
	t.pos++
	return tok
}

func (t *tokens) peekKind(kind tokenKind) bool {
	return t.pos < len(t.toks) && t.toks[t.pos].kind == kind
}

func (t *tokens) peekIdent(text string) bool {
	return t.pos < len(t.toks) && t.toks[t.pos].is(tkIdent, text)
}

func (t *tokens) peekPunct(text string) bool {
	return t.pos < len(t.toks) && t.toks[t.pos].is(tkPunct, text)
}

func (t *tokens) take(kind tokenKind, what string) (string, error) {
	if t.done() {
		return "", fmt.Errorf("expected %s at end of line", what)
	}
	tok := t.next()
	if tok.kind != kind {
		return "", fmt.Errorf("expected %s, found %q", what, tok.text)
	}
	return tok.text, nil
}

func (t *tokens) ident() (string, error)    { return t.take(tkIdent, "identifier") }
func (t *tokens) value() (string, error)    { return t.take(tkValue, "value") }
func (t *tokens) typeName() (string, error) { return t.take(tkType, "type") }
func (t *tokens) tag() (string, error)      { return t.take(tkTag, "tag") }
func (t *tokens) atName() (string, error)   { return t.take(tkAtName, "name") }

func (t *tokens) number() (int64, error) {
	text, err := t.take(tkNumber, "number")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", text)
	}
	return n, nil
}

func (t *tokens) punct(text string) error {
	if t.done() {
		return fmt.Errorf("expected %q at end of line", text)
	}
	tok := t.next()
	if !tok.is(tkPunct, text) {
		return fmt.Errorf("expected %q, found %q", text, tok.text)
	}
	return nil
}

func (t *tokens) end() error {
	if !t.done() {
		return fmt.Errorf("trailing %q", t.toks[t.pos].text)
	}
	return nil
}
