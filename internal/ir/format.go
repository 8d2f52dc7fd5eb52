package ir

import (
	"fmt"
	"strings"
)

// FormatModule returns the textual form of a SIR module. The output parses
// back through ParseModule.
func FormatModule(types *TypeTable, mod *Module) string {
	if mod == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n", mod.Name)
	for _, fn := range mod.Functions {
		b.WriteString("\n")
		writeFunction(&b, types, fn)
	}
	return b.String()
}

// FormatFunction returns the textual form of a single function.
func FormatFunction(types *TypeTable, fn *Function) string {
	var b strings.Builder
	writeFunction(&b, types, fn)
	return b.String()
}

func writeFunction(b *strings.Builder, types *TypeTable, fn *Function) {
	fmt.Fprintf(b, "fn @%s(", fn.Name)
	for i, p := range fn.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s: %s", formatValue(p.ID), formatType(types, p.Type))
	}
	b.WriteString(")")
	if fn.Return != NoType {
		fmt.Fprintf(b, " -> %s", formatType(types, fn.Return))
	}
	b.WriteString(" {\n")

	for _, blk := range fn.Blocks {
		fmt.Fprintf(b, "%s:\n", blockName(blk.ID, blk.Label))
		for _, in := range blk.Instrs {
			fmt.Fprintf(b, "  %s\n", formatInstr(types, in))
		}
		if blk.Term != nil {
			fmt.Fprintf(b, "  %s\n", formatTerm(blockLabeler(fn), blk.Term))
		}
	}
	b.WriteString("}\n")
}

func formatInstr(types *TypeTable, in Instr) string {
	switch i := in.(type) {
	case *MakeTuple:
		return assign(i.Result, fmt.Sprintf("make_tuple %s%s", formatType(types, i.Type), formatOperands(i.Elems)))
	case *TupleExtract:
		return assign(i.Result, fmt.Sprintf("tuple_extract %s %s, %d", formatType(types, i.Type), formatValue(i.Tuple), i.Index))
	case *MakeStruct:
		return assign(i.Result, fmt.Sprintf("make_struct %s%s", formatType(types, i.Type), formatOperands(i.Fields)))
	case *FieldExtract:
		return assign(i.Result, fmt.Sprintf("field_extract %s %s, %d", formatType(types, i.Type), formatValue(i.Base), i.Index))
	case *MakeVariant:
		if i.HasPayload {
			return assign(i.Result, fmt.Sprintf("make_variant %s #%s, %s", formatType(types, i.Type), i.Tag, formatValue(i.Payload)))
		}
		return assign(i.Result, fmt.Sprintf("make_variant %s #%s", formatType(types, i.Type), i.Tag))
	case *AddrToPtr:
		return assign(i.Result, fmt.Sprintf("addr_to_ptr %s %s", formatType(types, i.Type), formatValue(i.X)))
	case *PtrToAddr:
		return assign(i.Result, fmt.Sprintf("ptr_to_addr %s %s", formatType(types, i.Type), formatValue(i.X)))
	case *RefToRawPtr:
		return assign(i.Result, fmt.Sprintf("ref_to_raw_ptr %s %s", formatType(types, i.Type), formatValue(i.X)))
	case *RawPtrToRef:
		return assign(i.Result, fmt.Sprintf("raw_ptr_to_ref %s %s", formatType(types, i.Type), formatValue(i.X)))
	case *RefToOpaquePtr:
		return assign(i.Result, fmt.Sprintf("ref_to_opaque_ptr %s %s", formatType(types, i.Type), formatValue(i.X)))
	case *OpaquePtrToRef:
		return assign(i.Result, fmt.Sprintf("opaque_ptr_to_ref %s %s", formatType(types, i.Type), formatValue(i.X)))
	case *CheckedCast:
		return assign(i.Result, fmt.Sprintf("%s %s %s", i.Kind, formatType(types, i.Type), formatValue(i.X)))
	case *IntLit:
		return assign(i.Result, fmt.Sprintf("int_lit i%d %d", i.Width, i.Value))
	case *BinOp:
		return assign(i.Result, fmt.Sprintf("binop %s %s %s, %s", i.Op, formatType(types, i.Type), formatValue(i.L), formatValue(i.R)))
	case *Call:
		return assign(i.Result, fmt.Sprintf("call %s @%s%s", formatType(types, i.Type), i.Callee, formatOperands(i.Args)))
	case *Load:
		return assign(i.Result, fmt.Sprintf("load %s %s", formatType(types, i.Type), formatValue(i.Addr)))
	case *Store:
		return fmt.Sprintf("store %s, %s", formatValue(i.Addr), formatValue(i.Value))
	}
	return fmt.Sprintf("<unknown instr %T>", in)
}

func formatTerm(block func(BlockID) string, t Term) string {
	switch tt := t.(type) {
	case *Ret:
		if tt.HasValue {
			return fmt.Sprintf("ret %s", formatValue(tt.Value))
		}
		return "ret"
	case *Br:
		return fmt.Sprintf("br %s", block(tt.Target))
	case *CondBr:
		return fmt.Sprintf("cond_br %s, %s, %s", formatValue(tt.Cond), block(tt.Then), block(tt.Else))
	case *SwitchTag:
		var b strings.Builder
		fmt.Fprintf(&b, "switch_tag %s", formatValue(tt.Subject))
		for _, c := range tt.Cases {
			fmt.Fprintf(&b, ", #%s: %s", c.Tag, block(c.Target))
		}
		if tt.HasDefault {
			fmt.Fprintf(&b, ", default: %s", block(tt.Default))
		}
		return b.String()
	case *Unreachable:
		return "unreachable"
	}
	return fmt.Sprintf("<unknown term %T>", t)
}

func blockLabeler(fn *Function) func(BlockID) string {
	return func(id BlockID) string {
		if blk := fn.BlockByID(id); blk != nil {
			return blockName(blk.ID, blk.Label)
		}
		return fmt.Sprintf("bb%d", id)
	}
}

func blockName(id BlockID, label string) string {
	if label != "" {
		return label
	}
	return fmt.Sprintf("bb%d", id)
}

func assign(r ValueID, rhs string) string {
	return fmt.Sprintf("%s = %s", formatValue(r), rhs)
}

func formatValue(v ValueID) string {
	return fmt.Sprintf("%%%d", v)
}

func formatType(types *TypeTable, t TypeID) string {
	if name := types.Name(t); name != "" {
		return "$" + name
	}
	return "$?"
}

func formatOperands(vs []ValueID) string {
	if len(vs) == 0 {
		return ""
	}
	parts := make([]string, len(vs))
	for n, v := range vs {
		parts[n] = formatValue(v)
	}
	return " " + strings.Join(parts, ", ")
}
