package ir

// ResultOf returns the value an instruction defines, or InvalidValue for
// instructions with no result.
func ResultOf(in Instr) ValueID {
	switch i := in.(type) {
	case *MakeTuple:
		return i.Result
	case *TupleExtract:
		return i.Result
	case *MakeStruct:
		return i.Result
	case *FieldExtract:
		return i.Result
	case *MakeVariant:
		return i.Result
	case *AddrToPtr:
		return i.Result
	case *PtrToAddr:
		return i.Result
	case *RefToRawPtr:
		return i.Result
	case *RawPtrToRef:
		return i.Result
	case *RefToOpaquePtr:
		return i.Result
	case *OpaquePtrToRef:
		return i.Result
	case *CheckedCast:
		return i.Result
	case *IntLit:
		return i.Result
	case *BinOp:
		return i.Result
	case *Call:
		return i.Result
	case *Load:
		return i.Result
	case *Store:
		return InvalidValue
	}
	return InvalidValue
}

// TypeOfInstr returns the result type of an instruction, or NoType for
// instructions with no result.
func TypeOfInstr(in Instr) TypeID {
	switch i := in.(type) {
	case *MakeTuple:
		return i.Type
	case *TupleExtract:
		return i.Type
	case *MakeStruct:
		return i.Type
	case *FieldExtract:
		return i.Type
	case *MakeVariant:
		return i.Type
	case *AddrToPtr:
		return i.Type
	case *PtrToAddr:
		return i.Type
	case *RefToRawPtr:
		return i.Type
	case *RawPtrToRef:
		return i.Type
	case *RefToOpaquePtr:
		return i.Type
	case *OpaquePtrToRef:
		return i.Type
	case *CheckedCast:
		return i.Type
	case *IntLit:
		return i.Type
	case *BinOp:
		return i.Type
	case *Call:
		return i.Type
	case *Load:
		return i.Type
	case *Store:
		return NoType
	}
	return NoType
}

// Operands appends the operand values of in to dst and returns it.
func Operands(dst []ValueID, in Instr) []ValueID {
	switch i := in.(type) {
	case *MakeTuple:
		return append(dst, i.Elems...)
	case *TupleExtract:
		return append(dst, i.Tuple)
	case *MakeStruct:
		return append(dst, i.Fields...)
	case *FieldExtract:
		return append(dst, i.Base)
	case *MakeVariant:
		if i.HasPayload {
			return append(dst, i.Payload)
		}
		return dst
	case *AddrToPtr:
		return append(dst, i.X)
	case *PtrToAddr:
		return append(dst, i.X)
	case *RefToRawPtr:
		return append(dst, i.X)
	case *RawPtrToRef:
		return append(dst, i.X)
	case *RefToOpaquePtr:
		return append(dst, i.X)
	case *OpaquePtrToRef:
		return append(dst, i.X)
	case *CheckedCast:
		return append(dst, i.X)
	case *IntLit:
		return dst
	case *BinOp:
		return append(dst, i.L, i.R)
	case *Call:
		return append(dst, i.Args...)
	case *Load:
		return append(dst, i.Addr)
	case *Store:
		return append(dst, i.Addr, i.Value)
	}
	return dst
}

// RemapOperands rewrites every operand of in through f, in place.
func RemapOperands(in Instr, f func(ValueID) ValueID) {
	switch i := in.(type) {
	case *MakeTuple:
		remapAll(i.Elems, f)
	case *TupleExtract:
		i.Tuple = f(i.Tuple)
	case *MakeStruct:
		remapAll(i.Fields, f)
	case *FieldExtract:
		i.Base = f(i.Base)
	case *MakeVariant:
		if i.HasPayload {
			i.Payload = f(i.Payload)
		}
	case *AddrToPtr:
		i.X = f(i.X)
	case *PtrToAddr:
		i.X = f(i.X)
	case *RefToRawPtr:
		i.X = f(i.X)
	case *RawPtrToRef:
		i.X = f(i.X)
	case *RefToOpaquePtr:
		i.X = f(i.X)
	case *OpaquePtrToRef:
		i.X = f(i.X)
	case *CheckedCast:
		i.X = f(i.X)
	case *BinOp:
		i.L = f(i.L)
		i.R = f(i.R)
	case *Call:
		remapAll(i.Args, f)
	case *Load:
		i.Addr = f(i.Addr)
	case *Store:
		i.Addr = f(i.Addr)
		i.Value = f(i.Value)
	}
}

// TermUses appends the values a terminator reads to dst and returns it.
func TermUses(dst []ValueID, t Term) []ValueID {
	switch tt := t.(type) {
	case *Ret:
		if tt.HasValue {
			return append(dst, tt.Value)
		}
	case *CondBr:
		return append(dst, tt.Cond)
	case *SwitchTag:
		return append(dst, tt.Subject)
	}
	return dst
}

// RemapTerm rewrites every value a terminator reads through f, in place.
func RemapTerm(t Term, f func(ValueID) ValueID) {
	switch tt := t.(type) {
	case *Ret:
		if tt.HasValue {
			tt.Value = f(tt.Value)
		}
	case *CondBr:
		tt.Cond = f(tt.Cond)
	case *SwitchTag:
		tt.Subject = f(tt.Subject)
	}
}

// Successors appends the blocks a terminator can branch to.
func Successors(dst []BlockID, t Term) []BlockID {
	switch tt := t.(type) {
	case *Br:
		return append(dst, tt.Target)
	case *CondBr:
		return append(dst, tt.Then, tt.Else)
	case *SwitchTag:
		for _, c := range tt.Cases {
			dst = append(dst, c.Target)
		}
		if tt.HasDefault {
			dst = append(dst, tt.Default)
		}
		return dst
	}
	return dst
}

func remapAll(vs []ValueID, f func(ValueID) ValueID) {
	for n, v := range vs {
		vs[n] = f(v)
	}
}
