// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// Instruction is a single Papyrus VM bytecode instruction: an opcode
// plus the operand list its arity-table entry demands (§4.3).
type Instruction struct {
	Opcode   Opcode
	Operands []VariableData
}

// NewInstruction validates operands against opcode's arity-table entry
// and, on success, returns the constructed Instruction.
func NewInstruction(opcode Opcode, operands []VariableData) (Instruction, error) {
	ar, ok := opcodeArity[opcode]
	if !ok {
		return Instruction{}, &Error{
			Kind:    UnknownOpcode,
			Value:   uint32(opcode),
			Message: "opcode has no arity-table entry",
		}
	}
	if ar.variadic {
		if len(operands) < ar.fixed+1 {
			return Instruction{}, newFieldErr(CountMismatch, "Instruction.Operands",
				"variadic instruction missing its operand-count operand")
		}
		n, ok := operands[ar.fixed].Uint32()
		if !ok {
			return Instruction{}, newFieldErr(TagPayloadMismatch, "Instruction.Operands",
				"variadic tail count operand must be an integer VariableData")
		}
		want := ar.fixed + 1 + int(n)
		if len(operands) != want {
			return Instruction{}, newFieldErr(CountMismatch, "Instruction.Operands",
				"variadic operand count does not match declared tail length")
		}
	} else if len(operands) != ar.fixed {
		return Instruction{}, newFieldErr(CountMismatch, "Instruction.Operands",
			"operand count does not match opcode arity")
	}
	return Instruction{Opcode: opcode, Operands: operands}, nil
}

// ParseInstruction reads an opcode byte, looks up its arity, and reads
// the resulting fixed-plus-variadic operand list.
func ParseInstruction(d *Decoder) (Instruction, error) {
	opByte, err := d.ReadU8()
	if err != nil {
		return Instruction{}, err
	}
	opcode := Opcode(opByte)
	ar, ok := opcodeArity[opcode]
	if !ok {
		return Instruction{}, &Error{
			Kind:    UnknownOpcode,
			Offset:  d.Offset() - 1,
			Value:   uint32(opByte),
			Message: "opcode has no arity-table entry",
		}
	}

	operands := make([]VariableData, 0, ar.fixed+1)
	for i := 0; i < ar.fixed; i++ {
		v, err := ParseVariableData(d)
		if err != nil {
			return Instruction{}, err
		}
		operands = append(operands, v)
	}

	if ar.variadic {
		countOperand, err := ParseVariableData(d)
		if err != nil {
			return Instruction{}, err
		}
		n, ok := countOperand.Uint32()
		if !ok {
			return Instruction{}, &Error{
				Kind:    TagPayloadMismatch,
				Offset:  d.Offset(),
				Message: "variadic tail count operand must be an integer VariableData",
			}
		}
		operands = append(operands, countOperand)
		for i := uint32(0); i < n; i++ {
			v, err := ParseVariableData(d)
			if err != nil {
				return Instruction{}, err
			}
			operands = append(operands, v)
		}
	}

	return Instruction{Opcode: opcode, Operands: operands}, nil
}

// Dump writes the opcode byte followed by the operand list in order. It
// re-runs NewInstruction's arity check first, so an Instruction whose
// Operands were changed directly after construction is rejected rather
// than written; values from NewInstruction/ParseInstruction always pass.
func (i Instruction) Dump(e *Encoder) error {
	if _, err := NewInstruction(i.Opcode, i.Operands); err != nil {
		return err
	}
	if err := e.WriteU8(uint8(i.Opcode)); err != nil {
		return err
	}
	for _, operand := range i.Operands {
		if err := operand.Dump(e); err != nil {
			return err
		}
	}
	return nil
}
