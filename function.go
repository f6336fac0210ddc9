// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

const (
	functionFlagGlobal uint8 = 1 << 0
	functionFlagNative uint8 = 1 << 1
)

// Function is a compiled Papyrus function body: its signature, locals,
// and instructions.
type Function struct {
	ReturnTypeIndex uint16
	DocstringIndex  uint16
	UserFlags       uint32
	Flags           uint8
	Params          []VariableType
	Locals          []VariableType
	Instructions    []Instruction
}

// IsGlobal reports whether the function-global flag bit is set.
func (f Function) IsGlobal() bool { return f.Flags&functionFlagGlobal != 0 }

// IsNative reports whether the native (no-bytecode) flag bit is set.
func (f Function) IsNative() bool { return f.Flags&functionFlagNative != 0 }

// ParseFunction reads a Function record: the fixed prelude, then
// counted params, locals, and instructions.
func ParseFunction(d *Decoder) (Function, error) {
	returnType, err := d.ReadU16()
	if err != nil {
		return Function{}, err
	}
	docstring, err := d.ReadU16()
	if err != nil {
		return Function{}, err
	}
	userFlags, err := d.ReadU32()
	if err != nil {
		return Function{}, err
	}
	flags, err := d.ReadU8()
	if err != nil {
		return Function{}, err
	}

	numParams, err := d.ReadU16()
	if err != nil {
		return Function{}, err
	}
	params := make([]VariableType, 0, numParams)
	for i := uint16(0); i < numParams; i++ {
		p, err := ParseVariableType(d)
		if err != nil {
			return Function{}, err
		}
		params = append(params, p)
	}

	numLocals, err := d.ReadU16()
	if err != nil {
		return Function{}, err
	}
	locals := make([]VariableType, 0, numLocals)
	for i := uint16(0); i < numLocals; i++ {
		l, err := ParseVariableType(d)
		if err != nil {
			return Function{}, err
		}
		locals = append(locals, l)
	}

	numInstructions, err := d.ReadU16()
	if err != nil {
		return Function{}, err
	}
	instructions := make([]Instruction, 0, numInstructions)
	for i := uint16(0); i < numInstructions; i++ {
		inst, err := ParseInstruction(d)
		if err != nil {
			return Function{}, err
		}
		instructions = append(instructions, inst)
	}

	return Function{
		ReturnTypeIndex: returnType,
		DocstringIndex:  docstring,
		UserFlags:       userFlags,
		Flags:           flags,
		Params:          params,
		Locals:          locals,
		Instructions:    instructions,
	}, nil
}

// Dump writes a Function record: the fixed prelude, then counted
// params, locals, and instructions.
func (f Function) Dump(e *Encoder) error {
	if len(f.Params) > 0xFFFF || len(f.Locals) > 0xFFFF || len(f.Instructions) > 0xFFFF {
		return newFieldErr(CountMismatch, "Function", "a counted list exceeds uint16 length")
	}
	if err := e.WriteU16(f.ReturnTypeIndex); err != nil {
		return err
	}
	if err := e.WriteU16(f.DocstringIndex); err != nil {
		return err
	}
	if err := e.WriteU32(f.UserFlags); err != nil {
		return err
	}
	if err := e.WriteU8(f.Flags); err != nil {
		return err
	}

	if err := e.WriteU16(uint16(len(f.Params))); err != nil {
		return err
	}
	for _, p := range f.Params {
		if err := p.Dump(e); err != nil {
			return err
		}
	}

	if err := e.WriteU16(uint16(len(f.Locals))); err != nil {
		return err
	}
	for _, l := range f.Locals {
		if err := l.Dump(e); err != nil {
			return err
		}
	}

	if err := e.WriteU16(uint16(len(f.Instructions))); err != nil {
		return err
	}
	for _, inst := range f.Instructions {
		if err := inst.Dump(e); err != nil {
			return err
		}
	}
	return nil
}
