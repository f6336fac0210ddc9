// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// FunctionType enumerates the four debug-function kinds a DebugFunction
// can describe.
type FunctionType uint8

const (
	FunctionTypeMethod     FunctionType = 0
	FunctionTypeSetter     FunctionType = 1
	FunctionTypeGetter     FunctionType = 2
	FunctionTypeArrayOwner FunctionType = 3
)

func validFunctionType(t FunctionType) bool {
	return t <= FunctionTypeArrayOwner
}

// DebugFunction maps one compiled function's instructions back to their
// original source line numbers.
type DebugFunction struct {
	ObjectNameIndex    uint16
	StateNameIndex     uint16
	FunctionNameIndex  uint16
	FunctionType       FunctionType
	InstructionCount   uint16
	LineNumbers        []uint16
}

// NewDebugFunction validates ft's domain and that len(lineNumbers) fits
// in a uint16, then constructs a DebugFunction whose InstructionCount is
// len(lineNumbers).
func NewDebugFunction(objectIdx, stateIdx, functionIdx uint16, ft FunctionType, lineNumbers []uint16) (DebugFunction, error) {
	if !validFunctionType(ft) {
		return DebugFunction{}, newFieldErr(OptionalFieldMissing, "DebugFunction.FunctionType", "function type outside 0..3")
	}
	if len(lineNumbers) > 0xFFFF {
		return DebugFunction{}, newFieldErr(CountMismatch, "DebugFunction.LineNumbers", "too many line numbers for a uint16 count")
	}
	return DebugFunction{
		ObjectNameIndex:   objectIdx,
		StateNameIndex:    stateIdx,
		FunctionNameIndex: functionIdx,
		FunctionType:      ft,
		InstructionCount:  uint16(len(lineNumbers)),
		LineNumbers:       lineNumbers,
	}, nil
}

// ParseDebugFunction reads a DebugFunction record.
func ParseDebugFunction(d *Decoder) (DebugFunction, error) {
	objectIdx, err := d.ReadU16()
	if err != nil {
		return DebugFunction{}, err
	}
	stateIdx, err := d.ReadU16()
	if err != nil {
		return DebugFunction{}, err
	}
	functionIdx, err := d.ReadU16()
	if err != nil {
		return DebugFunction{}, err
	}
	ftRaw, err := d.ReadU8()
	if err != nil {
		return DebugFunction{}, err
	}
	ft := FunctionType(ftRaw)
	if !validFunctionType(ft) {
		return DebugFunction{}, &Error{
			Kind:    OptionalFieldMissing,
			Offset:  d.Offset() - 1,
			Value:   uint32(ftRaw),
			Message: "function type outside 0..3",
		}
	}
	instructionCount, err := d.ReadU16()
	if err != nil {
		return DebugFunction{}, err
	}
	lineNumbers := make([]uint16, 0, instructionCount)
	for i := uint16(0); i < instructionCount; i++ {
		ln, err := d.ReadU16()
		if err != nil {
			return DebugFunction{}, err
		}
		lineNumbers = append(lineNumbers, ln)
	}

	return DebugFunction{
		ObjectNameIndex:   objectIdx,
		StateNameIndex:    stateIdx,
		FunctionNameIndex: functionIdx,
		FunctionType:      ft,
		InstructionCount:  instructionCount,
		LineNumbers:       lineNumbers,
	}, nil
}

// Dump writes a DebugFunction record.
func (df DebugFunction) Dump(e *Encoder) error {
	if int(df.InstructionCount) != len(df.LineNumbers) {
		return newFieldErr(CountMismatch, "DebugFunction.InstructionCount", "instruction count does not match line number count")
	}
	if !validFunctionType(df.FunctionType) {
		return newFieldErr(OptionalFieldMissing, "DebugFunction.FunctionType", "function type outside 0..3")
	}
	if err := e.WriteU16(df.ObjectNameIndex); err != nil {
		return err
	}
	if err := e.WriteU16(df.StateNameIndex); err != nil {
		return err
	}
	if err := e.WriteU16(df.FunctionNameIndex); err != nil {
		return err
	}
	if err := e.WriteU8(uint8(df.FunctionType)); err != nil {
		return err
	}
	if err := e.WriteU16(df.InstructionCount); err != nil {
		return err
	}
	for _, ln := range df.LineNumbers {
		if err := e.WriteU16(ln); err != nil {
			return err
		}
	}
	return nil
}
