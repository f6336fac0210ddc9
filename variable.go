// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// Variable is one compiled-class member variable, with its declared
// name, type, user flags, and initial value.
type Variable struct {
	NameIndex     uint16
	TypeNameIndex uint16
	UserFlags     uint32
	Value         VariableData
}

// ParseVariable reads a Variable record.
func ParseVariable(d *Decoder) (Variable, error) {
	nameIdx, err := d.ReadU16()
	if err != nil {
		return Variable{}, err
	}
	typeIdx, err := d.ReadU16()
	if err != nil {
		return Variable{}, err
	}
	userFlags, err := d.ReadU32()
	if err != nil {
		return Variable{}, err
	}
	value, err := ParseVariableData(d)
	if err != nil {
		return Variable{}, err
	}
	return Variable{
		NameIndex:     nameIdx,
		TypeNameIndex: typeIdx,
		UserFlags:     userFlags,
		Value:         value,
	}, nil
}

// Dump writes a Variable record.
func (v Variable) Dump(e *Encoder) error {
	if err := e.WriteU16(v.NameIndex); err != nil {
		return err
	}
	if err := e.WriteU16(v.TypeNameIndex); err != nil {
		return err
	}
	if err := e.WriteU32(v.UserFlags); err != nil {
		return err
	}
	return v.Value.Dump(e)
}
