// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// VariableType names a parameter or local's type by a pair of
// string-table indices: the variable's own name and its type name.
type VariableType struct {
	NameIndex     uint16
	TypeNameIndex uint16
}

// ParseVariableType reads a VariableType record.
func ParseVariableType(d *Decoder) (VariableType, error) {
	nameIdx, err := d.ReadU16()
	if err != nil {
		return VariableType{}, err
	}
	typeIdx, err := d.ReadU16()
	if err != nil {
		return VariableType{}, err
	}
	return VariableType{NameIndex: nameIdx, TypeNameIndex: typeIdx}, nil
}

// Dump writes a VariableType record.
func (vt VariableType) Dump(e *Encoder) error {
	if err := e.WriteU16(vt.NameIndex); err != nil {
		return err
	}
	return e.WriteU16(vt.TypeNameIndex)
}
