// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// NamedFunction pairs a Function with its name index within a State.
type NamedFunction struct {
	NameIndex uint16
	Function  Function
}

// ParseNamedFunction reads a NamedFunction record.
func ParseNamedFunction(d *Decoder) (NamedFunction, error) {
	nameIdx, err := d.ReadU16()
	if err != nil {
		return NamedFunction{}, err
	}
	fn, err := ParseFunction(d)
	if err != nil {
		return NamedFunction{}, err
	}
	return NamedFunction{NameIndex: nameIdx, Function: fn}, nil
}

// Dump writes a NamedFunction record.
func (nf NamedFunction) Dump(e *Encoder) error {
	if err := e.WriteU16(nf.NameIndex); err != nil {
		return err
	}
	return nf.Function.Dump(e)
}
