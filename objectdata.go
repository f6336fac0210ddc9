// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// ObjectData is the body of a compiled class: its parent, docstring,
// user flags, default state, and its variables/properties/states.
type ObjectData struct {
	ParentClassNameIndex uint16
	DocstringIndex       uint16
	UserFlags            uint32
	AutoStateNameIndex   uint16
	Variables            []Variable
	Properties           []Property
	States               []State
}

// ParseObjectData reads the fixed prelude, then counted variables,
// properties, and states, in that order.
func ParseObjectData(d *Decoder) (ObjectData, error) {
	parentIdx, err := d.ReadU16()
	if err != nil {
		return ObjectData{}, err
	}
	docstringIdx, err := d.ReadU16()
	if err != nil {
		return ObjectData{}, err
	}
	userFlags, err := d.ReadU32()
	if err != nil {
		return ObjectData{}, err
	}
	autoStateIdx, err := d.ReadU16()
	if err != nil {
		return ObjectData{}, err
	}

	numVariables, err := d.ReadU16()
	if err != nil {
		return ObjectData{}, err
	}
	variables := make([]Variable, 0, numVariables)
	for i := uint16(0); i < numVariables; i++ {
		v, err := ParseVariable(d)
		if err != nil {
			return ObjectData{}, err
		}
		variables = append(variables, v)
	}

	numProperties, err := d.ReadU16()
	if err != nil {
		return ObjectData{}, err
	}
	properties := make([]Property, 0, numProperties)
	for i := uint16(0); i < numProperties; i++ {
		p, err := ParseProperty(d)
		if err != nil {
			return ObjectData{}, err
		}
		properties = append(properties, p)
	}

	numStates, err := d.ReadU16()
	if err != nil {
		return ObjectData{}, err
	}
	states := make([]State, 0, numStates)
	for i := uint16(0); i < numStates; i++ {
		s, err := ParseState(d)
		if err != nil {
			return ObjectData{}, err
		}
		states = append(states, s)
	}

	return ObjectData{
		ParentClassNameIndex: parentIdx,
		DocstringIndex:       docstringIdx,
		UserFlags:            userFlags,
		AutoStateNameIndex:   autoStateIdx,
		Variables:            variables,
		Properties:           properties,
		States:               states,
	}, nil
}

// Dump writes the fixed prelude, then counted variables, properties,
// and states, in that order.
func (od ObjectData) Dump(e *Encoder) error {
	if len(od.Variables) > 0xFFFF || len(od.Properties) > 0xFFFF || len(od.States) > 0xFFFF {
		return newFieldErr(CountMismatch, "ObjectData", "a counted list exceeds uint16 length")
	}
	if err := e.WriteU16(od.ParentClassNameIndex); err != nil {
		return err
	}
	if err := e.WriteU16(od.DocstringIndex); err != nil {
		return err
	}
	if err := e.WriteU32(od.UserFlags); err != nil {
		return err
	}
	if err := e.WriteU16(od.AutoStateNameIndex); err != nil {
		return err
	}

	if err := e.WriteU16(uint16(len(od.Variables))); err != nil {
		return err
	}
	for _, v := range od.Variables {
		if err := v.Dump(e); err != nil {
			return err
		}
	}

	if err := e.WriteU16(uint16(len(od.Properties))); err != nil {
		return err
	}
	for _, p := range od.Properties {
		if err := p.Dump(e); err != nil {
			return err
		}
	}

	if err := e.WriteU16(uint16(len(od.States))); err != nil {
		return err
	}
	for _, s := range od.States {
		if err := s.Dump(e); err != nil {
			return err
		}
	}
	return nil
}
