// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// State is a named collection of functions; one state is active at
// runtime per object. The empty string names the default state.
type State struct {
	NameIndex uint16
	Functions []NamedFunction
}

// ParseState reads the name index, then a counted list of NamedFunction.
func ParseState(d *Decoder) (State, error) {
	nameIdx, err := d.ReadU16()
	if err != nil {
		return State{}, err
	}
	numFunctions, err := d.ReadU16()
	if err != nil {
		return State{}, err
	}
	functions := make([]NamedFunction, 0, numFunctions)
	for i := uint16(0); i < numFunctions; i++ {
		fn, err := ParseNamedFunction(d)
		if err != nil {
			return State{}, err
		}
		functions = append(functions, fn)
	}
	return State{NameIndex: nameIdx, Functions: functions}, nil
}

// Dump writes the name index, then the counted function list.
func (s State) Dump(e *Encoder) error {
	if len(s.Functions) > 0xFFFF {
		return newFieldErr(CountMismatch, "State.Functions", "too many functions for a uint16 count")
	}
	if err := e.WriteU16(s.NameIndex); err != nil {
		return err
	}
	if err := e.WriteU16(uint16(len(s.Functions))); err != nil {
		return err
	}
	for _, fn := range s.Functions {
		if err := fn.Dump(e); err != nil {
			return err
		}
	}
	return nil
}
