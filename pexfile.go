// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

import (
	"bytes"
	"io"
)

// PexFile is the root value of a decoded PEX file: a header, the
// interned string table, optional debug info, the user-flag
// declarations, and the sequence of compiled objects.
type PexFile struct {
	Header      Header
	Strings     StringTable
	DebugInfo   DebugInfo
	UserFlags   []UserFlag
	Objects     []Object
}

// Parse reads the top-level sequence
// [Header, StringTable, DebugInfo, user_flag_count, UserFlag*,
// object_count, Object*] from r, failing fast on the first structural
// error.
func Parse(r io.Reader) (*PexFile, error) {
	d := NewDecoder(r)

	header, err := ParseHeader(d)
	if err != nil {
		return nil, err
	}

	strings, err := ParseStringTable(d)
	if err != nil {
		return nil, err
	}

	debugInfo, err := ParseDebugInfo(d)
	if err != nil {
		return nil, err
	}

	userFlagCount, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	userFlags := make([]UserFlag, 0, userFlagCount)
	for i := uint16(0); i < userFlagCount; i++ {
		uf, err := ParseUserFlag(d)
		if err != nil {
			return nil, err
		}
		userFlags = append(userFlags, uf)
	}

	objectCount, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	objects := make([]Object, 0, objectCount)
	for i := uint16(0); i < objectCount; i++ {
		obj, err := ParseObject(d)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}

	return &PexFile{
		Header:    header,
		Strings:   strings,
		DebugInfo: debugInfo,
		UserFlags: userFlags,
		Objects:   objects,
	}, nil
}

// Dump re-checks every length and string-index invariant across the
// whole tree before writing any byte (spec §4.5): the top-level sequence
// is serialized to a scratch buffer first, and w receives the bytes only
// once every section has been encoded without error.
func (pf *PexFile) Dump(w io.Writer) error {
	if err := pf.Header.validate(); err != nil {
		return err
	}
	if int(pf.Strings.Count) != len(pf.Strings.Strings) {
		return newFieldErr(CountMismatch, "PexFile.Strings.Count", "count does not match string count")
	}
	if err := pf.DebugInfo.validate(); err != nil {
		return err
	}
	if err := pf.checkStringIndices(); err != nil {
		return err
	}

	var scratch bytes.Buffer
	e := NewEncoder(&scratch)

	if err := pf.Header.Dump(e); err != nil {
		return err
	}
	if err := pf.Strings.Dump(e); err != nil {
		return err
	}
	if err := pf.DebugInfo.Dump(e); err != nil {
		return err
	}

	if len(pf.UserFlags) > 0xFFFF {
		return newFieldErr(CountMismatch, "PexFile.UserFlags", "too many user flags for a uint16 count")
	}
	if err := e.WriteU16(uint16(len(pf.UserFlags))); err != nil {
		return err
	}
	for _, uf := range pf.UserFlags {
		if err := uf.Dump(e); err != nil {
			return err
		}
	}

	if len(pf.Objects) > 0xFFFF {
		return newFieldErr(CountMismatch, "PexFile.Objects", "too many objects for a uint16 count")
	}
	if err := e.WriteU16(uint16(len(pf.Objects))); err != nil {
		return err
	}
	for _, obj := range pf.Objects {
		if err := obj.Dump(e); err != nil {
			return err
		}
	}

	_, err := w.Write(scratch.Bytes())
	return err
}

// checkStringIndices walks every string-table reference reachable from
// pf and confirms it is in range, so Dump can fail before any byte is
// written rather than partway through (spec §4.5).
func (pf *PexFile) checkStringIndices() error {
	n := pf.Strings.Count
	check := func(idx uint16, field string) error {
		if idx >= n {
			return newFieldErr(StringIndexOutOfRange, field, "string table index out of range")
		}
		return nil
	}
	checkData := func(v VariableData, field string) error {
		if idx, ok := v.StringIndex(); ok {
			return check(idx, field)
		}
		return nil
	}
	checkVarType := func(vt VariableType, field string) error {
		if err := check(vt.NameIndex, field+".NameIndex"); err != nil {
			return err
		}
		return check(vt.TypeNameIndex, field+".TypeNameIndex")
	}
	checkInstruction := func(inst Instruction, field string) error {
		for i, op := range inst.Operands {
			if err := checkData(op, field); err != nil {
				return err
			}
			_ = i
		}
		return nil
	}
	checkFunction := func(fn Function, field string) error {
		if err := check(fn.ReturnTypeIndex, field+".ReturnTypeIndex"); err != nil {
			return err
		}
		if err := check(fn.DocstringIndex, field+".DocstringIndex"); err != nil {
			return err
		}
		for i, p := range fn.Params {
			if err := checkVarType(p, field+".Params"); err != nil {
				return err
			}
			_ = i
		}
		for i, l := range fn.Locals {
			if err := checkVarType(l, field+".Locals"); err != nil {
				return err
			}
			_ = i
		}
		for i, inst := range fn.Instructions {
			if err := checkInstruction(inst, field+".Instructions"); err != nil {
				return err
			}
			_ = i
		}
		return nil
	}

	for _, uf := range pf.UserFlags {
		if err := check(uf.NameIndex, "UserFlag.NameIndex"); err != nil {
			return err
		}
	}

	if pf.DebugInfo.Body != nil {
		for _, fn := range pf.DebugInfo.Body.Functions {
			if err := check(fn.ObjectNameIndex, "DebugFunction.ObjectNameIndex"); err != nil {
				return err
			}
			if err := check(fn.StateNameIndex, "DebugFunction.StateNameIndex"); err != nil {
				return err
			}
			if err := check(fn.FunctionNameIndex, "DebugFunction.FunctionNameIndex"); err != nil {
				return err
			}
		}
	}

	for _, obj := range pf.Objects {
		if err := check(obj.NameIndex, "Object.NameIndex"); err != nil {
			return err
		}
		od := obj.Data
		if err := check(od.ParentClassNameIndex, "ObjectData.ParentClassNameIndex"); err != nil {
			return err
		}
		if err := check(od.DocstringIndex, "ObjectData.DocstringIndex"); err != nil {
			return err
		}
		if err := check(od.AutoStateNameIndex, "ObjectData.AutoStateNameIndex"); err != nil {
			return err
		}
		for _, v := range od.Variables {
			if err := check(v.NameIndex, "Variable.NameIndex"); err != nil {
				return err
			}
			if err := check(v.TypeNameIndex, "Variable.TypeNameIndex"); err != nil {
				return err
			}
			if err := checkData(v.Value, "Variable.Value"); err != nil {
				return err
			}
		}
		for _, p := range od.Properties {
			if err := check(p.NameIndex, "Property.NameIndex"); err != nil {
				return err
			}
			if err := check(p.TypeNameIndex, "Property.TypeNameIndex"); err != nil {
				return err
			}
			if err := check(p.DocstringIndex, "Property.DocstringIndex"); err != nil {
				return err
			}
			if err := check(p.AutovarNameIndex, "Property.AutovarNameIndex"); err != nil {
				return err
			}
			if p.Reader != nil {
				if err := checkFunction(*p.Reader, "Property.Reader"); err != nil {
					return err
				}
			}
			if p.Writer != nil {
				if err := checkFunction(*p.Writer, "Property.Writer"); err != nil {
					return err
				}
			}
		}
		for _, st := range od.States {
			if err := check(st.NameIndex, "State.NameIndex"); err != nil {
				return err
			}
			for _, nf := range st.Functions {
				if err := check(nf.NameIndex, "NamedFunction.NameIndex"); err != nil {
					return err
				}
				if err := checkFunction(nf.Function, "NamedFunction.Function"); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
