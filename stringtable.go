// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// StringTable is the frozen interning table every other section refers
// to by zero-based index. Order is significant.
type StringTable struct {
	Count   uint16
	Strings [][]byte
}

// NewStringTable validates that len(strings) fits in a uint16, then
// constructs a StringTable whose Count is len(strings).
func NewStringTable(strings [][]byte) (StringTable, error) {
	if len(strings) > 0xFFFF {
		return StringTable{}, newFieldErr(CountMismatch, "StringTable.Strings",
			"string table cannot exceed 65535 entries")
	}
	return StringTable{Count: uint16(len(strings)), Strings: strings}, nil
}

// Len returns the number of interned strings.
func (st StringTable) Len() int { return len(st.Strings) }

// Get returns the string at index, and whether index was in range.
func (st StringTable) Get(index uint16) ([]byte, bool) {
	if int(index) >= len(st.Strings) {
		return nil, false
	}
	return st.Strings[index], true
}

// CheckIndex returns a StringIndexOutOfRange error if index is not a
// valid reference into st, identifying the offending field by path.
func (st StringTable) CheckIndex(index uint16, field string) error {
	if int(index) >= len(st.Strings) {
		return newFieldErr(StringIndexOutOfRange, field, "string table index out of range")
	}
	return nil
}

// ParseStringTable reads the uint16 count prefix followed by that many
// wstrings.
func ParseStringTable(d *Decoder) (StringTable, error) {
	count, err := d.ReadU16()
	if err != nil {
		return StringTable{}, err
	}
	strings := make([][]byte, 0, count)
	for i := uint16(0); i < count; i++ {
		s, err := d.ReadWString()
		if err != nil {
			return StringTable{}, err
		}
		strings = append(strings, s)
	}
	return StringTable{Count: count, Strings: strings}, nil
}

// Dump writes the count prefix followed by each interned string.
func (st StringTable) Dump(e *Encoder) error {
	if int(st.Count) != len(st.Strings) {
		return newFieldErr(CountMismatch, "StringTable.Count", "count does not match string count")
	}
	if err := e.WriteU16(st.Count); err != nil {
		return err
	}
	for _, s := range st.Strings {
		if err := e.WriteWString(s); err != nil {
			return err
		}
	}
	return nil
}
