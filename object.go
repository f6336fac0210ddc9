// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

import (
	"bytes"
	"io"
)

// Object is a compiled Papyrus class: a name plus a self-delimiting
// ObjectData block. Size lets a reader skip an Object it does not need
// to interpret without understanding ObjectData's internal layout,
// mirroring how the teacher's data-directory entries bound a read to a
// known span before dispatching to a section-specific parser.
type Object struct {
	NameIndex uint16
	Size      uint32
	Data      ObjectData
}

// ParseObject reads the name index and size, then bounds a sub-reader
// to size-4 bytes and parses ObjectData from it. Parsing consumes
// exactly Size bytes in total, including the size field itself (spec
// invariant 6 / testable property 6).
func ParseObject(d *Decoder) (Object, error) {
	nameIdx, err := d.ReadU16()
	if err != nil {
		return Object{}, err
	}
	size, err := d.ReadU32()
	if err != nil {
		return Object{}, err
	}
	if size < 4 {
		return Object{}, &Error{
			Kind:    ObjectSizeMismatch,
			Offset:  d.Offset() - 4,
			Message: "object size must be at least 4 (the size field itself)",
		}
	}

	bodyLen := int64(size - 4)
	bounded := NewDecoder(io.LimitReader(d.r, bodyLen))
	data, err := ParseObjectData(bounded)
	if err != nil {
		// Translate offsets reported by the bounded sub-decoder back
		// into the outer stream's coordinate space.
		if pe, ok := err.(*Error); ok {
			pe.Offset += d.offset
		}
		d.offset += bounded.offset
		return Object{}, err
	}
	if bounded.offset != bodyLen {
		d.offset += bounded.offset
		return Object{}, &Error{
			Kind:    ObjectSizeMismatch,
			Offset:  d.Offset(),
			Message: "object data did not consume exactly size-4 bytes",
		}
	}
	d.offset += bounded.offset

	return Object{NameIndex: nameIdx, Size: size, Data: data}, nil
}

// Dump serializes Data to a scratch buffer to learn its length, then
// writes name index, the derived size, and the buffer, per spec §4.4
// and §9 ("Object size prefix").
func (o Object) Dump(e *Encoder) error {
	var scratch bytes.Buffer
	scratchEnc := NewEncoder(&scratch)
	if err := o.Data.Dump(scratchEnc); err != nil {
		return err
	}

	size := uint32(scratch.Len()) + 4
	if o.Size != 0 && o.Size != size {
		return newFieldErr(ObjectSizeMismatch, "Object.Size", "declared size does not match serialized object data length")
	}

	if err := e.WriteU16(o.NameIndex); err != nil {
		return err
	}
	if err := e.WriteU32(size); err != nil {
		return err
	}
	return e.write(scratch.Bytes())
}
