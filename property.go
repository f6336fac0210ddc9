// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

const (
	propertyFlagRead    uint8 = 1 << 0
	propertyFlagWrite   uint8 = 1 << 1
	propertyFlagAutovar uint8 = 1 << 2
)

// Property is a compiled-class property: its signature plus, depending
// on Flags, a backing autovar name or explicit reader/writer Function
// sub-records (spec §4.4's conditional-sub-record rule, modeled per
// DESIGN NOTES §9 as the union of {Autovar, ReadOnly, WriteOnly,
// ReadWrite} that the raw flag bits plus sub-record presence jointly
// describe).
type Property struct {
	NameIndex        uint16
	TypeNameIndex    uint16
	DocstringIndex   uint16
	UserFlags        uint32
	Flags            uint8
	AutovarNameIndex uint16
	Reader           *Function
	Writer           *Function
}

// IsRead reports whether the read flag bit is set.
func (p Property) IsRead() bool { return p.Flags&propertyFlagRead != 0 }

// IsWrite reports whether the write flag bit is set.
func (p Property) IsWrite() bool { return p.Flags&propertyFlagWrite != 0 }

// IsAutovar reports whether the autovar flag bit is set.
func (p Property) IsAutovar() bool { return p.Flags&propertyFlagAutovar != 0 }

// validate enforces invariant 7: read/write Function sub-records are
// present exactly when their flag bit is set and the autovar bit is
// clear.
func (p Property) validate() error {
	wantReader := p.IsRead() && !p.IsAutovar()
	wantWriter := p.IsWrite() && !p.IsAutovar()
	if wantReader != (p.Reader != nil) {
		return newFieldErr(PropertyFlagsInconsistent, "Property.Reader", "reader presence disagrees with flags")
	}
	if wantWriter != (p.Writer != nil) {
		return newFieldErr(PropertyFlagsInconsistent, "Property.Writer", "writer presence disagrees with flags")
	}
	return nil
}

// NewProperty validates sub-record presence against flags and
// constructs a Property.
func NewProperty(nameIdx, typeIdx, docstringIdx uint16, userFlags uint32, flags uint8,
	autovarNameIdx uint16, reader, writer *Function) (Property, error) {

	p := Property{
		NameIndex:        nameIdx,
		TypeNameIndex:    typeIdx,
		DocstringIndex:   docstringIdx,
		UserFlags:        userFlags,
		Flags:            flags,
		AutovarNameIndex: autovarNameIdx,
		Reader:           reader,
		Writer:           writer,
	}
	if err := p.validate(); err != nil {
		return Property{}, err
	}
	return p, nil
}

// ParseProperty reads the fixed prelude, then the read/write Function
// sub-records Flags implies are present.
func ParseProperty(d *Decoder) (Property, error) {
	nameIdx, err := d.ReadU16()
	if err != nil {
		return Property{}, err
	}
	typeIdx, err := d.ReadU16()
	if err != nil {
		return Property{}, err
	}
	docstringIdx, err := d.ReadU16()
	if err != nil {
		return Property{}, err
	}
	userFlags, err := d.ReadU32()
	if err != nil {
		return Property{}, err
	}
	flags, err := d.ReadU8()
	if err != nil {
		return Property{}, err
	}
	autovarNameIdx, err := d.ReadU16()
	if err != nil {
		return Property{}, err
	}

	p := Property{
		NameIndex:        nameIdx,
		TypeNameIndex:    typeIdx,
		DocstringIndex:   docstringIdx,
		UserFlags:        userFlags,
		Flags:            flags,
		AutovarNameIndex: autovarNameIdx,
	}

	autovar := flags&propertyFlagAutovar != 0
	if flags&propertyFlagRead != 0 && !autovar {
		reader, err := ParseFunction(d)
		if err != nil {
			return Property{}, err
		}
		p.Reader = &reader
	}
	if flags&propertyFlagWrite != 0 && !autovar {
		writer, err := ParseFunction(d)
		if err != nil {
			return Property{}, err
		}
		p.Writer = &writer
	}

	return p, nil
}

// Dump writes the fixed prelude, then any reader/writer Function
// sub-records Flags implies are present.
func (p Property) Dump(e *Encoder) error {
	if err := p.validate(); err != nil {
		return err
	}
	if err := e.WriteU16(p.NameIndex); err != nil {
		return err
	}
	if err := e.WriteU16(p.TypeNameIndex); err != nil {
		return err
	}
	if err := e.WriteU16(p.DocstringIndex); err != nil {
		return err
	}
	if err := e.WriteU32(p.UserFlags); err != nil {
		return err
	}
	if err := e.WriteU8(p.Flags); err != nil {
		return err
	}
	if err := e.WriteU16(p.AutovarNameIndex); err != nil {
		return err
	}

	if p.Reader != nil {
		if err := p.Reader.Dump(e); err != nil {
			return err
		}
	}
	if p.Writer != nil {
		if err := p.Writer.Dump(e); err != nil {
			return err
		}
	}
	return nil
}
