// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// Tag identifies the on-wire shape of a VariableData value.
type Tag uint8

const (
	TagNull       Tag = 0
	TagIdentifier Tag = 1
	TagString     Tag = 2
	TagInteger    Tag = 3
	TagFloat      Tag = 4
	TagBool       Tag = 5
)

var tagNames = map[Tag]string{
	TagNull:       "Null",
	TagIdentifier: "Identifier",
	TagString:     "String",
	TagInteger:    "Integer",
	TagFloat:      "Float",
	TagBool:       "Bool",
}

// String implements fmt.Stringer.
func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "Unknown"
}

// variableDataPayload is the exhaustive set of payload shapes a
// VariableData can carry. Each Tag has exactly one concrete
// implementation below, so invariant 6 (payload kind matches tag) is
// enforced by construction rather than a runtime type switch scattered
// through callers.
type variableDataPayload interface {
	tag() Tag
}

type nullPayload struct{}

func (nullPayload) tag() Tag { return TagNull }

// identifierPayload and stringPayload both carry a string-table index;
// they are kept as distinct types because the wire tag distinguishes
// them even though the payload shape (a uint16 index) is identical.
type identifierPayload struct{ index uint16 }

func (identifierPayload) tag() Tag { return TagIdentifier }

type stringPayload struct{ index uint16 }

func (stringPayload) tag() Tag { return TagString }

// integerPayload carries the raw 32 bits of tag-3 data. The signedness
// hint is advisory caller-supplied metadata (see spec's Open Question on
// VariableData signedness); only the 32 bits round-trip on the wire.
type integerPayload struct {
	bits     uint32
	unsigned bool
}

func (integerPayload) tag() Tag { return TagInteger }

type floatPayload struct{ value float32 }

func (floatPayload) tag() Tag { return TagFloat }

type boolPayload struct{ value bool }

func (boolPayload) tag() Tag { return TagBool }

// VariableData is the tagged union used for initializers, constants,
// and instruction operands throughout a PEX file.
type VariableData struct {
	payload variableDataPayload
}

// Tag returns the wire tag of v.
func (v VariableData) Tag() Tag {
	if v.payload == nil {
		return TagNull
	}
	return v.payload.tag()
}

// NewNullData constructs a null VariableData (tag 0, no payload).
func NewNullData() VariableData {
	return VariableData{payload: nullPayload{}}
}

// NewIdentifierData constructs an identifier VariableData (tag 1): a
// string-table index.
func NewIdentifierData(stringIndex uint16) VariableData {
	return VariableData{payload: identifierPayload{index: stringIndex}}
}

// NewStringData constructs a string VariableData (tag 2): a
// string-table index.
func NewStringData(stringIndex uint16) VariableData {
	return VariableData{payload: stringPayload{index: stringIndex}}
}

// NewIntegerData constructs an integer VariableData (tag 3) from its raw
// 32 bits plus the advisory signedness hint.
func NewIntegerData(bits uint32, unsigned bool) VariableData {
	return VariableData{payload: integerPayload{bits: bits, unsigned: unsigned}}
}

// NewSignedIntegerData constructs an integer VariableData from a signed
// value, recording the hint as signed.
func NewSignedIntegerData(v int32) VariableData {
	return NewIntegerData(uint32(v), false)
}

// NewUnsignedIntegerData constructs an integer VariableData from an
// unsigned value, recording the hint as unsigned.
func NewUnsignedIntegerData(v uint32) VariableData {
	return NewIntegerData(v, true)
}

// NewFloatData constructs a float VariableData (tag 4).
func NewFloatData(v float32) VariableData {
	return VariableData{payload: floatPayload{value: v}}
}

// NewBoolData constructs a bool VariableData (tag 5).
func NewBoolData(v bool) VariableData {
	return VariableData{payload: boolPayload{value: v}}
}

// StringIndex returns the string-table index carried by an identifier or
// string VariableData, and whether v actually carries one.
func (v VariableData) StringIndex() (uint16, bool) {
	switch p := v.payload.(type) {
	case identifierPayload:
		return p.index, true
	case stringPayload:
		return p.index, true
	default:
		return 0, false
	}
}

// Int32 returns the integer payload's 32 bits reinterpreted as signed,
// and whether v carries an integer payload at all.
func (v VariableData) Int32() (int32, bool) {
	p, ok := v.payload.(integerPayload)
	if !ok {
		return 0, false
	}
	return int32(p.bits), true
}

// Uint32 returns the integer payload's 32 bits reinterpreted as
// unsigned, and whether v carries an integer payload at all.
func (v VariableData) Uint32() (uint32, bool) {
	p, ok := v.payload.(integerPayload)
	if !ok {
		return 0, false
	}
	return p.bits, true
}

// IntegerUnsigned returns the advisory signedness hint carried alongside
// an integer payload. It is metadata only: it never affects the
// serialized bytes (see spec's Open Question on VariableData
// signedness).
func (v VariableData) IntegerUnsigned() (bool, bool) {
	p, ok := v.payload.(integerPayload)
	if !ok {
		return false, false
	}
	return p.unsigned, true
}

// Float32 returns the float payload, and whether v carries one.
func (v VariableData) Float32() (float32, bool) {
	p, ok := v.payload.(floatPayload)
	if !ok {
		return 0, false
	}
	return p.value, true
}

// Bool returns the bool payload, and whether v carries one.
func (v VariableData) Bool() (bool, bool) {
	p, ok := v.payload.(boolPayload)
	if !ok {
		return false, false
	}
	return p.value, true
}

// ParseVariableData reads a tag byte and its per-tag payload.
func ParseVariableData(d *Decoder) (VariableData, error) {
	tagByte, err := d.ReadU8()
	if err != nil {
		return VariableData{}, err
	}
	switch Tag(tagByte) {
	case TagNull:
		return NewNullData(), nil
	case TagIdentifier:
		idx, err := d.ReadU16()
		if err != nil {
			return VariableData{}, err
		}
		return NewIdentifierData(idx), nil
	case TagString:
		idx, err := d.ReadU16()
		if err != nil {
			return VariableData{}, err
		}
		return NewStringData(idx), nil
	case TagInteger:
		bits, err := d.ReadU32()
		if err != nil {
			return VariableData{}, err
		}
		// The wire carries no signedness bit; default the hint to
		// signed. A caller that knows the declared type can change it
		// via WithIntegerUnsigned; no parser in this package does.
		return NewIntegerData(bits, false), nil
	case TagFloat:
		f, err := d.ReadF32()
		if err != nil {
			return VariableData{}, err
		}
		return NewFloatData(f), nil
	case TagBool:
		b, err := d.ReadU8()
		if err != nil {
			return VariableData{}, err
		}
		return NewBoolData(b != 0), nil
	default:
		return VariableData{}, &Error{
			Kind:    UnknownVariableDataTag,
			Offset:  d.Offset() - 1,
			Value:   uint32(tagByte),
			Message: "variable data tag outside 0..5",
		}
	}
}

// WithIntegerUnsigned returns a copy of v with its advisory signedness
// hint set to the given value (true for unsigned, false for signed), for
// integer payloads. It is a no-op (returns v unchanged) for any other tag.
func (v VariableData) WithIntegerUnsigned(unsigned bool) VariableData {
	p, ok := v.payload.(integerPayload)
	if !ok {
		return v
	}
	p.unsigned = unsigned
	return VariableData{payload: p}
}

// Dump writes v's tag byte followed by its per-tag payload.
func (v VariableData) Dump(e *Encoder) error {
	payload := v.payload
	if payload == nil {
		payload = nullPayload{}
	}
	if err := e.WriteU8(uint8(payload.tag())); err != nil {
		return err
	}
	switch p := payload.(type) {
	case nullPayload:
		return nil
	case identifierPayload:
		return e.WriteU16(p.index)
	case stringPayload:
		return e.WriteU16(p.index)
	case integerPayload:
		return e.WriteU32(p.bits)
	case floatPayload:
		return e.WriteF32(p.value)
	case boolPayload:
		var b uint8
		if p.value {
			b = 1
		}
		return e.WriteU8(b)
	default:
		return newFieldErr(TagPayloadMismatch, "VariableData", "unreachable payload kind")
	}
}
