// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

import (
	"encoding/binary"
	"io"
	"math"
)

// Decoder reads the big-endian primitives that make up the PEX wire
// format from an underlying stream, tracking the byte offset consumed so
// far so that parse errors can report where in the stream they occurred.
type Decoder struct {
	r      io.Reader
	offset int64
}

// NewDecoder wraps r for sequential, big-endian PEX decoding.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Offset returns the number of bytes consumed from the stream so far.
func (d *Decoder) Offset() int64 {
	return d.offset
}

func (d *Decoder) readFull(buf []byte) error {
	n, err := io.ReadFull(d.r, buf)
	d.offset += int64(n)
	if err != nil {
		return &Error{
			Kind:     Truncated,
			Offset:   d.offset,
			Message:  "unexpected end of stream",
			Expected: len(buf),
		}
	}
	return nil
}

// ReadU8 reads a single byte.
func (d *Decoder) ReadU8() (uint8, error) {
	var buf [1]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadU16 reads a big-endian uint16.
func (d *Decoder) ReadU16() (uint16, error) {
	var buf [2]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// ReadU32 reads a big-endian uint32.
func (d *Decoder) ReadU32() (uint32, error) {
	var buf [4]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadU64 reads a big-endian uint64.
func (d *Decoder) ReadU64() (uint64, error) {
	var buf [8]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// ReadI32 reads a big-endian int32 (two's complement).
func (d *Decoder) ReadI32() (int32, error) {
	v, err := d.ReadU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadF32 reads an IEEE-754 binary32 float, big-endian.
func (d *Decoder) ReadF32() (float32, error) {
	v, err := d.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadWString reads a length-prefixed (uint16 byte count) opaque byte
// string. The payload bytes are returned as-is; the codec never
// transcodes them (see text.go for an optional Windows-1252 accessor).
func (d *Decoder) ReadWString() ([]byte, error) {
	n, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if err := d.readFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Encoder writes the big-endian primitives that make up the PEX wire
// format to an underlying stream, tracking the number of bytes written.
type Encoder struct {
	w      io.Writer
	offset int64
}

// NewEncoder wraps w for sequential, big-endian PEX encoding.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Offset returns the number of bytes written to the stream so far.
func (e *Encoder) Offset() int64 {
	return e.offset
}

func (e *Encoder) write(buf []byte) error {
	n, err := e.w.Write(buf)
	e.offset += int64(n)
	return err
}

// WriteU8 writes a single byte.
func (e *Encoder) WriteU8(v uint8) error {
	return e.write([]byte{v})
}

// WriteU16 writes a big-endian uint16.
func (e *Encoder) WriteU16(v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return e.write(buf[:])
}

// WriteU32 writes a big-endian uint32.
func (e *Encoder) WriteU32(v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return e.write(buf[:])
}

// WriteU64 writes a big-endian uint64.
func (e *Encoder) WriteU64(v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return e.write(buf[:])
}

// WriteI32 writes a big-endian int32 (two's complement).
func (e *Encoder) WriteI32(v int32) error {
	return e.WriteU32(uint32(v))
}

// WriteF32 writes an IEEE-754 binary32 float, big-endian.
func (e *Encoder) WriteF32(v float32) error {
	return e.WriteU32(math.Float32bits(v))
}

// WriteWString writes an opaque byte string as a length-prefixed
// (uint16 byte count) wstring. A len(b) that does not fit in a uint16
// returns a CountMismatch error; constructors such as NewStringTable and
// NewHeader do not check string lengths, so this is where an over-long
// string is caught.
func (e *Encoder) WriteWString(b []byte) error {
	if len(b) > math.MaxUint16 {
		return &Error{Kind: CountMismatch, Field: "wstring", Message: "string too long for a uint16 length prefix"}
	}
	if err := e.WriteU16(uint16(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return e.write(b)
}
