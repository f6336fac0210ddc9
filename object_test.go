// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

import (
	"bytes"
	"errors"
	"testing"
)

func sampleObjectData(t *testing.T) ObjectData {
	t.Helper()
	fn := NamedFunction{
		NameIndex: 1,
		Function: Function{
			ReturnTypeIndex: 0,
			Instructions:    []Instruction{sampleInstruction(t)},
		},
	}
	return ObjectData{
		ParentClassNameIndex: 1,
		DocstringIndex:       2,
		AutoStateNameIndex:   3,
		Variables:            []Variable{{NameIndex: 4, TypeNameIndex: 5, Value: NewBoolData(true)}},
		States:               []State{{NameIndex: 3, Functions: []NamedFunction{fn}}},
	}
}

func TestNamedFunctionRoundTrip(t *testing.T) {
	nf := NamedFunction{NameIndex: 7, Function: Function{ReturnTypeIndex: 1}}
	var buf bytes.Buffer
	if err := nf.Dump(NewEncoder(&buf)); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	got, err := ParseNamedFunction(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ParseNamedFunction: %v", err)
	}
	if got.NameIndex != 7 || got.Function.ReturnTypeIndex != 1 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := State{NameIndex: 2, Functions: []NamedFunction{{NameIndex: 1, Function: Function{}}}}
	var buf bytes.Buffer
	if err := s.Dump(NewEncoder(&buf)); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	got, err := ParseState(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ParseState: %v", err)
	}
	if len(got.Functions) != 1 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestObjectDataRoundTrip(t *testing.T) {
	od := sampleObjectData(t)
	var buf bytes.Buffer
	if err := od.Dump(NewEncoder(&buf)); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	got, err := ParseObjectData(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ParseObjectData: %v", err)
	}
	if len(got.Variables) != 1 || len(got.States) != 1 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestObjectRoundTripDerivesSize(t *testing.T) {
	obj := Object{NameIndex: 9, Data: sampleObjectData(t)}

	var buf bytes.Buffer
	if err := obj.Dump(NewEncoder(&buf)); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	got, err := ParseObject(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	if got.NameIndex != 9 {
		t.Errorf("NameIndex = %d, want 9", got.NameIndex)
	}
	if got.Size == 0 {
		t.Error("Size should have been derived to a non-zero value")
	}

	var replay bytes.Buffer
	if err := got.Dump(NewEncoder(&replay)); err != nil {
		t.Fatalf("re-Dump: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), replay.Bytes()) {
		t.Error("round-trip mismatch: dump(parse(b)) != b")
	}
}

func TestObjectRejectsDeclaredSizeMismatch(t *testing.T) {
	obj := Object{NameIndex: 1, Size: 999, Data: ObjectData{}}
	err := obj.Dump(NewEncoder(&bytes.Buffer{}))
	if err == nil {
		t.Fatal("expected an ObjectSizeMismatch error")
	}
	var pexErr *Error
	if !errors.As(err, &pexErr) || pexErr.Kind != ObjectSizeMismatch {
		t.Errorf("got %v, want an ObjectSizeMismatch *Error", err)
	}
}

func TestParseObjectRejectsShortSize(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	e.WriteU16(1)
	e.WriteU32(2) // size < 4
	_, err := ParseObject(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err == nil {
		t.Fatal("expected an ObjectSizeMismatch error for size < 4")
	}
	var pexErr *Error
	if !errors.As(err, &pexErr) || pexErr.Kind != ObjectSizeMismatch {
		t.Errorf("got %v, want an ObjectSizeMismatch *Error", err)
	}
}

func TestParseObjectRejectsBodyLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	e.WriteU16(1)     // name index
	e.WriteU32(4 + 5) // declares a 5-byte body
	buf.Write([]byte{0x00, 0x00}) // only 2 bytes actually follow, well short of ObjectData's fixed prelude
	_, err := ParseObject(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err == nil {
		t.Fatal("expected an error for a body shorter than its declared size")
	}
}
