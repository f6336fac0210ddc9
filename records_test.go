// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

import (
	"bytes"
	"testing"
)

func TestUserFlagRoundTrip(t *testing.T) {
	uf, err := NewUserFlag(3, 31)
	if err != nil {
		t.Fatalf("NewUserFlag: %v", err)
	}
	var buf bytes.Buffer
	if err := uf.Dump(NewEncoder(&buf)); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	got, err := ParseUserFlag(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ParseUserFlag: %v", err)
	}
	if got != uf {
		t.Errorf("round-trip mismatch: %+v != %+v", got, uf)
	}
}

func TestUserFlagRejectsOutOfRangeBit(t *testing.T) {
	if _, err := NewUserFlag(0, 32); err == nil {
		t.Error("expected an error for a flag index of 32")
	}
	d := NewDecoder(bytes.NewReader([]byte{0x00, 0x01, 32}))
	if _, err := ParseUserFlag(d); err == nil {
		t.Error("expected an error parsing a flag index of 32")
	}
}

func TestVariableTypeRoundTrip(t *testing.T) {
	vt := VariableType{NameIndex: 4, TypeNameIndex: 9}
	var buf bytes.Buffer
	if err := vt.Dump(NewEncoder(&buf)); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	got, err := ParseVariableType(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ParseVariableType: %v", err)
	}
	if got != vt {
		t.Errorf("round-trip mismatch: %+v != %+v", got, vt)
	}
}

func TestVariableRoundTrip(t *testing.T) {
	v := Variable{NameIndex: 1, TypeNameIndex: 2, UserFlags: 0x80, Value: NewSignedIntegerData(-9)}
	var buf bytes.Buffer
	if err := v.Dump(NewEncoder(&buf)); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	got, err := ParseVariable(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ParseVariable: %v", err)
	}
	if got.NameIndex != v.NameIndex || got.TypeNameIndex != v.TypeNameIndex || got.UserFlags != v.UserFlags {
		t.Errorf("round-trip mismatch: %+v != %+v", got, v)
	}
	if gotI, _ := got.Value.Int32(); gotI != -9 {
		t.Errorf("Value = %d, want -9", gotI)
	}
}

func TestDebugFunctionRoundTrip(t *testing.T) {
	df, err := NewDebugFunction(1, 2, 3, FunctionTypeGetter, []uint16{10, 11, 12})
	if err != nil {
		t.Fatalf("NewDebugFunction: %v", err)
	}
	var buf bytes.Buffer
	if err := df.Dump(NewEncoder(&buf)); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	got, err := ParseDebugFunction(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ParseDebugFunction: %v", err)
	}
	if got.FunctionType != FunctionTypeGetter || len(got.LineNumbers) != 3 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestDebugFunctionRejectsUnknownFunctionType(t *testing.T) {
	if _, err := NewDebugFunction(0, 0, 0, FunctionType(4), nil); err == nil {
		t.Error("expected an error for function type 4")
	}
}

func TestDebugInfoRoundTripWithAndWithoutBody(t *testing.T) {
	empty := DebugInfo{HasDebugInfo: 0}
	var buf bytes.Buffer
	if err := empty.Dump(NewEncoder(&buf)); err != nil {
		t.Fatalf("Dump(empty): %v", err)
	}
	got, err := ParseDebugInfo(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ParseDebugInfo(empty): %v", err)
	}
	if got.HasDebugInfo != 0 || got.Body != nil {
		t.Errorf("expected an absent body, got %+v", got)
	}

	df, err := NewDebugFunction(1, 1, 1, FunctionTypeMethod, []uint16{5})
	if err != nil {
		t.Fatalf("NewDebugFunction: %v", err)
	}
	withBody, err := NewDebugInfo(1, &DebugInfoBody{ModificationTime: 42, FunctionCount: 1, Functions: []DebugFunction{df}})
	if err != nil {
		t.Fatalf("NewDebugInfo: %v", err)
	}
	buf.Reset()
	if err := withBody.Dump(NewEncoder(&buf)); err != nil {
		t.Fatalf("Dump(withBody): %v", err)
	}
	got2, err := ParseDebugInfo(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ParseDebugInfo(withBody): %v", err)
	}
	if got2.Body == nil || got2.Body.ModificationTime != 42 || len(got2.Body.Functions) != 1 {
		t.Errorf("round-trip mismatch: %+v", got2)
	}
}

func TestDebugInfoInconsistentPresence(t *testing.T) {
	if _, err := NewDebugInfo(1, nil); err == nil {
		t.Error("expected an error when HasDebugInfo is non-zero but Body is nil")
	}
	if _, err := NewDebugInfo(0, &DebugInfoBody{}); err == nil {
		t.Error("expected an error when HasDebugInfo is zero but Body is non-nil")
	}
}
