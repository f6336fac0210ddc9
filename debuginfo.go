// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// DebugInfoBody carries the three fields that only exist when a PEX
// file has debug info. They are grouped behind one pointer (rather than
// three independently-optional fields), so they are present or absent
// together. The pointer's presence is not tied to HasDebugInfo by the
// type: NewDebugInfo and Dump reject a Body that is nil while
// HasDebugInfo is non-zero, or non-nil while it is zero.
type DebugInfoBody struct {
	ModificationTime uint64
	FunctionCount    uint16
	Functions        []DebugFunction
}

// DebugInfo is the optional debug-information section of a PEX file.
type DebugInfo struct {
	HasDebugInfo uint8
	Body         *DebugInfoBody
}

// NewDebugInfo validates body's presence against hasDebugInfo and
// body.FunctionCount against len(body.Functions).
func NewDebugInfo(hasDebugInfo uint8, body *DebugInfoBody) (DebugInfo, error) {
	di := DebugInfo{HasDebugInfo: hasDebugInfo, Body: body}
	if err := di.validate(); err != nil {
		return DebugInfo{}, err
	}
	return di, nil
}

func (di DebugInfo) validate() error {
	if di.HasDebugInfo != 0 {
		if di.Body == nil {
			return newFieldErr(OptionalFieldMissing, "DebugInfo.Body", "debug info body required when has_debug_info is non-zero")
		}
		if int(di.Body.FunctionCount) != len(di.Body.Functions) {
			return newFieldErr(CountMismatch, "DebugInfo.Body.FunctionCount", "function count does not match function slice length")
		}
	} else if di.Body != nil {
		return newFieldErr(OptionalFieldMissing, "DebugInfo.Body", "debug info body must be absent when has_debug_info is zero")
	}
	return nil
}

// ParseDebugInfo reads the has_debug_info flag and, if non-zero, the
// modification time, function count, and function list.
func ParseDebugInfo(d *Decoder) (DebugInfo, error) {
	hasDebugInfo, err := d.ReadU8()
	if err != nil {
		return DebugInfo{}, err
	}
	if hasDebugInfo == 0 {
		return DebugInfo{HasDebugInfo: 0}, nil
	}

	modTime, err := d.ReadU64()
	if err != nil {
		return DebugInfo{}, err
	}
	functionCount, err := d.ReadU16()
	if err != nil {
		return DebugInfo{}, err
	}
	functions := make([]DebugFunction, 0, functionCount)
	for i := uint16(0); i < functionCount; i++ {
		fn, err := ParseDebugFunction(d)
		if err != nil {
			return DebugInfo{}, err
		}
		functions = append(functions, fn)
	}

	return DebugInfo{
		HasDebugInfo: hasDebugInfo,
		Body: &DebugInfoBody{
			ModificationTime: modTime,
			FunctionCount:    functionCount,
			Functions:        functions,
		},
	}, nil
}

// Dump writes the has_debug_info flag and, if non-zero, the body.
func (di DebugInfo) Dump(e *Encoder) error {
	if err := di.validate(); err != nil {
		return err
	}
	if err := e.WriteU8(di.HasDebugInfo); err != nil {
		return err
	}
	if di.HasDebugInfo == 0 {
		return nil
	}
	if err := e.WriteU64(di.Body.ModificationTime); err != nil {
		return err
	}
	if err := e.WriteU16(di.Body.FunctionCount); err != nil {
		return err
	}
	for _, fn := range di.Body.Functions {
		if err := fn.Dump(e); err != nil {
			return err
		}
	}
	return nil
}
