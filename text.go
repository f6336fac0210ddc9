// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

import "golang.org/x/text/encoding/charmap"

// DecodeWindows1252 decodes an opaque wstring payload as Windows-1252
// text, the encoding spec.md names as the common producer locale for
// PEX string tables. This is a read-only convenience: the codec itself
// never transcodes wstring payloads (§3.1/§6.1), so decoding errors here
// never surface from Parse/Dump, only from callers who opt into text
// interpretation.
func DecodeWindows1252(b []byte) (string, error) {
	return charmap.Windows1252.NewDecoder().String(string(b))
}

// EncodeWindows1252 is the inverse of DecodeWindows1252: it encodes s as
// Windows-1252 bytes suitable for use as a wstring payload.
func EncodeWindows1252(s string) ([]byte, error) {
	return charmap.Windows1252.NewEncoder().Bytes([]byte(s))
}

// StringValue decodes the string-table entry at idx as Windows-1252
// text. ok is false if idx is out of range or the entry fails to decode.
func (st StringTable) StringValue(idx uint16) (s string, ok bool) {
	raw, present := st.Get(idx)
	if !present {
		return "", false
	}
	decoded, err := DecodeWindows1252(raw)
	if err != nil {
		return "", false
	}
	return decoded, true
}
