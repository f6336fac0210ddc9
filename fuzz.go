// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

import "bytes"

// Fuzz is a legacy go-fuzz entry point: it reports whether data parses as
// a well-formed PexFile and, if so, that re-serializing it reproduces the
// original bytes (spec testable property 1, "round-trip identity").
func Fuzz(data []byte) int {
	pf, err := Parse(bytes.NewReader(data))
	if err != nil {
		return 0
	}

	var out bytes.Buffer
	if err := pf.Dump(&out); err != nil {
		panic("Parse accepted a PexFile that Dump then rejected: " + err.Error())
	}
	if !bytes.Equal(data, out.Bytes()) {
		panic("round-trip mismatch: dump(parse(b)) != b")
	}
	return 1
}
