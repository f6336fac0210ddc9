// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Digest returns an xxhash fingerprint of pf's serialized byte stream.
// The golden round-trip test compares the digests of a parsed file and
// of its re-parsed dump; nothing in the package or the fixture loader
// indexes or de-duplicates fixtures by digest.
func (pf *PexFile) Digest() (uint64, error) {
	var buf bytes.Buffer
	if err := pf.Dump(&buf); err != nil {
		return 0, err
	}
	return xxhash.Sum64(buf.Bytes()), nil
}
