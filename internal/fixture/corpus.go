// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package fixture

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// LoadZstdCorpus reads and decompresses a zstd-compressed PEX sample
// file. The repository ships no compressed corpus; the golden tests
// build their samples in memory.
func LoadZstdCorpus(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return io.ReadAll(dec)
}

// WriteZstdCorpus compresses data and writes it to path, the inverse of
// LoadZstdCorpus.
func WriteZstdCorpus(path string, data []byte) error {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
