// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package fixture

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// MappedFile is a memory-mapped golden fixture file, opened the same
// way the teacher's File.New() memory-maps a PE sample rather than
// reading it into a buffer.
type MappedFile struct {
	f    *os.File
	data mmap.MMap
}

// OpenMMap memory-maps path read-only.
func OpenMMap(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &MappedFile{f: f, data: data}, nil
}

// Bytes returns the mapped file contents.
func (m *MappedFile) Bytes() []byte {
	return m.data
}

// Close unmaps the file and closes the underlying descriptor.
func (m *MappedFile) Close() error {
	if err := m.data.Unmap(); err != nil {
		m.f.Close()
		return err
	}
	return m.f.Close()
}
