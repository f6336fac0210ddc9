// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

// Package fixture loads the golden-value manifest and on-disk corpus
// used by the pex package's test suite (spec component H: test harness
// fixtures). Expected values live declaratively in testdata/fixtures.toml
// instead of as Go struct literals repeated across _test.go files, the
// same way github.com/holocm/holo-build declares package-build manifests
// in TOML rather than hand-rolled parsing.
package fixture

import "github.com/BurntSushi/toml"

// Manifest is the root of testdata/fixtures.toml.
type Manifest struct {
	Golden []GoldenEntry `toml:"golden"`
}

// GoldenEntry records the expected field values for one golden fixture,
// mirroring spec.md §8.3's concrete end-to-end scenarios for the
// "_wetquestscript.pex"-shaped sample.
type GoldenEntry struct {
	Name            string   `toml:"name"`
	Magic           uint32   `toml:"magic"`
	MajorVersion    uint8    `toml:"major_version"`
	MinorVersion    uint8    `toml:"minor_version"`
	GameID          uint16   `toml:"game_id"`
	CompilationTime uint64   `toml:"compilation_time"`
	SourceFileName  string   `toml:"source_file_name"`
	Username        string   `toml:"username"`
	MachineName     string   `toml:"machine_name"`
	StringCount     int      `toml:"string_count"`
	FirstStrings    []string `toml:"first_strings"`
}

// LoadManifest decodes the TOML manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ByName returns the golden entry with the given name, and whether it
// was found.
func (m *Manifest) ByName(name string) (GoldenEntry, bool) {
	for _, g := range m.Golden {
		if g.Name == name {
			return g, true
		}
	}
	return GoldenEntry{}, false
}
