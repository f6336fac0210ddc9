// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/cutleast/go-pex/internal/fixture"
)

// buildGoldenPexFileFor constructs the synthetic PexFile for entry and
// returns an error instead of taking a *testing.T, so it can be shared
// between *testing.T (via buildGoldenPexFile) and *testing.F callers.
func buildGoldenPexFileFor(entry fixture.GoldenEntry) (*PexFile, error) {
	strings := make([][]byte, 0, entry.StringCount)
	for _, s := range entry.FirstStrings {
		strings = append(strings, []byte(s))
	}
	for len(strings) < entry.StringCount {
		strings = append(strings, []byte(fmt.Sprintf("str%d", len(strings))))
	}

	st, err := NewStringTable(strings)
	if err != nil {
		return nil, err
	}
	header, err := NewHeader(
		entry.MajorVersion, entry.MinorVersion, GameID(entry.GameID),
		entry.CompilationTime,
		[]byte(entry.SourceFileName), []byte(entry.Username), []byte(entry.MachineName),
	)
	if err != nil {
		return nil, err
	}
	return &PexFile{Header: header, Strings: st, DebugInfo: DebugInfo{HasDebugInfo: 0}}, nil
}

// FuzzPexFileRoundTrip seeds the corpus with the golden fixtures and lets
// go test -fuzz mutate from there; any input that parses must also dump
// back out to exactly itself.
func FuzzPexFileRoundTrip(f *testing.F) {
	manifest, err := fixture.LoadManifest("testdata/fixtures.toml")
	if err != nil {
		f.Fatalf("LoadManifest: %v", err)
	}

	for _, name := range []string{"wetquestscript", "empty"} {
		entry, ok := manifest.ByName(name)
		if !ok {
			f.Fatalf("no golden entry named %q", name)
		}
		pf, err := buildGoldenPexFileFor(entry)
		if err != nil {
			f.Fatalf("buildGoldenPexFileFor(%s): %v", name, err)
		}
		var buf bytes.Buffer
		if err := pf.Dump(&buf); err != nil {
			f.Fatalf("Dump(%s): %v", name, err)
		}
		f.Add(buf.Bytes())
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		pf, err := Parse(bytes.NewReader(data))
		if err != nil {
			return
		}
		var out bytes.Buffer
		if err := pf.Dump(&out); err != nil {
			t.Fatalf("Parse accepted input that Dump then rejected: %v", err)
		}
		if !bytes.Equal(data, out.Bytes()) {
			t.Fatalf("round-trip mismatch: dump(parse(b)) != b")
		}
	})
}
