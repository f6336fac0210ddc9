// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// Magic is the fixed four-byte signature every PEX file begins with.
const Magic uint32 = 0xFA57C0DE

// SupportedMajorVersion is the only major version this codec accepts.
const SupportedMajorVersion uint8 = 3

// GameID identifies which Papyrus host produced a PEX file.
type GameID uint16

const (
	GameSkyrim    GameID = 1
	GameFallout4  GameID = 2
)

var gameIDNames = map[GameID]string{
	GameSkyrim:   "Skyrim",
	GameFallout4: "Fallout4",
}

// String implements fmt.Stringer.
func (g GameID) String() string {
	if s, ok := gameIDNames[g]; ok {
		return s
	}
	return "Unknown"
}

func supportedMinorVersion(v uint8) bool {
	return v == 1 || v == 2
}

func supportedGameID(g GameID) bool {
	return g == GameSkyrim || g == GameFallout4
}

// Header is the fixed-layout prelude of a PEX file.
type Header struct {
	MagicValue      uint32
	MajorVersion    uint8
	MinorVersion    uint8
	GameID          GameID
	CompilationTime uint64
	SourceFileName  []byte
	Username        []byte
	MachineName     []byte
}

// NewHeader validates and constructs a Header.
func NewHeader(major, minor uint8, game GameID, compilationTime uint64,
	sourceFileName, username, machineName []byte) (Header, error) {

	h := Header{
		MagicValue:      Magic,
		MajorVersion:    major,
		MinorVersion:    minor,
		GameID:          game,
		CompilationTime: compilationTime,
		SourceFileName:  sourceFileName,
		Username:        username,
		MachineName:     machineName,
	}
	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func (h Header) validate() error {
	if h.MagicValue != Magic {
		return &Error{Kind: BadMagic, Message: "header magic does not equal 0xFA57C0DE"}
	}
	if h.MajorVersion != SupportedMajorVersion || !supportedMinorVersion(h.MinorVersion) || !supportedGameID(h.GameID) {
		return &Error{Kind: UnsupportedVersion, Message: "unsupported major/minor version or game ID"}
	}
	return nil
}

// ParseHeader reads the header's fixed fields and its three wstrings.
func ParseHeader(d *Decoder) (Header, error) {
	magic, err := d.ReadU32()
	if err != nil {
		return Header{}, err
	}
	if magic != Magic {
		return Header{}, &Error{
			Kind:    BadMagic,
			Offset:  d.Offset() - 4,
			Message: "header magic does not equal 0xFA57C0DE",
		}
	}

	major, err := d.ReadU8()
	if err != nil {
		return Header{}, err
	}
	minor, err := d.ReadU8()
	if err != nil {
		return Header{}, err
	}
	gameRaw, err := d.ReadU16()
	if err != nil {
		return Header{}, err
	}
	game := GameID(gameRaw)
	if major != SupportedMajorVersion || !supportedMinorVersion(minor) || !supportedGameID(game) {
		return Header{}, &Error{
			Kind:    UnsupportedVersion,
			Offset:  d.Offset(),
			Message: "unsupported major/minor version or game ID",
		}
	}

	compilationTime, err := d.ReadU64()
	if err != nil {
		return Header{}, err
	}
	sourceFileName, err := d.ReadWString()
	if err != nil {
		return Header{}, err
	}
	username, err := d.ReadWString()
	if err != nil {
		return Header{}, err
	}
	machineName, err := d.ReadWString()
	if err != nil {
		return Header{}, err
	}

	return Header{
		MagicValue:      magic,
		MajorVersion:    major,
		MinorVersion:    minor,
		GameID:          game,
		CompilationTime: compilationTime,
		SourceFileName:  sourceFileName,
		Username:        username,
		MachineName:     machineName,
	}, nil
}

// Dump writes the header's fixed fields and its three wstrings.
func (h Header) Dump(e *Encoder) error {
	if err := h.validate(); err != nil {
		return err
	}
	if err := e.WriteU32(h.MagicValue); err != nil {
		return err
	}
	if err := e.WriteU8(h.MajorVersion); err != nil {
		return err
	}
	if err := e.WriteU8(h.MinorVersion); err != nil {
		return err
	}
	if err := e.WriteU16(uint16(h.GameID)); err != nil {
		return err
	}
	if err := e.WriteU64(h.CompilationTime); err != nil {
		return err
	}
	if err := e.WriteWString(h.SourceFileName); err != nil {
		return err
	}
	if err := e.WriteWString(h.Username); err != nil {
		return err
	}
	return e.WriteWString(h.MachineName)
}
