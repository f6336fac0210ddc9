// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

package pex

// UserFlag declares one per-file bit position whose meaning is defined
// by the host game and indexed by name.
type UserFlag struct {
	NameIndex uint16
	FlagIndex uint8
}

// NewUserFlag validates flagIndex is a valid bit position (0..31) and
// constructs a UserFlag.
func NewUserFlag(nameIndex uint16, flagIndex uint8) (UserFlag, error) {
	if flagIndex > 31 {
		return UserFlag{}, newFieldErr(CountMismatch, "UserFlag.FlagIndex", "flag index must be a bit position 0..31")
	}
	return UserFlag{NameIndex: nameIndex, FlagIndex: flagIndex}, nil
}

// ParseUserFlag reads a UserFlag record.
func ParseUserFlag(d *Decoder) (UserFlag, error) {
	nameIndex, err := d.ReadU16()
	if err != nil {
		return UserFlag{}, err
	}
	flagIndex, err := d.ReadU8()
	if err != nil {
		return UserFlag{}, err
	}
	if flagIndex > 31 {
		return UserFlag{}, &Error{
			Kind:    CountMismatch,
			Offset:  d.Offset() - 1,
			Value:   uint32(flagIndex),
			Message: "flag index must be a bit position 0..31",
		}
	}
	return UserFlag{NameIndex: nameIndex, FlagIndex: flagIndex}, nil
}

// Dump writes a UserFlag record.
func (uf UserFlag) Dump(e *Encoder) error {
	if uf.FlagIndex > 31 {
		return newFieldErr(CountMismatch, "UserFlag.FlagIndex", "flag index must be a bit position 0..31")
	}
	if err := e.WriteU16(uf.NameIndex); err != nil {
		return err
	}
	return e.WriteU8(uf.FlagIndex)
}
