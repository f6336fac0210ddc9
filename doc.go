// Copyright (c) go-pex contributors. Use of this source code is governed
// by a BSD-style license that can be found in the LICENSE file.

// Package pex implements a bidirectional codec for the PEX (Papyrus
// Executable) binary file format used by the Skyrim/Fallout 4 Papyrus
// scripting toolchain.
//
// A PEX file is a compiled script: a header, an interned string table,
// optional debug information, user-flag declarations, and one or more
// compiled objects (classes) holding variables, properties, states,
// functions, and bytecode instructions. Parse reads such a file from an
// io.Reader into a fully validated PexFile; (*PexFile).Dump writes it
// back out byte-for-byte.
//
// The package is synchronous and holds no package-level state: a Decoder
// or Encoder is bound to one stream and is not safe for concurrent use,
// but a fully constructed PexFile is safe to share and read from
// multiple goroutines. There is no tolerant/partial parse mode —
// malformed input fails fast with a structured *Error identifying the
// byte offset or field path at fault.
package pex
