// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package cp437 decodes legacy DOS code-page-437 text, the encoding dBase
// III Plus files use for character fields. Invalid bytes never cause a
// decode failure; they surface as the Unicode replacement character.
package cp437

import (
	"golang.org/x/text/encoding/charmap"
)

// Decode converts CP-437 encoded bytes to a UTF-8 string. Bytes that do not
// round-trip through the code page are replaced with U+FFFD rather than
// failing the decode, matching dBase III Plus's tolerance for stray bytes
// in legacy exports.
func Decode(b []byte) string {
	decoder := charmap.CodePage437.NewDecoder()
	out, err := decoder.Bytes(b)
	if err != nil {
		// The CP-437 decoder is a single-byte code page covering all 256
		// values, so Bytes never actually errors; this guards against a
		// future charmap change rather than a case we've observed.
		return string(b)
	}
	return string(out)
}
