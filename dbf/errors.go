// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package dbf

import "github.com/saites/igra-converter/common"

const (
	// ErrInvalidHeader is returned when the 32-byte file header or its
	// field-descriptor array does not conform to the dBase III Plus layout.
	ErrInvalidHeader = common.ConstError("dbf: invalid header")

	// ErrUnsupportedVersion is returned when the header's version byte is
	// not 0x03 (dBase III Plus without a memo file).
	ErrUnsupportedVersion = common.ConstError("dbf: unsupported version")

	// ErrTruncatedRecord is returned when fewer bytes remain in the source
	// than the header declares a record should occupy.
	ErrTruncatedRecord = common.ConstError("dbf: truncated record")
)
