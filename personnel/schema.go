// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package personnel

import (
	"fmt"

	"github.com/saites/igra-converter/common"
	"github.com/saites/igra-converter/dbf"
)

// ErrSchemaMismatch is returned when the DBF table being loaded does not
// declare one of the fields this projection requires.
const ErrSchemaMismatch = common.ConstError("personnel: schema mismatch")

// expectedFields are the column names this projection maps by, per the
// canonical personnel DBF layout (spec §6). Column order in the file does
// not matter; every name listed here must be present.
var expectedFields = []string{
	"IGRA_NUM", "BIRTH_DATE", "LEGAL_LAST",
	"FIRST_NAME", "LAST_NAME", "LEGAL_FIRST",
	"SEX", "ADDRESS", "CITY", "STATE",
	"ZIP", "EMAIL", "HOME_PHONE", "CELL_PHONE",
	"ASSOCIATION", "STATUS", "DIVISION", "SSN",
}

// checkSchema verifies the table declares every field the projection
// requires. It does not care about field order, type, or length, only that
// the name exists -- real-world exports are tolerant of column reordering.
func checkSchema(s dbf.Schema) error {
	for _, name := range expectedFields {
		if !s.Has(name) {
			return fmt.Errorf("%w: missing field %q", ErrSchemaMismatch, name)
		}
	}
	return nil
}
