// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package personnel

import (
	"io"
	"strings"

	"github.com/saites/igra-converter/dbf"
)

// defaultCountry is used for every projected Record, since the legacy
// personnel table predates international membership and carries no
// COUNTRY column (spec §6's DBF schema has no such field, unlike the
// submitted Registration's address, which does).
const defaultCountry = "USA"

// RowSource is anything that can yield the rows of a personnel table: the
// subset of *dbf.Reader that projection needs, so tests can supply a fake.
type RowSource interface {
	Schema() dbf.Schema
	Next() (dbf.Row, error)
}

// LoadAll reads every live row from src, projecting each into a Record.
// It fails fast with ErrSchemaMismatch if src's schema is missing a field
// this projection requires (spec §4.2: "Field-name mismatch ... is a fatal
// load error").
func LoadAll(src RowSource) ([]Record, error) {
	if err := checkSchema(src.Schema()); err != nil {
		return nil, err
	}

	var out []Record
	for {
		row, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Project(row))
	}
	return out, nil
}

// Project converts a single decoded DBF row into a normalized Record.
// IGRANumber is stripped of surrounding whitespace, names are trimmed but
// internal spacing is preserved, Region is uppercased, and Sex is clamped
// to {"M", "F"} (anything else normalizes to "").
func Project(row dbf.Row) Record {
	r := Record{
		IGRANumber:  strings.TrimSpace(row.Text("IGRA_NUM")),
		Association: row.Text("ASSOCIATION"),
		LegalFirst:  strings.TrimSpace(row.Text("LEGAL_FIRST")),
		LegalLast:   strings.TrimSpace(row.Text("LEGAL_LAST")),
		DateOfBirth: row.Text("BIRTH_DATE"),
		Sex:         clampSex(row.Text("SEX")),
		SSN:         row.Text("SSN"),
		Division:    row.Text("DIVISION"),
		Status:      row.Text("STATUS"),
		Address:     row.Text("ADDRESS"),
		City:        row.Text("CITY"),
		Region:      strings.ToUpper(row.Text("STATE")),
		PostalCode:  row.Text("ZIP"),
		Country:     defaultCountry,
		Email:       row.Text("EMAIL"),
		CellPhone:   row.Text("CELL_PHONE"),
		HomePhone:   row.Text("HOME_PHONE"),
	}
	r.PerformanceName.First = strings.TrimSpace(row.Text("FIRST_NAME"))
	r.PerformanceName.Last = strings.TrimSpace(row.Text("LAST_NAME"))
	return r
}

func clampSex(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return "M"
	case "F":
		return "F"
	default:
		return ""
	}
}
