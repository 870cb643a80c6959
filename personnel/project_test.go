// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package personnel

import (
	"errors"
	"io"
	"testing"

	"github.com/saites/igra-converter/dbf"
)

func testSchema(fields ...string) dbf.Schema {
	s := dbf.Schema{}
	for _, f := range fields {
		s.Fields = append(s.Fields, dbf.FieldDescriptor{Name: f, Type: dbf.Character, Length: 10})
	}
	return s
}

func allFieldsSchema() dbf.Schema {
	return testSchema(expectedFields...)
}

type fakeSource struct {
	schema dbf.Schema
	rows   []dbf.Row
	pos    int
}

func (f *fakeSource) Schema() dbf.Schema { return f.schema }

func (f *fakeSource) Next() (dbf.Row, error) {
	if f.pos >= len(f.rows) {
		return dbf.Row{}, io.EOF
	}
	row := f.rows[f.pos]
	f.pos++
	return row, nil
}

func newRow(schema dbf.Schema, values map[string]string) dbf.Row {
	vs := make([]dbf.Value, len(schema.Fields))
	for i, f := range schema.Fields {
		vs[i] = dbf.Value{Type: dbf.Character, Text: values[f.Name]}
	}
	return dbf.Row{Schema: &schema, Values: vs}
}

func TestProjectNormalizesFields(t *testing.T) {
	schema := allFieldsSchema()
	row := newRow(schema, map[string]string{
		"IGRA_NUM":    "  0001  ",
		"FIRST_NAME":  "Freddie  Mercury", // internal spacing preserved
		"LAST_NAME":   "Mercury",
		"LEGAL_FIRST": "Farrokh",
		"LEGAL_LAST":  "Bulsara",
		"SEX":         "m",
		"STATE":       "tx",
		"BIRTH_DATE":  "19460905",
	})

	rec := Project(row)
	if rec.IGRANumber != "0001" {
		t.Errorf("IGRANumber = %q, want 0001", rec.IGRANumber)
	}
	if rec.PerformanceName.First != "Freddie  Mercury" {
		t.Errorf("PerformanceName.First = %q, want internal spacing preserved", rec.PerformanceName.First)
	}
	if rec.Sex != "M" {
		t.Errorf("Sex = %q, want M", rec.Sex)
	}
	if rec.Region != "TX" {
		t.Errorf("Region = %q, want TX", rec.Region)
	}
	if rec.Country != defaultCountry {
		t.Errorf("Country = %q, want %q", rec.Country, defaultCountry)
	}
}

func TestClampSexRejectsOther(t *testing.T) {
	schema := allFieldsSchema()
	row := newRow(schema, map[string]string{"SEX": "X"})
	if got := Project(row).Sex; got != "" {
		t.Errorf("Sex = %q, want empty for unrecognized value", got)
	}
}

func TestLoadAllFailsOnSchemaMismatch(t *testing.T) {
	src := &fakeSource{schema: testSchema("IGRA_NUM")} // missing most required fields
	_, err := LoadAll(src)
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("err = %v, want ErrSchemaMismatch", err)
	}
}

func TestLoadAllProjectsEveryRow(t *testing.T) {
	schema := allFieldsSchema()
	src := &fakeSource{
		schema: schema,
		rows: []dbf.Row{
			newRow(schema, map[string]string{"IGRA_NUM": "0001"}),
			newRow(schema, map[string]string{"IGRA_NUM": "0002"}),
		},
	}
	recs, err := LoadAll(src)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}
}
