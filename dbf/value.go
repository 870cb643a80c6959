// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package dbf

// Logical is the tri-state value a dBase "L" field holds.
type Logical int

const (
	LogicalUnknown Logical = iota
	LogicalTrue
	LogicalFalse
)

// Value is a single decoded cell. Character, Numeric, and Date fields are
// all exposed as normalized text (Text); Logical fields are exposed as a
// tri-state Bool. Whitespace-only Character/Numeric fields normalize to an
// empty Text, never to a run of spaces.
type Value struct {
	Type FieldType
	Text string
	Bool Logical
}

// Row is one decoded, non-deleted record, aligned to the table's Schema.
type Row struct {
	Schema *Schema
	Values []Value
}

// Get returns the cell for the named field, or ok=false if the schema has
// no such field.
func (r Row) Get(name string) (Value, bool) {
	i := r.Schema.Index(name)
	if i < 0 {
		return Value{}, false
	}
	return r.Values[i], true
}

// Text returns the cell's text for the named field, or "" if the field is
// absent. Convenience wrapper around Get for the common case.
func (r Row) Text(name string) string {
	v, _ := r.Get(name)
	return v.Text
}
