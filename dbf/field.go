// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package dbf

// FieldType is a dBase III Plus field type code, taken verbatim from the
// on-disk field descriptor's type byte.
type FieldType byte

const (
	Character FieldType = 'C'
	Numeric   FieldType = 'N'
	DateField FieldType = 'D'
	Logical   FieldType = 'L'
)

func (t FieldType) String() string {
	switch t {
	case Character:
		return "C"
	case Numeric:
		return "N"
	case DateField:
		return "D"
	case Logical:
		return "L"
	default:
		return string(rune(t))
	}
}

// FieldDescriptor describes one fixed-width column of the table, in the
// order it appears on disk.
type FieldDescriptor struct {
	Name         string
	Type         FieldType
	Length       int
	DecimalCount int
}

// Schema is the ordered list of field descriptors read from a table's
// header. Projection code (see package personnel) maps fields by Name, not
// by position, so reordered columns in a real-world export still load.
type Schema struct {
	Fields []FieldDescriptor
}

// Index returns the position of the named field, or -1 if the schema has
// no field with that name.
func (s Schema) Index(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Has reports whether the schema declares a field with the given name.
func (s Schema) Has(name string) bool {
	return s.Index(name) >= 0
}

const fieldDescriptorSize = 32
