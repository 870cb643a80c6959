// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package personnel projects rows read from the IGRA personnel DBF table
// into the member domain type (Record) the rest of the converter matches
// registrations against.
package personnel

// Record is one member of the personnel database. It is immutable after
// load: all fields are normalized once, at projection time, and never
// mutated afterward.
type Record struct {
	IGRANumber      string // primary key; unique across the table
	Association     string
	LegalFirst      string
	LegalLast       string
	PerformanceName struct {
		First string
		Last  string
	}
	DateOfBirth string // YYYYMMDD
	Sex         string // "M", "F", or "" if neither
	SSN         string
	Division    string
	Status      string
	Address     string
	City        string
	Region      string // 2-letter, uppercased
	PostalCode  string
	Country     string
	Email       string
	CellPhone   string
	HomePhone   string
}

// PerformanceFirst and PerformanceLast are convenience accessors mirroring
// the DBF's FIRST_NAME/LAST_NAME columns (the performer's stage name, as
// opposed to LegalFirst/LegalLast).
func (r Record) PerformanceFirst() string { return r.PerformanceName.First }
func (r Record) PerformanceLast() string  { return r.PerformanceName.Last }
