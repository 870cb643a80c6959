// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package registration holds the typed batch submitted for validation: a
// contestant profile plus a list of event registrations, decoded from the
// input JSON format fixed by spec §6.
package registration

// DateOfBirth is a submitted birth date, split into components rather
// than a single string, per spec §3.
type DateOfBirth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Association carries the contestant's claimed membership: whether they
// declare themselves a member, and the IGRA# they claim if so.
type Association struct {
	IGRA       string `json:"igra"`
	MemberAssn bool   `json:"memberAssn"`
}

// Address is the contestant's submitted mailing/contact information.
type Address struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	ZipCode      string `json:"zipCode"`
	Email        string `json:"email"`
	CellPhoneNo  string `json:"cellPhoneNo"`
	HomePhoneNo  string `json:"homePhoneNo"`
}

// Contestant is the registrant's own profile, as submitted.
type Contestant struct {
	FirstName       string      `json:"first"`
	LastName        string      `json:"last"`
	PerformanceName string      `json:"performance"`
	DOB             DateOfBirth `json:"dob"`
	Gender          string      `json:"gender"` // "Cowboys" or "Cowgirls"
	Association     Association `json:"association"`
	SSN             string      `json:"ssn"`
	Address         Address     `json:"address"`
	NoteToDirector  string      `json:"noteToDirector"`
}

// EventEntry is one event/round registration, with its free-text partner
// list (0-2 entries, depending on the event).
type EventEntry struct {
	EventID  EventID  `json:"eventId"`
	Round    int      `json:"round"`
	Partners []string `json:"partners"`
}

// Registration is a single submitted registrant: their profile plus every
// event they entered.
type Registration struct {
	Contestant Contestant   `json:"contestant"`
	Events     []EventEntry `json:"events"`
}

// Batch is the full submitted JSON document: an ordered list of
// registrations, validated and reported on in input order.
type Batch struct {
	CompletedRegistrations []Registration `json:"completed_registrations"`
}

// DeclaresMembership reports whether the contestant claims IGRA
// membership, per spec §4.6 item 1 ("the registration declares
// membership").
func (c Contestant) DeclaresMembership() bool {
	return c.Association.MemberAssn
}
