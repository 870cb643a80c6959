// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/saites/igra-converter/personnel"
	"github.com/saites/igra-converter/registration"
)

// mismatchedFields compares a submitted contestant against its matched
// database record, returning the field names that differ per spec §4.6
// item 2's field set and comparison rules.
func mismatchedFields(c registration.Contestant, r personnel.Record) []string {
	var out []string
	add := func(ok bool, field string) {
		if !ok {
			out = append(out, field)
		}
	}

	add(textEqual(c.Association.IGRA, r.IGRANumber), "IGRANumber")
	add(membershipEqual(c.Association.MemberAssn, r.Association), "Association")
	add(textEqual(c.FirstName, r.LegalFirst), "LegalFirst")
	add(textEqual(c.LastName, r.LegalLast), "LegalLast")
	add(textEqual(c.PerformanceName, joinName(r.PerformanceFirst(), r.PerformanceLast())), "PerformanceName")
	add(dobEqual(c.DOB, r.DateOfBirth), "DateOfBirth")
	add(textEqual(c.SSN, r.SSN), "SSN")
	add(categoryEqual(c.Gender, r.Sex), "CompetitionCategory")
	add(textEqual(c.Address.AddressLine1, r.Address), "AddressLine")
	add(textEqual(c.Address.City, r.City), "City")
	add(textEqual(c.Address.Region, r.Region), "Region")
	add(textEqual(c.Address.Country, r.Country), "Country")
	add(textEqual(c.Address.ZipCode, r.PostalCode), "PostalCode")
	add(textEqual(c.Address.Email, r.Email), "Email")
	add(textEqual(c.Address.CellPhoneNo, r.CellPhone), "CellPhone")
	add(textEqual(c.Address.HomePhoneNo, r.HomePhone), "HomePhone")

	return out
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// textEqual compares free text case-insensitively and whitespace-
// normalized, per spec §4.6 item 2.
func textEqual(a, b string) bool {
	return normalizeText(a) == normalizeText(b)
}

func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// membershipEqual treats a declared member as matching any record that
// exists with a non-empty Association code; there is no boolean
// "association" column in the DBF, only an association code string.
func membershipEqual(declared bool, dbAssociation string) bool {
	return declared == (strings.TrimSpace(dbAssociation) != "")
}

// dobEqual compares dates of birth exactly, per spec §4.6's "exact for
// numeric/date" rule.
func dobEqual(d registration.DateOfBirth, dbDate string) bool {
	want := fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
	return want == dbDate
}

// categoryEqual implements the Cowboys<->M, Cowgirls<->F mapping spec
// §4.6 item 2 calls out explicitly.
func categoryEqual(gender, sex string) bool {
	switch strings.TrimSpace(gender) {
	case "Cowboys":
		return sex == "M"
	case "Cowgirls":
		return sex == "F"
	default:
		return false
	}
}

// isOldEnough reports whether a DOB implies an age of at least minAge
// years as of now.
func isOldEnough(d registration.DateOfBirth, minAge int, now time.Time) bool {
	dob := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	cutoff := now.AddDate(-minAge, 0, 0)
	return !dob.After(cutoff)
}

// requiredFieldsPresent reports whether every field spec §4.6 item 2
// marks required is non-empty: first name, last name, DOB, address, city,
// region, postal code, and at least one of email/cell/home phone.
func requiredFieldsPresent(c registration.Contestant) bool {
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
		return false
	}
	if c.DOB.Year == 0 || c.DOB.Month == 0 || c.DOB.Day == 0 {
		return false
	}
	a := c.Address
	if strings.TrimSpace(a.AddressLine1) == "" || strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.Region) == "" || strings.TrimSpace(a.ZipCode) == "" {
		return false
	}
	if strings.TrimSpace(a.Email) == "" && strings.TrimSpace(a.CellPhoneNo) == "" && strings.TrimSpace(a.HomePhoneNo) == "" {
		return false
	}
	return true
}
