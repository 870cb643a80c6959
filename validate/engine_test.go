// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package validate

import (
	"testing"
	"time"

	"github.com/saites/igra-converter/namematch"
	"github.com/saites/igra-converter/personnel"
	"github.com/saites/igra-converter/registration"
	"github.com/saites/igra-converter/registry"
)

var fixedNow = time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

func mustDB(t *testing.T, records []personnel.Record) *registry.Database {
	t.Helper()
	db, err := registry.New(records, namematch.DefaultConfig())
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return db
}

func adult(years int) registration.DateOfBirth {
	return registration.DateOfBirth{Year: fixedNow.Year() - years, Month: 1, Day: 1}
}

func fullContestant(igra, first, last, performance, gender string) registration.Contestant {
	return registration.Contestant{
		FirstName:       first,
		LastName:        last,
		PerformanceName: performance,
		DOB:             adult(30),
		Gender:          gender,
		Association:     registration.Association{IGRA: igra, MemberAssn: igra != ""},
		SSN:             "123-45-6789",
		Address: registration.Address{
			AddressLine1: "123 Main St",
			City:         "Springfield",
			Region:       "IL",
			Country:      "USA",
			ZipCode:      "62701",
			Email:        "person@example.com",
		},
	}
}

func record(igra, legalFirst, legalLast, perfFirst, perfLast, sex string) personnel.Record {
	r := personnel.Record{
		IGRANumber:  igra,
		Association: "IGRA",
		LegalFirst:  legalFirst,
		LegalLast:   legalLast,
		DateOfBirth: "19960101",
		Sex:         sex,
		SSN:         "123-45-6789",
		Address:     "123 Main St",
		City:        "Springfield",
		Region:      "IL",
		Country:     "USA",
		PostalCode:  "62701",
		Email:       "person@example.com",
	}
	r.PerformanceName.First = perfFirst
	r.PerformanceName.Last = perfLast
	return r
}

func TestRun_SingleValidSoloRegistration(t *testing.T) {
	rec := record("0001", "Jane", "Doe", "Jane", "Doe", "F")
	db := mustDB(t, []personnel.Record{rec})

	reg := registration.Registration{
		Contestant: fullContestant("0001", "Jane", "Doe", "Jane Doe", "Cowgirls"),
		Events: []registration.EventEntry{
			{EventID: registration.FlagRacing, Round: 1},
			{EventID: registration.FlagRacing, Round: 2},
		},
	}
	rec.DateOfBirth = "19960101"

	report := run(registration.Batch{CompletedRegistrations: []registration.Registration{reg}}, db, DefaultConfig(), fixedNow)

	if len(report.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(report.Results))
	}
	got := report.Results[0]
	if got.Found == nil || *got.Found != "0001" {
		t.Fatalf("expected found=0001, got %v", got.Found)
	}
	if len(got.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", got.Issues)
	}
	if _, ok := report.Relevant["0001"]; !ok {
		t.Fatalf("expected relevant to contain 0001")
	}
}

func TestRun_MutualTeamPair(t *testing.T) {
	a := record("0002", "Alice", "Alpha", "Alice", "Alpha", "F")
	b := record("0003", "Bob", "Beta", "Bob", "Beta", "M")
	db := mustDB(t, []personnel.Record{a, b})

	regA := registration.Registration{
		Contestant: fullContestant("0002", "Alice", "Alpha", "Alice Alpha", "Cowgirls"),
		Events: []registration.EventEntry{
			{EventID: registration.TeamRopingHeader, Round: 1, Partners: []string{"Bob Beta"}},
			{EventID: registration.TeamRopingHeader, Round: 2, Partners: []string{"Bob Beta"}},
		},
	}
	regB := registration.Registration{
		Contestant: fullContestant("0003", "Bob", "Beta", "Bob Beta", "Cowboys"),
		Events: []registration.EventEntry{
			{EventID: registration.TeamRopingHeader, Round: 1, Partners: []string{"Alice Alpha"}},
			{EventID: registration.TeamRopingHeader, Round: 2, Partners: []string{"Alice Alpha"}},
		},
	}

	report := run(registration.Batch{CompletedRegistrations: []registration.Registration{regA, regB}}, db, DefaultConfig(), fixedNow)

	for i, res := range report.Results {
		for _, iss := range res.Issues {
			if iss.Problem.Kind == UnregisteredPartner || iss.Problem.Kind == MismatchedPartners {
				t.Fatalf("result %d: unexpected issue %+v", i, iss.Problem)
			}
		}
		if len(res.Partners) != 2 {
			t.Fatalf("result %d: expected 2 confirmed partner links, got %d", i, len(res.Partners))
		}
	}
}

func TestRun_AsymmetricTeamPair(t *testing.T) {
	a := record("0010", "Alice", "Alpha", "Alice", "Alpha", "F")
	b := record("0011", "Bob", "Beta", "Bob", "Beta", "M")
	c := record("0012", "Carl", "Gamma", "Carl", "Gamma", "M")
	db := mustDB(t, []personnel.Record{a, b, c})

	regA := registration.Registration{
		Contestant: fullContestant("0010", "Alice", "Alpha", "Alice Alpha", "Cowgirls"),
		Events: []registration.EventEntry{
			{EventID: registration.TeamRopingHeader, Round: 1, Partners: []string{"Bob Beta"}},
			{EventID: registration.TeamRopingHeader, Round: 2, Partners: []string{"Bob Beta"}},
		},
	}
	regB := registration.Registration{
		Contestant: fullContestant("0011", "Bob", "Beta", "Bob Beta", "Cowboys"),
		Events: []registration.EventEntry{
			{EventID: registration.TeamRopingHeader, Round: 1, Partners: []string{"Carl Gamma"}},
			{EventID: registration.TeamRopingHeader, Round: 2, Partners: []string{"Carl Gamma"}},
		},
	}
	regC := registration.Registration{
		Contestant: fullContestant("0012", "Carl", "Gamma", "Carl Gamma", "Cowboys"),
		Events: []registration.EventEntry{
			{EventID: registration.TeamRopingHeader, Round: 1, Partners: []string{"Bob Beta"}},
			{EventID: registration.TeamRopingHeader, Round: 2, Partners: []string{"Bob Beta"}},
		},
	}

	report := run(registration.Batch{CompletedRegistrations: []registration.Registration{regA, regB, regC}}, db, DefaultConfig(), fixedNow)

	hasKind := func(issues []Issue, k ProblemKind) bool {
		for _, iss := range issues {
			if iss.Problem.Kind == k {
				return true
			}
		}
		return false
	}

	if !hasKind(report.Results[0].Issues, MismatchedPartners) {
		t.Errorf("expected A to have MismatchedPartners")
	}
	if !hasKind(report.Results[1].Issues, MismatchedPartners) {
		t.Errorf("expected B to have MismatchedPartners")
	}
}

func TestRun_FuzzyMatchNoPerfectMatch(t *testing.T) {
	rec := record("1946", "Freddie", "Mercury", "Freddie", "Mercury", "M")
	db := mustDB(t, []personnel.Record{rec})

	reg := registration.Registration{
		Contestant: registration.Contestant{
			PerformanceName: "Freddi Mercur",
			FirstName:       "Freddi",
			LastName:        "Mercur",
			DOB:             adult(30),
			Gender:          "Cowboys",
			Association:     registration.Association{MemberAssn: true},
			Address: registration.Address{
				AddressLine1: "1 Queen Rd", City: "London", Region: "LN",
				Country: "UK", ZipCode: "00000", Email: "f@example.com",
			},
		},
		Events: []registration.EventEntry{
			{EventID: registration.FlagRacing, Round: 1},
			{EventID: registration.FlagRacing, Round: 2},
		},
	}

	report := run(registration.Batch{CompletedRegistrations: []registration.Registration{reg}}, db, DefaultConfig(), fixedNow)
	got := report.Results[0]

	if got.Found != nil {
		t.Fatalf("expected found=nil, got %v", *got.Found)
	}
	var sawFix bool
	for _, iss := range got.Issues {
		if iss.Problem.Kind == NoPerfectMatch && iss.Fix.Kind == UseThisRecord && iss.Fix.RecordID == "1946" {
			sawFix = true
		}
	}
	if !sawFix {
		t.Fatalf("expected a UseThisRecord(1946) fix, got %+v", got.Issues)
	}
}

func TestRun_MismatchedCityField(t *testing.T) {
	rec := record("0004", "Jane", "Doe", "Jane", "Doe", "F")
	db := mustDB(t, []personnel.Record{rec})

	c := fullContestant("0004", "Jane", "Doe", "Jane Doe", "Cowgirls")
	c.Address.City = "Metropolis"
	reg := registration.Registration{
		Contestant: c,
		Events: []registration.EventEntry{
			{EventID: registration.FlagRacing, Round: 1},
			{EventID: registration.FlagRacing, Round: 2},
		},
	}

	report := run(registration.Batch{CompletedRegistrations: []registration.Registration{reg}}, db, DefaultConfig(), fixedNow)
	got := report.Results[0]

	if got.Found == nil || *got.Found != "0004" {
		t.Fatalf("expected found=0004, got %v", got.Found)
	}
	var mismatches []Issue
	for _, iss := range got.Issues {
		if iss.Problem.Kind == DbMismatch {
			mismatches = append(mismatches, iss)
		}
	}
	if len(mismatches) != 1 || mismatches[0].Problem.Locus.Field != "City" {
		t.Fatalf("expected exactly one DbMismatch{City}, got %+v", mismatches)
	}
	if mismatches[0].Fix.Kind != UpdateDatabase {
		t.Fatalf("expected fix UpdateDatabase, got %v", mismatches[0].Fix.Kind)
	}
}

func TestRun_NotAMemberBoundary(t *testing.T) {
	rec := record("0005", "Someone", "Else", "Someone", "Else", "M")
	db := mustDB(t, []personnel.Record{rec})

	c := registration.Contestant{
		FirstName:       "Zelda",
		LastName:        "Zephyr",
		PerformanceName: "Zelda Zephyr",
		DOB:             adult(25),
		Gender:          "Cowgirls",
		Association:     registration.Association{MemberAssn: false},
		Address: registration.Address{
			AddressLine1: "1 Elm St", City: "Anytown", Region: "TX",
			Country: "USA", ZipCode: "75001", Email: "z@example.com",
		},
	}
	reg := registration.Registration{
		Contestant: c,
		Events: []registration.EventEntry{
			{EventID: registration.FlagRacing, Round: 1},
			{EventID: registration.FlagRacing, Round: 2},
		},
	}

	report := run(registration.Batch{CompletedRegistrations: []registration.Registration{reg}}, db, DefaultConfig(), fixedNow)
	got := report.Results[0]

	if got.Found != nil {
		t.Fatalf("expected found=nil, got %v", *got.Found)
	}
	if len(got.Issues) != 1 || got.Issues[0].Problem.Kind != NotAMember {
		t.Fatalf("expected exactly one NotAMember issue, got %+v", got.Issues)
	}
}

func TestRun_IssueOrderFollowsEventDeclarationOrder(t *testing.T) {
	rec := record("0007", "Sam", "Solo", "Sam", "Solo", "M")
	db := mustDB(t, []personnel.Record{rec})

	// FlagRacing is declared first even though "BarrelRacing" sorts
	// before it lexicographically; issue order must follow declaration
	// order, not the EventID string.
	reg := registration.Registration{
		Contestant: fullContestant("0007", "Sam", "Solo", "Sam Solo", "Cowboys"),
		Events: []registration.EventEntry{
			{EventID: registration.FlagRacing, Round: 1, Partners: []string{"someone"}},
			{EventID: registration.FlagRacing, Round: 2, Partners: []string{"someone"}},
			{EventID: registration.BarrelRacing, Round: 1, Partners: []string{"someone"}},
			{EventID: registration.BarrelRacing, Round: 2, Partners: []string{"someone"}},
		},
	}

	report := run(registration.Batch{CompletedRegistrations: []registration.Registration{reg}}, db, DefaultConfig(), fixedNow)
	got := report.Results[0]

	var order []string
	for _, iss := range got.Issues {
		if iss.Problem.Kind == TooManyPartners {
			order = append(order, iss.Problem.Locus.Event)
		}
	}
	want := []string{"FlagRacing", "FlagRacing", "BarrelRacing", "BarrelRacing"}
	if len(order) != len(want) {
		t.Fatalf("expected %d TooManyPartners issues, got %d (issues: %+v)", len(want), len(order), got.Issues)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("issue %d: expected event %q, got %q (full order: %v)", i, want[i], order[i], order)
		}
	}
}

func TestRun_TeamEventBothPartnersEmpty(t *testing.T) {
	rec := record("0006", "Pat", "Person", "Pat", "Person", "M")
	db := mustDB(t, []personnel.Record{rec})

	reg := registration.Registration{
		Contestant: fullContestant("0006", "Pat", "Person", "Pat Person", "Cowboys"),
		Events: []registration.EventEntry{
			{EventID: registration.WildDragRace, Round: 1, Partners: []string{"", ""}},
			{EventID: registration.WildDragRace, Round: 2, Partners: []string{"", ""}},
		},
	}

	report := run(registration.Batch{CompletedRegistrations: []registration.Registration{reg}}, db, DefaultConfig(), fixedNow)
	got := report.Results[0]

	var fewCount int
	for _, iss := range got.Issues {
		if iss.Problem.Kind == TooFewPartners && iss.Problem.Locus.Round == 1 {
			fewCount++
		}
	}
	if fewCount != 1 {
		t.Fatalf("expected exactly one TooFewPartners for round 1, got %d (issues: %+v)", fewCount, got.Issues)
	}
}
