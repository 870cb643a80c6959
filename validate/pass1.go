// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package validate

import (
	"sort"
	"strings"
	"time"

	"github.com/saites/igra-converter/namematch"
	"github.com/saites/igra-converter/registration"
	"github.com/saites/igra-converter/registry"
)

// resolveRegistrant implements spec §4.6 Pass 1 step 1: resolve the
// registrant's identity against the database and record the matching
// issues.
func resolveRegistrant(res *Result, reg registration.Registration, db Resolver, cfg Config) {
	fr := db.FindRegistrant(reg)
	declaresMember := reg.Contestant.DeclaresMembership()

	switch fr.Kind {
	case registry.FindPerfectMatch:
		id := fr.Record.IGRANumber
		res.Found = &id

	case registry.FindCandidates:
		kind := NoPerfectMatch
		if !declaresMember {
			kind = MaybeAMember
		}
		res.Issues = append(res.Issues, Issue{Problem: Problem{Kind: kind, Locus: newLocus()}})
		for _, c := range topN(fr.Candidates, cfg.TopNCandidates) {
			res.Issues = append(res.Issues, Issue{
				Problem: Problem{Kind: kind, Locus: newLocus()},
				Fix:     Fix{Kind: UseThisRecord, RecordID: c.RecordID},
			})
		}

	case registry.FindNone:
		if declaresMember {
			res.Issues = append(res.Issues, Issue{
				Problem: Problem{Kind: NoPerfectMatch, Locus: newLocus()},
				Fix:     Fix{Kind: AddNewMember},
			})
		} else {
			res.Issues = append(res.Issues, Issue{Problem: Problem{Kind: NotAMember, Locus: newLocus()}})
		}
	}
}

func topN(cs []namematch.Candidate, n int) []namematch.Candidate {
	if n <= 0 || len(cs) <= n {
		return cs
	}
	return cs[:n]
}

// validateOwnFields implements spec §4.6 Pass 1 step 2.
func validateOwnFields(res *Result, reg registration.Registration, db Resolver, cfg Config, now time.Time) {
	c := reg.Contestant

	if !requiredFieldsPresent(c) {
		res.Issues = append(res.Issues, Issue{
			Problem: Problem{Kind: NoValue, Locus: newLocus()},
			Fix:     Fix{Kind: ContactRegistrant},
		})
	}

	if c.DOB.Year != 0 && !isOldEnough(c.DOB, cfg.MinAge, now) {
		res.Issues = append(res.Issues, Issue{
			Problem: Problem{Kind: NotOldEnough, Locus: newLocus()},
			Fix:     Fix{Kind: ContactRegistrant},
		})
	}

	if res.Found == nil {
		return
	}
	rec, err := db.Lookup(*res.Found)
	if err != nil {
		return
	}
	for _, field := range mismatchedFields(c, rec) {
		res.Issues = append(res.Issues, Issue{
			Problem: Problem{Kind: DbMismatch, Locus: Locus{Index: -1, Field: field}},
			Fix:     Fix{Kind: UpdateDatabase},
		})
	}
}

// validateEvents implements spec §4.6 Pass 1 step 3.
func validateEvents(res *Result, reg registration.Registration, cfg Config) {
	totalRounds := 0
	for _, e := range reg.Events {
		locus := Locus{Event: string(e.EventID), Round: e.Round, Index: -1}

		if !e.EventID.Valid() {
			res.Issues = append(res.Issues, Issue{
				Problem: Problem{Kind: UnknownEventID, Locus: locus},
				Fix:     Fix{Kind: ContactDevelopers},
			})
			continue
		}
		if e.Round != 1 && e.Round != 2 {
			res.Issues = append(res.Issues, Issue{
				Problem: Problem{Kind: InvalidRoundID, Locus: locus},
				Fix:     Fix{Kind: ContactDevelopers},
			})
			continue
		}
		totalRounds++

		nonEmpty := 0
		for _, p := range e.Partners {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				nonEmpty++
			}
		}

		if e.EventID.IsSolo() {
			if nonEmpty > 0 {
				res.Issues = append(res.Issues, Issue{
					Problem: Problem{Kind: TooManyPartners, Locus: locus},
					Fix:     Fix{Kind: ContactRegistrant},
				})
			}
			continue
		}

		required, _ := e.EventID.RequiredPartners()
		switch {
		case nonEmpty < required:
			res.Issues = append(res.Issues, Issue{
				Problem: Problem{Kind: TooFewPartners, Locus: locus},
				Fix:     Fix{Kind: ContactRegistrant},
			})
		case nonEmpty > required:
			res.Issues = append(res.Issues, Issue{
				Problem: Problem{Kind: TooManyPartners, Locus: locus},
				Fix:     Fix{Kind: ContactRegistrant},
			})
		}
	}

	if totalRounds < cfg.MinGoRounds {
		res.Issues = append(res.Issues, Issue{
			Problem: Problem{Kind: NotEnoughRounds, Locus: newLocus()},
			Fix:     Fix{Kind: ContactRegistrant},
		})
	}
}

// eventDeclarationOrder maps each distinct EventID in events to the index
// of its first occurrence, so later sorting passes can order by
// declaration order rather than by the EventID string itself.
func eventDeclarationOrder(events []registration.EventEntry) map[string]int {
	order := make(map[string]int, len(events))
	for i, e := range events {
		key := string(e.EventID)
		if _, ok := order[key]; !ok {
			order[key] = i
		}
	}
	return order
}

// resolvePartners implements spec §4.6 Pass 1 step 4.
func resolvePartners(res *Result, reg registration.Registration, db Resolver, cfg Config, order map[string]int) []tentativeLink {
	var out []tentativeLink

	for _, e := range reg.Events {
		for idx, p := range e.Partners {
			if strings.TrimSpace(p) == "" {
				continue
			}
			locus := Locus{Event: string(e.EventID), Round: e.Round, Index: idx}

			fr := db.FindPartner(p)
			switch fr.Kind {
			case registry.FindPerfectMatch:
				link := PartnerLink{Event: e.EventID, Round: e.Round, Index: idx, IGRANumber: fr.Record.IGRANumber}
				out = append(out, tentativeLink{confirmed: true, link: link})

			case registry.FindCandidates:
				res.Issues = append(res.Issues, Issue{Problem: Problem{Kind: UnknownPartner, Locus: locus}})
				for _, c := range topN(fr.Candidates, cfg.TopNCandidates) {
					res.Issues = append(res.Issues, Issue{
						Problem: Problem{Kind: UnknownPartner, Locus: locus},
						Fix:     Fix{Kind: UseThisRecord, RecordID: c.RecordID},
					})
				}

			case registry.FindNone:
				res.Issues = append(res.Issues, Issue{
					Problem: Problem{Kind: UnknownPartner, Locus: locus},
					Fix:     Fix{Kind: ContactRegistrant},
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].link, out[j].link
		ao, bo := order[string(a.Event)], order[string(b.Event)]
		if ao != bo {
			return ao < bo
		}
		if a.Round != b.Round {
			return a.Round < b.Round
		}
		return a.Index < b.Index
	})

	return out
}

