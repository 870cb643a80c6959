// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package validate

import (
	"sort"
	"time"

	"github.com/saites/igra-converter/personnel"
	"github.com/saites/igra-converter/registration"
	"github.com/saites/igra-converter/registry"
)

// Resolver is the narrow slice of *registry.Database the engine depends
// on, so engine tests can substitute validatemock's generated double
// instead of building a real personnel database.
type Resolver interface {
	Lookup(igraNumber string) (personnel.Record, error)
	FindRegistrant(reg registration.Registration) registry.FindResult
	FindPartner(partner string) registry.FindResult
}

// Run executes the two-pass validation algorithm over a batch against db,
// per spec §4.6.
func Run(batch registration.Batch, db Resolver, cfg Config) Report {
	return run(batch, db, cfg, time.Now())
}

// run is Run with an injected clock, so age-boundary tests don't depend
// on wall-clock time.
func run(batch registration.Batch, db Resolver, cfg Config, now time.Time) Report {
	regs := batch.CompletedRegistrations
	results := make([]*Result, len(regs))
	found := make([]string, len(regs)) // "" if unresolved
	tentativeLinks := make([][]tentativeLink, len(regs))
	eventOrders := make([]map[string]int, len(regs))

	for i, reg := range regs {
		res := &Result{Registration: reg, Partners: []PartnerLink{}, Issues: []Issue{}}
		results[i] = res
		order := eventDeclarationOrder(reg.Events)
		eventOrders[i] = order

		resolveRegistrant(res, reg, db, cfg)
		if res.Found != nil {
			found[i] = *res.Found
		}
		validateOwnFields(res, reg, db, cfg, now)
		validateEvents(res, reg, cfg)
		tentativeLinks[i] = resolvePartners(res, reg, db, cfg, order)
	}

	byIGRA := make(map[string]int, len(regs))
	for i, id := range found {
		if id != "" {
			byIGRA[id] = i
		}
	}

	confirmed := make([][]PartnerLink, len(regs))
	for i, links := range tentativeLinks {
		for _, l := range links {
			if l.confirmed {
				confirmed[i] = append(confirmed[i], l.link)
				results[i].Partners = append(results[i].Partners, l.link)
			}
		}
	}

	for i := range regs {
		for _, link := range confirmed[i] {
			j, ok := byIGRA[link.IGRANumber]
			if !ok {
				results[i].Issues = append(results[i].Issues, Issue{
					Problem: Problem{Kind: UnregisteredPartner, Locus: Locus{
						Event: string(link.Event), Round: link.Round, Index: link.Index,
					}},
					Fix: Fix{Kind: ContactRegistrant},
				})
				continue
			}
			if !hasReciprocal(confirmed[j], found[i], link.Event, link.Round) {
				results[i].Issues = append(results[i].Issues, Issue{
					Problem: Problem{Kind: MismatchedPartners, Locus: Locus{
						Event: string(link.Event), Round: link.Round, Index: link.Index,
					}},
					Fix: Fix{Kind: ContactRegistrant},
				})
				// The partner who did not list this registrant back gets a
				// matching entry too, so the mismatch is reported on both sides.
				back := newLocus()
				for _, e := range regs[j].Events {
					if e.EventID == link.Event && e.Round == link.Round {
						back.Event, back.Round = string(link.Event), link.Round
						break
					}
				}
				results[j].Issues = append(results[j].Issues, Issue{
					Problem: Problem{Kind: MismatchedPartners, Locus: back},
					Fix:     Fix{Kind: ContactRegistrant},
				})
			}
		}
	}

	relevant := map[string]personnel.Record{}
	for i, res := range results {
		if found[i] != "" {
			addRelevant(relevant, db, found[i])
		}
		for _, l := range res.Partners {
			addRelevant(relevant, db, l.IGRANumber)
		}
		for _, iss := range res.Issues {
			if iss.Fix.Kind == UseThisRecord && iss.Fix.RecordID != "" {
				addRelevant(relevant, db, iss.Fix.RecordID)
			}
		}
	}

	out := make([]Result, len(results))
	for i, r := range results {
		sortIssues(r.Issues, eventOrders[i])
		out[i] = *r
	}

	return Report{Results: out, Relevant: relevant}
}

type tentativeLink struct {
	confirmed bool
	link      PartnerLink
}

// hasReciprocal reports whether registrant j (identified by its confirmed
// links) lists selfIGRA back for the same (event, round); partner index
// is irrelevant to symmetry, per spec §4.6 Pass 2.
func hasReciprocal(links []PartnerLink, selfIGRA string, event registration.EventID, round int) bool {
	if selfIGRA == "" {
		return false
	}
	for _, l := range links {
		if l.Event == event && l.Round == round && l.IGRANumber == selfIGRA {
			return true
		}
	}
	return false
}

func addRelevant(relevant map[string]personnel.Record, db Resolver, igra string) {
	if _, ok := relevant[igra]; ok {
		return
	}
	if rec, err := db.Lookup(igra); err == nil {
		relevant[igra] = rec
	}
}

// sortIssues orders issues by event declaration order (the event's first
// occurrence index in the registration's own events list, via order),
// then round, then partner index, per spec §4.6's determinism paragraph.
// Issues without a meaningful locus (e.g. NoValue) have no entry in order
// and sort before those with one, and are otherwise stable in the order
// they were appended.
func sortIssues(issues []Issue, order map[string]int) {
	indexOf := func(event string) int {
		if i, ok := order[event]; ok {
			return i
		}
		return -1
	}
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Problem.Locus, issues[j].Problem.Locus
		ao, bo := indexOf(a.Event), indexOf(b.Event)
		if ao != bo {
			return ao < bo
		}
		if a.Round != b.Round {
			return a.Round < b.Round
		}
		return a.Index < b.Index
	})
}
