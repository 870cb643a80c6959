// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package registry

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/saites/igra-converter/namematch"
	"github.com/saites/igra-converter/personnel"
	"github.com/saites/igra-converter/registration"
)

// FindKind discriminates the three shapes a name resolution can take, per
// spec §4.5.
type FindKind int

const (
	FindNone FindKind = iota
	FindPerfectMatch
	FindCandidates
)

// FindResult is the outcome of resolving a free-text name (a registrant's
// own identity, or a partner string) against the database.
type FindResult struct {
	Kind       FindKind
	Record     *personnel.Record   // set iff Kind == FindPerfectMatch
	Candidates []namematch.Candidate // set iff Kind == FindCandidates, ascending by score
}

// searchLimit is the "top N" cap spec §4.6 item 1 applies when emitting one
// UseThisRecord fix per NoPerfectMatch candidate.
const searchLimit = 5

// FindRegistrant resolves a submitted contestant to a database record. If
// an IGRA# was provided, it is checked first and must also have a name
// that matches within tolerance (otherwise the claimed IGRA# is treated as
// unreliable and the normal name search runs instead). Otherwise the name
// matcher runs over the performance name, then the legal name.
func (db *Database) FindRegistrant(reg registration.Registration) FindResult {
	c := reg.Contestant

	if claimed := strings.TrimSpace(c.Association.IGRA); claimed != "" {
		if rec, err := db.Lookup(claimed); err == nil {
			if db.nameMatchesWithinTolerance(rec, c) {
				return FindResult{Kind: FindPerfectMatch, Record: &rec}
			}
		}
	}

	if perf := strings.TrimSpace(c.PerformanceName); perf != "" {
		if res := db.resolveSingle(perf); res.Kind != FindNone {
			return res
		}
	}

	if strings.TrimSpace(c.FirstName) != "" || strings.TrimSpace(c.LastName) != "" {
		if res := db.resolveSplitLegal(c.FirstName, c.LastName); res.Kind != FindNone {
			return res
		}
	}

	return FindResult{Kind: FindNone}
}

// nameMatchesWithinTolerance checks a claimed-IGRA# record's own name
// against the contestant's submitted names, reusing the matcher's
// tolerances rather than inventing a second comparison rule.
func (db *Database) nameMatchesWithinTolerance(rec personnel.Record, c registration.Contestant) bool {
	perfQuery := strings.TrimSpace(c.PerformanceName)
	if perfQuery != "" {
		d := namematch.Levenshtein(namematch.Normalize(perfQuery), namematch.Normalize(rec.PerformanceFirst()+" "+rec.PerformanceLast()))
		if d <= db.matcher.Config.TPerf {
			return true
		}
	}
	legalQuery := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if legalQuery != "" {
		d := namematch.Levenshtein(namematch.Normalize(legalQuery), namematch.Normalize(rec.LegalFirst+" "+rec.LegalLast))
		if d <= db.matcher.Config.TLegal {
			return true
		}
	}
	return perfQuery == "" && legalQuery == ""
}

func (db *Database) resolveSingle(query string) FindResult {
	candidates := db.matcher.MatchSingle(query)
	return db.classify(query, candidates)
}

func (db *Database) resolveSplitLegal(first, last string) FindResult {
	candidates := db.matcher.MatchSplitLegal(first, last)
	return db.classify(first+" "+last, candidates)
}

func (db *Database) classify(rawQuery string, candidates []namematch.Candidate) FindResult {
	if len(candidates) == 0 {
		return FindResult{Kind: FindNone}
	}
	best := candidates[0]
	names, _ := (*nameLookup)(db).Names(best.RecordID)
	if namematch.IsPerfectMatch(best, rawQuery, names) {
		rec := db.byID[best.RecordID]
		return FindResult{Kind: FindPerfectMatch, Record: &rec}
	}
	return FindResult{Kind: FindCandidates, Candidates: truncate(candidates, searchLimit)}
}

func truncate(c []namematch.Candidate, n int) []namematch.Candidate {
	if len(c) <= n {
		return c
	}
	return c[:n]
}

// searchResultLimit caps SearchPerformance's output, per spec §6's search
// endpoint contract: "ordered by composite score ascending, truncated to
// top 50."
const searchResultLimit = 50

// SearchPerformance ranks the records the name matcher finds for a
// free-text performance name (BK-tree neighbors within tolerance plus any
// embedded IGRA#), for the search command/endpoint (spec §6), ascending by
// composite score and truncated to the top 50. Results are cached by normalized
// query, since operators commonly re-run the same search.
func (db *Database) SearchPerformance(query string) []personnel.Record {
	key := namematch.Normalize(query)
	if cached, ok := db.search.Get(key); ok {
		return cached.([]personnel.Record)
	}

	candidates := truncate(db.matcher.MatchSingle(query), searchResultLimit)
	out := make([]personnel.Record, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, db.byID[c.RecordID])
	}

	db.search.Add(key, out)
	return out
}

// FindPartner resolves a free-text partner string to a registrant using
// the heuristic spec §9's design notes mark as the current, fragile, but
// must-reproduce behavior: an embedded IGRA# wins outright (first such
// token found in the string); failing that, a case-insensitive substring
// match against any record's performance or legal name. This is
// deliberately simpler than MatchSingle's composite scoring -- partner
// strings are looked up far more often than they're resolved with
// confidence, and the spec calls out that a more robust Name-Matcher-based
// replacement is future work, not current behavior.
func (db *Database) FindPartner(partner string) FindResult {
	partner = strings.TrimSpace(partner)
	if partner == "" {
		return FindResult{Kind: FindNone}
	}

	if id, ok := firstEmbeddedID(partner, db.byID); ok {
		rec := db.byID[id]
		return FindResult{Kind: FindPerfectMatch, Record: &rec}
	}

	lower := strings.ToLower(partner)
	var hits []string
	for id, rec := range db.byID {
		perf := strings.ToLower(strings.TrimSpace(rec.PerformanceFirst() + " " + rec.PerformanceLast()))
		legal := strings.ToLower(strings.TrimSpace(rec.LegalFirst + " " + rec.LegalLast))
		if substringEitherWay(lower, perf) || substringEitherWay(lower, legal) {
			hits = append(hits, id)
		}
	}
	slices.Sort(hits)

	switch len(hits) {
	case 0:
		return FindResult{Kind: FindNone}
	case 1:
		rec := db.byID[hits[0]]
		return FindResult{Kind: FindPerfectMatch, Record: &rec}
	default:
		candidates := make([]namematch.Candidate, len(hits))
		for i, id := range hits {
			candidates[i] = namematch.Candidate{RecordID: id}
		}
		return FindResult{Kind: FindCandidates, Candidates: candidates}
	}
}

func substringEitherWay(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// firstEmbeddedID scans partner left to right for the first whitespace- or
// pipe-delimited token that is a real record ID, per the "IGRA# substring
// -> first win" rule.
func firstEmbeddedID(partner string, byID map[string]personnel.Record) (string, bool) {
	for _, field := range strings.FieldsFunc(partner, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '|'
	}) {
		if _, ok := byID[field]; ok {
			return field, true
		}
	}
	return "", false
}
