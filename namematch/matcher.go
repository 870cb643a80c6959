// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package namematch

import (
	"regexp"
	"sort"

	"github.com/saites/igra-converter/bktree"
)

// Config holds the tunable thresholds spec §4.4 calls out as design
// defaults: implementations may retune them but must preserve the
// formula's ordinal properties.
type Config struct {
	TPerf  int     // BK-tree tolerance for the performance-name index
	TLegal int     // BK-tree tolerance for the legal-name index
	TMax   float64 // candidates scoring worse than this are discarded
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{TPerf: DefaultTPerf, TLegal: DefaultTLegal, TMax: DefaultTMax}
}

// Names is the pair of name strings a matcher needs to score a record:
// its normalized performance name ("first last") and normalized legal
// name. Matcher never looks at raw database text directly, only at these
// two precomputed, normalized strings, so callers own normalization of
// their own record store.
type Names struct {
	Performance string
	Legal       string
}

// Lookup resolves record IDs returned from the BK-tree indexes back to the
// name strings composite scoring needs, and answers whether a candidate ID
// string corresponds to a real record (used for the IGRA# bonus).
type Lookup interface {
	Names(recordID string) (Names, bool)
	Exists(recordID string) bool
}

// Matcher ranks candidate records against a query name using the indexes
// built over a personnel database.
type Matcher struct {
	Config      Config
	Performance *bktree.Tree // keyed by normalized "first last" performance names
	Legal       *bktree.Tree // keyed by normalized "legal_first legal_last" names
	FirstToken  *bktree.Tree // keyed by normalized legal first names
	LastToken   *bktree.Tree // keyed by normalized legal last names
	Lookup      Lookup
}

// idLikeToken matches any run of 4 alphanumeric characters, the shape of
// an IGRA#, inside free text (e.g. "1234" in "Jane Doe #1234"). It is not
// anchored to word boundaries, so it also yields 4-character pieces of
// longer words; only runs that are real record IDs become candidates.
var idLikeToken = regexp.MustCompile(`[A-Za-z0-9]{4}`)

// MatchSingle resolves a single free-text name (a performance name field
// or a partner string) against both the performance and legal name
// indexes, per spec §4.4's "single name string" query shape.
func (m *Matcher) MatchSingle(raw string) []Candidate {
	q := Normalize(raw)

	byID := make(map[string]*Candidate)
	consider := func(recordID string) {
		if _, ok := byID[recordID]; ok {
			return
		}
		names, ok := m.Lookup.Names(recordID)
		if !ok {
			return
		}
		best := compositeScore(raw, q, names.Performance, recordID)
		if alt := compositeScore(raw, q, names.Legal, recordID); alt.Score < best.Score {
			best = alt
		}
		byID[recordID] = &best
	}

	if m.Performance != nil {
		for _, hit := range m.Performance.Lookup(q, m.Config.TPerf) {
			consider(hit.ID)
		}
	}
	if m.Legal != nil {
		for _, hit := range m.Legal.Lookup(q, m.Config.TLegal) {
			consider(hit.ID)
		}
	}

	for _, tok := range extractIDCandidates(raw) {
		if m.Lookup.Exists(tok) {
			consider(tok)
		}
	}

	return finalize(byID, m.Config.TMax)
}

// MatchSplitLegal resolves a legal first/last name pair against the
// first- and last-name token indexes, intersecting the two hit sets per
// spec §4.4's "split legal name" query shape.
func (m *Matcher) MatchSplitLegal(first, last string) []Candidate {
	qFirst, qLast := Normalize(first), Normalize(last)
	q := Normalize(first + " " + last)

	firstHits := hitSet(m.FirstToken, qFirst, m.Config.TLegal)
	lastHits := hitSet(m.LastToken, qLast, m.Config.TLegal)

	byID := make(map[string]*Candidate)
	for recordID := range firstHits {
		if _, ok := lastHits[recordID]; !ok {
			continue
		}
		names, ok := m.Lookup.Names(recordID)
		if !ok {
			continue
		}
		c := compositeScore(q, q, names.Legal, recordID)
		byID[recordID] = &c
	}

	return finalize(byID, m.Config.TMax)
}

func hitSet(tree *bktree.Tree, query string, tolerance int) map[string]struct{} {
	out := make(map[string]struct{})
	if tree == nil {
		return out
	}
	for _, hit := range tree.Lookup(query, tolerance) {
		out[hit.ID] = struct{}{}
	}
	return out
}

func extractIDCandidates(raw string) []string {
	// Explicit "name | id" / "id | name" shape first, then fall back to
	// any run of 4 alphanumeric characters in the free text.
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, part := range splitPipe(raw) {
		add(part)
	}
	for _, m := range idLikeToken.FindAllString(raw, -1) {
		add(m)
	}
	return out
}

func splitPipe(raw string) []string {
	var out []string
	start := 0
	for i, r := range raw {
		if r == '|' {
			out = append(out, trimSpace(raw[start:i]))
			start = i + 1
		}
	}
	out = append(out, trimSpace(raw[start:]))
	return out
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}

func finalize(byID map[string]*Candidate, tMax float64) []Candidate {
	out := make([]Candidate, 0, len(byID))
	for _, c := range byID {
		if c.Score <= tMax {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].RecordID < out[j].RecordID
	})
	return out
}

// IsPerfectMatch implements spec §4.4's perfect-match predicate: a
// candidate is a perfect match iff its score is <= 0 AND either its
// normalized performance or legal name equals the query exactly, or the
// record's IGRA# is present in the (raw) query.
func IsPerfectMatch(c Candidate, raw string, names Names) bool {
	if c.Score > 0 {
		return false
	}
	q := Normalize(raw)
	return q == names.Performance || q == names.Legal || containsID(raw, c.RecordID)
}
