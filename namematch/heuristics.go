// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package namematch

import "strings"

// tokenJaccardPenalty is 0 when q and name share an identical token set,
// else |symmetric difference| / |union|, per spec §4.4.
func tokenJaccardPenalty(q, name string) float64 {
	a, b := Tokens(q), Tokens(name)
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	setA := toSet(a)
	setB := toSet(b)

	union := make(map[string]struct{}, len(setA)+len(setB))
	symDiff := 0
	for t := range setA {
		union[t] = struct{}{}
		if _, ok := setB[t]; !ok {
			symDiff++
		}
	}
	for t := range setB {
		union[t] = struct{}{}
		if _, ok := setA[t]; !ok {
			symDiff++
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(symDiff) / float64(len(union))
}

func toSet(tokens []string) map[string]struct{} {
	s := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// isInitialism reports whether q consists of the first letters of name's
// tokens, in order -- e.g. "fm" against "freddie mercury".
func isInitialism(q, name string) bool {
	q = strings.ToLower(strings.ReplaceAll(q, " ", ""))
	tokens := Tokens(name)
	if len(q) == 0 || len(tokens) != len(q) {
		return false
	}
	for i, tok := range tokens {
		if len(tok) == 0 || tok[0] != q[i] {
			return false
		}
	}
	return true
}

// isSubstring reports whether a is a contiguous substring of b or b of a,
// case-insensitively.
func isSubstring(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(b, a) || strings.Contains(a, b)
}

// containsID reports whether id appears in raw as a standalone token,
// split on whitespace or the "|" separator used by "name | id" / "id |
// name" free-text partner fields.
func containsID(raw, id string) bool {
	if id == "" {
		return false
	}
	raw = strings.ReplaceAll(raw, "|", " ")
	for _, field := range strings.Fields(raw) {
		if field == id {
			return true
		}
	}
	return false
}
