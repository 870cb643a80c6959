// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package namematch

import "github.com/xrash/smetrics"

// ReasonFlags records which scoring signals contributed to a Candidate's
// score, for auditing. Combine with bitwise or.
type ReasonFlags uint8

const (
	ReasonEditDistance ReasonFlags = 1 << iota
	ReasonTokenOverlap
	ReasonInitialism
	ReasonSubstring
	ReasonIDMatch
	// ReasonJaroClose marks candidates smetrics.JaroWinkler rates as a
	// close match even when they don't otherwise score well -- an
	// auxiliary signal surfaced for auditing, never added to Score, so
	// it cannot change candidate ordering (spec §4.4 requires the
	// formula's ordinal properties be preserved).
	ReasonJaroClose
)

// Default scoring constants and thresholds, per spec §4.4.
const (
	DefaultTPerf  = 3
	DefaultTLegal = 3
	DefaultTMax   = 8.0

	tokenWeight      = 3.0
	initialismBonus  = -2.0
	substringBonus   = -1.0
	idBonus          = -5.0
	jaroCloseMinimum = 0.92
)

// Candidate is one scored record, ready to be sorted ascending by Score.
type Candidate struct {
	RecordID string
	Score    float64
	Reasons  ReasonFlags
}

// compositeScore implements the spec §4.4 formula exactly:
//
//	score = levenshtein(q, name) + 3*tokenJaccardPenalty(q, name)
//	      + initialism_bonus + substring_bonus + id_bonus
//
// rawQuery is the query before normalization, used only to test for an
// embedded IGRA# (digits survive normalization, but the raw form keeps the
// "|"-separated shape intact for containsID).
func compositeScore(rawQuery, q, name, recordID string) Candidate {
	base := float64(Levenshtein(q, name))
	tokens := tokenJaccardPenalty(q, name)

	var reasons ReasonFlags
	reasons |= ReasonEditDistance
	if tokens > 0 {
		reasons |= ReasonTokenOverlap
	}

	score := base + tokenWeight*tokens

	if isInitialism(q, name) {
		score += initialismBonus
		reasons |= ReasonInitialism
	}
	if isSubstring(q, name) {
		score += substringBonus
		reasons |= ReasonSubstring
	}
	if containsID(rawQuery, recordID) {
		score += idBonus
		reasons |= ReasonIDMatch
	}
	if smetrics.JaroWinkler(q, name, 0.7, 4) >= jaroCloseMinimum {
		reasons |= ReasonJaroClose
	}

	return Candidate{RecordID: recordID, Score: score, Reasons: reasons}
}
