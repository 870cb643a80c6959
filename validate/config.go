// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package validate implements the two-pass validation engine: per-
// registrant resolution and field validation (Pass 1), followed by
// cross-registrant partner-link symmetry checking (Pass 2), per spec §4.6.
package validate

// Config holds the engine's tunable minimums, per spec §4.6 item 2 and
// item 3's "design default" callouts.
type Config struct {
	MinAge         int // minimum age in years on the current date
	MinGoRounds    int // minimum total go-rounds across any events
	TopNCandidates int // cap on UseThisRecord fixes emitted per NoPerfectMatch/UnknownPartner problem
}

// DefaultConfig returns the spec's documented design defaults.
func DefaultConfig() Config {
	return Config{
		MinAge:         18,
		MinGoRounds:    2,
		TopNCandidates: 5,
	}
}
