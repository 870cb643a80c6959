// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package namematch

import "strings"

// Normalize lowercases s and collapses runs of whitespace to single
// spaces, trimming leading/trailing space. This is the key form stored in
// and queried against the BK-tree name indexes.
func Normalize(s string) string {
	fields := strings.Fields(s)
	return strings.ToLower(strings.Join(fields, " "))
}

// Tokens splits a normalized (or raw) name into lowercase whitespace
// tokens.
func Tokens(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	return fields
}
