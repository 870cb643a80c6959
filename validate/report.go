// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package validate

import (
	"encoding/json"

	"github.com/saites/igra-converter/personnel"
	"github.com/saites/igra-converter/registration"
)

// PartnerLink is a tentative or confirmed link from one registration to a
// partner, carried through Pass 1 into Pass 2's symmetry check.
type PartnerLink struct {
	Event        registration.EventID `json:"event"`
	Round        int                  `json:"round"`
	Index        int                  `json:"index"`
	IGRANumber   string               `json:"igra_number"`
}

// Result is one registration's full outcome: whether it resolved to a
// known record, its confirmed partner links, and every issue raised
// against it.
type Result struct {
	Registration registration.Registration `json:"registration"`
	Found        *string                   `json:"found"`
	Partners     []PartnerLink             `json:"partners"`
	Issues       []Issue                   `json:"issues"`
}

// MarshalJSON renders an Issue as {"problem": ..., "fix": ...}.
func (i Issue) MarshalJSON() ([]byte, error) {
	type wire struct {
		Problem Problem `json:"problem"`
		Fix     Fix     `json:"fix"`
	}
	return json.Marshal(wire{Problem: i.Problem, Fix: i.Fix})
}

// Report is the full validation outcome for a batch, matching spec §6's
// JSON shape exactly.
type Report struct {
	Results  []Result                    `json:"results"`
	Relevant map[string]personnel.Record `json:"relevant"`
}
