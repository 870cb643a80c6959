// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package registration

// EventID names one rodeo event a contestant can register for. The set is
// closed: anything else decoded from a batch is an UnknownEventID finding,
// not a parse error (spec §4.6 item 3).
type EventID string

const (
	FlagRacing             EventID = "FlagRacing"
	ChuteDogging           EventID = "ChuteDogging"
	CalfRopingOnFoot       EventID = "CalfRopingOnFoot"
	SteerRiding            EventID = "SteerRiding"
	RanchSaddleBroncRiding EventID = "RanchSaddleBroncRiding"
	BullRiding             EventID = "BullRiding"
	PoleBending            EventID = "PoleBending"
	BarrelRacing           EventID = "BarrelRacing"
	MountedBreakaway       EventID = "MountedBreakaway"

	TeamRopingHeader EventID = "TeamRopingHeader"
	TeamRopingHeeler EventID = "TeamRopingHeeler"
	WildDragRace     EventID = "WildDragRace"
	GoatDressing     EventID = "GoatDressing"
	SteerDecorating  EventID = "SteerDecorating"
)

// soloEvents registers alone: zero partners, ever.
var soloEvents = map[EventID]bool{
	FlagRacing:             true,
	ChuteDogging:           true,
	CalfRopingOnFoot:       true,
	SteerRiding:            true,
	RanchSaddleBroncRiding: true,
	BullRiding:             true,
	PoleBending:            true,
	BarrelRacing:           true,
	MountedBreakaway:       true,
}

// teamEventPartners gives the exact number of partners a team event
// requires, per round.
var teamEventPartners = map[EventID]int{
	TeamRopingHeader: 1,
	TeamRopingHeeler: 1,
	WildDragRace:     2,
	GoatDressing:     1,
	SteerDecorating:  1,
}

// Valid reports whether id is one of the closed set of known event IDs.
func (id EventID) Valid() bool {
	return soloEvents[id] || teamEventPartners[id] > 0
}

// IsSolo reports whether id is a solo event (exactly zero partners).
func (id EventID) IsSolo() bool {
	return soloEvents[id]
}

// RequiredPartners returns the exact partner count a team event requires
// and ok=true, or ok=false if id is not a team event (solo, or unknown).
func (id EventID) RequiredPartners() (n int, ok bool) {
	n, ok = teamEventPartners[id]
	return n, ok
}
