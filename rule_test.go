// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

import "testing"

func TestMatchSideBlankRequiresAbsence(t *testing.T) {
	if !matchSide(BlankSide, Absent) {
		t.Error("Blank should match Absent")
	}
	if matchSide(BlankSide, Observed('-', East)) {
		t.Error("Blank should not match a present observation")
	}
}

func TestMatchSideMustRequiresCharAndDir(t *testing.T) {
	n := MustSide(CSChar('-'), DirsOf(East))
	if !matchSide(n, Observed('-', East)) {
		t.Error("Must should match a matching char+dir")
	}
	if matchSide(n, Observed('-', West)) {
		t.Error("Must should reject a non-matching direction")
	}
	if matchSide(n, Observed('|', East)) {
		t.Error("Must should reject a non-matching char")
	}
	if matchSide(n, Absent) {
		t.Error("Must should reject an absent neighbor")
	}
}

func TestMatchSideMayAcceptsAbsentOrMatching(t *testing.T) {
	n := MaySide(CSChar('-'), DirsOf(East))
	if !matchSide(n, Absent) {
		t.Error("May should accept Absent")
	}
	if !matchSide(n, Observed('-', East)) {
		t.Error("May should accept a matching observation")
	}
	if matchSide(n, Observed('-', West)) {
		t.Error("May should still reject a wrong direction when present")
	}
}

func TestTableFindStepIgnoresLoopStartEntries(t *testing.T) {
	step := BuildEntry(Start, CSChar('+'), Side(MustSide(CSChar('-'), DirsOf(East))), "step")
	loop := BuildEntry(Side(MustSide(CSAny, DirsAll)), Loop(CSChar('+')), Side(MustSide(CSAny, DirsAll)), "loop")
	table := NewTable(loop, step)

	if _, ok := table.FindStep(Absent, '+', Observed('-', East)); !ok {
		t.Error("FindStep should skip the loop-start entry and still find the plain one")
	}
	if _, ok := table.FindLoopStart(Observed('-', West), '+', Observed('-', East)); !ok {
		t.Error("FindLoopStart should find the loop-start entry")
	}
	if _, ok := table.FindLoopStart(Absent, '+', Observed('-', East)); ok {
		t.Error("FindLoopStart should not match a Blank-incoming context (loop entries can't have Blank sides)")
	}
}

func TestFindStartAgreesWithFindStepAtAbsentIncoming(t *testing.T) {
	e := BuildEntry(Start, CSChar('-'), Side(MustSide(CSChar('-'), DirsOf(East))), "start")
	table := NewTable(e)
	out := Observed('-', East)

	_, viaStart := table.FindStart('-', out)
	_, viaStep := table.FindStep(Absent, '-', out)
	if viaStart != viaStep {
		t.Error("FindStart should agree with FindStep(Absent, ...) since both treat the incoming side as absent")
	}
}

func TestFindEndAgreesWithFindStepAtAbsentOutgoing(t *testing.T) {
	e := BuildEntry(Side(MustSide(CSChar('-'), DirsOf(East))), CSChar('-'), End, "end")
	table := NewTable(e)
	in := Observed('-', East)

	_, viaEnd := table.FindEnd(in, '-')
	_, viaStep := table.FindStep(in, '-', Absent)
	if viaEnd != viaStep {
		t.Error("FindEnd should agree with FindStep(..., Absent) since both treat the outgoing side as absent")
	}
}

func TestBuildEntryRejectsStartAndEndTogether(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BuildEntry(Start, ..., End, ...) should panic: a rule can't be both")
		}
	}()
	BuildEntry(Start, CSChar('.'), End, "unreachable")
}

func TestBuildEntryRejectsBlankLoopStart(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a loop-start entry with a Blank side should panic")
		}
	}()
	BuildEntry(Start, Loop(CSChar('+')), Side(MustSide(CSAny, DirsAll)), "unreachable")
}
