// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

import "testing"

func TestDirectionReverseInvolution(t *testing.T) {
	for _, d := range AllDirections {
		if got := d.Reverse().Reverse(); got != d {
			t.Errorf("Reverse().Reverse() of %s = %s, want %s", d, got, d)
		}
	}
}

func TestVeerRoundTrip(t *testing.T) {
	for _, d := range AllDirections {
		if got := d.Veer(CW).Veer(CCW); got != d {
			t.Errorf("%s.Veer(CW).Veer(CCW) = %s, want %s", d, got, d)
		}
		if got := d.Veer(CCW).Veer(CW); got != d {
			t.Errorf("%s.Veer(CCW).Veer(CW) = %s, want %s", d, got, d)
		}
	}
}

func TestSharpTurnIsThreeVeers(t *testing.T) {
	for _, d := range AllDirections {
		want := d.Veer(CW).Veer(CW).Veer(CW)
		if got := d.SharpTurn(CW); got != want {
			t.Errorf("%s.SharpTurn(CW) = %s, want %s", d, got, want)
		}
	}
}

func TestVeerEightTimesIsIdentity(t *testing.T) {
	d := North
	for i := 0; i < 8; i++ {
		d = d.Veer(CW)
	}
	if d != North {
		t.Errorf("eight CW veers = %s, want North", d)
	}
}

func TestNeighborTowardsInverse(t *testing.T) {
	origin := Point{Col: 5, Row: 5}
	for _, d := range AllDirections {
		n := origin.Neighbor(d)
		got, ok := origin.Towards(n)
		if !ok {
			t.Fatalf("Towards(%s neighbor) reported not-aligned", d)
		}
		if got != d {
			t.Errorf("origin.Neighbor(%s) then Towards = %s, want %s", d, got, d)
		}
	}
}

func TestTowardsRejectsMisaligned(t *testing.T) {
	origin := Point{Col: 1, Row: 1}
	if _, ok := origin.Towards(Point{Col: 4, Row: 2}); ok {
		t.Error("Towards should reject a non-compass-aligned offset")
	}
	if _, ok := origin.Towards(origin); ok {
		t.Error("Towards should reject the zero offset")
	}
}

func TestDirSetMembership(t *testing.T) {
	s := DirsOf(North, East)
	if !s.Has(North) || !s.Has(East) {
		t.Error("DirsOf should contain the directions it was built from")
	}
	if s.Has(South) || s.Has(West) {
		t.Error("DirsOf should not contain directions it wasn't built from")
	}
	if DirsAll.Empty() {
		t.Error("DirsAll should not be empty")
	}
	for _, d := range AllDirections {
		if !DirsAll.Has(d) {
			t.Errorf("DirsAll should contain %s", d)
		}
	}
}

func TestVerNorthHorEastProjections(t *testing.T) {
	if North.VerNorth() != 1 || South.VerNorth() != -1 || East.VerNorth() != 0 {
		t.Error("VerNorth projection incorrect")
	}
	if East.HorEast() != 1 || West.HorEast() != -1 || North.HorEast() != 0 {
		t.Error("HorEast projection incorrect")
	}
}
