// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

import (
	"strings"
	"testing"
)

// findOne runs a Find pass over src with DemoTable and fails the test
// unless exactly one Path was discovered, returning it.
func findOne(t *testing.T, src string) *Path {
	t.Helper()
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ex := NewFinder(g, DemoTable()).Find()
	if len(ex.Paths) != 1 {
		t.Fatalf("Find() found %d paths, want 1 (grid:\n%s)", len(ex.Paths), src)
	}
	return ex.Paths[0]
}

// TestScenarioHorizontalLine covers spec.md §8 scenario 1: a bare run of
// '-' renders as a single open polyline: an M/L pair for the first cell,
// then one L for each further cell.
func TestScenarioHorizontalLine(t *testing.T) {
	p := findOne(t, "---")
	if p.Closed {
		t.Error("a bare run of '-' should be an open path")
	}
	if len(p.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(p.Steps))
	}
	rp := NewRenderer(DemoTable()).RenderPath(p)
	if len(rp.Commands) != 3 {
		t.Fatalf("got %d commands, want 3", len(rp.Commands))
	}
	if !strings.HasPrefix(rp.Commands[0].Text, "M ") {
		t.Errorf("first command should start the path with M, got %q", rp.Commands[0].Text)
	}
	if want, got := "M 0,6 L 9,6", rp.Commands[0].Text; got != want {
		t.Errorf("first command = %q, want %q", got, want)
	}
	if want, got := "L 27,6", rp.Commands[2].Text; got != want {
		t.Errorf("last command = %q, want %q", got, want)
	}
}

// TestScenarioRectangle covers spec.md §8 scenario 2: a closed rectangle
// canonicalizes via RectCorners, and consuming its border cells leaves the
// interior untouched.
func TestScenarioRectangle(t *testing.T) {
	src := ".---.\n|   |\n'---'"
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ex := NewFinder(g, DemoTable()).Find()
	if len(ex.Paths) != 1 {
		t.Fatalf("found %d paths, want 1", len(ex.Paths))
	}
	p := ex.Paths[0]
	if !p.Closed {
		t.Fatal("rectangle should be a closed path")
	}
	ul, ur, br, bl, ok := p.RectCorners()
	if !ok {
		t.Fatal("RectCorners should recognize this as a rectangle")
	}
	wantUL, wantUR := Point{Col: 1, Row: 1}, Point{Col: 5, Row: 1}
	wantBR, wantBL := Point{Col: 5, Row: 3}, Point{Col: 1, Row: 3}
	if ul != wantUL || ur != wantUR || br != wantBR || bl != wantBL {
		t.Errorf("corners = %s %s %s %s, want %s %s %s %s", ul, ur, br, bl, wantUL, wantUR, wantBR, wantBL)
	}
	for _, s := range p.Steps {
		g.consume(s.Pt)
	}
	interior, _ := g.At(Point{Col: 3, Row: 2})
	if interior.Status != StatusContent {
		t.Error("interior blank cell should be untouched by consumption")
	}
}

// TestScenarioArrow covers spec.md §8 scenario 3: a line ending in '>'
// gets the chevron template and no continuation past the arrowhead.
func TestScenarioArrow(t *testing.T) {
	p := findOne(t, "--->")
	if len(p.Steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(p.Steps))
	}
	last := p.Steps[len(p.Steps)-1]
	if last.Char != '>' {
		t.Fatalf("last step char = %q, want '>'", last.Char)
	}
	rp := NewRenderer(DemoTable()).RenderPath(p)
	tail := rp.Commands[len(rp.Commands)-1].Text
	if !strings.Contains(tail, "l 3,0") {
		t.Errorf("arrow command should draw the chevron, got %q", tail)
	}
}

// TestScenarioDashedLine covers spec.md §8 scenario 4: '=' produces the
// same shape as '-' but every command carries the dasharray attribute.
func TestScenarioDashedLine(t *testing.T) {
	g, err := Parse("===")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ex := NewFinder(g, OriginalTable()).Find()
	if len(ex.Paths) != 1 {
		t.Fatalf("found %d paths, want 1", len(ex.Paths))
	}
	rp := NewRenderer(OriginalTable()).RenderPath(ex.Paths[0])
	for _, c := range rp.Commands {
		found := false
		for _, a := range c.Attrs {
			if a.Name == "stroke-dasharray" && a.Value == "5,2" {
				found = true
			}
		}
		if !found {
			t.Errorf("command at %s missing stroke-dasharray attr, got %+v", c.Pt, c.Attrs)
		}
	}
}

// TestScenarioDiamond covers spec.md §8 scenario 5: '(' and ')' bend
// between the two diagonals on their own side rather than running straight
// through, closing an eight-step loop.
func TestScenarioDiamond(t *testing.T) {
	src := "  +\n / \\\n(   )\n \\ /\n  +"
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ex := NewFinder(g, OriginalTable()).Find()
	if len(ex.Paths) != 1 {
		t.Fatalf("found %d paths, want 1 (grid:\n%s)", len(ex.Paths), src)
	}
	p := ex.Paths[0]
	if !p.Closed {
		t.Fatal("diamond should close into a loop")
	}
	if len(p.Steps) != 8 {
		t.Fatalf("got %d steps, want 8", len(p.Steps))
	}
}

// TestScenarioIdentifierFootnote covers spec.md §8 scenario 6: a bracketed
// identifier inside a shape binds the trailing footnote's attributes onto
// that shape's rendered path.
func TestScenarioIdentifierFootnote(t *testing.T) {
	src := ".---.\n|[k]|\n'---'\n\n[k]: {\"fill\":\"red\"}"
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f := NewFinder(g, DemoTable())
	ex := f.Find()
	if len(ex.Paths) != 1 {
		t.Fatalf("found %d paths, want 1", len(ex.Paths))
	}
	p := ex.Paths[0]
	if p.ID != "k" {
		t.Errorf("path ID = %q, want %q", p.ID, "k")
	}
	found := false
	for _, a := range p.Attrs {
		if a.Name == "fill" && a.Value == "red" {
			found = true
		}
	}
	if !found {
		t.Errorf("path attrs = %+v, want a fill=red attr bound from the footnote", p.Attrs)
	}
}
