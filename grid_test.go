// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

import "testing"

func TestParseRectangularity(t *testing.T) {
	g, err := Parse("ab\nc\ndefg")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Width != 4 || g.Height != 3 {
		t.Fatalf("got %dx%d, want 4x3", g.Width, g.Height)
	}
	c, ok := g.At(Point{Col: 2, Row: 2})
	if !ok || c.Status != StatusPad {
		t.Errorf("short row should be padded, got %+v", c)
	}
	c, ok = g.At(Point{Col: 1, Row: 1})
	if !ok || c.Char != 'a' || c.Status != StatusContent {
		t.Errorf("expected content 'a' at (1,1), got %+v", c)
	}
}

func TestParseFootnotesSeparatedFromBody(t *testing.T) {
	g, err := Parse("+-+\n| |\n+-+\n[a]: hello")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Height != 3 {
		t.Fatalf("footnote line leaked into body: height = %d, want 3", g.Height)
	}
	if g.Attrs["a"] != "hello" {
		t.Errorf("Attrs[%q] = %q, want %q", "a", g.Attrs["a"], "hello")
	}
}

func TestConsumeMonotonic(t *testing.T) {
	g, err := Parse("-+")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := Point{Col: 1, Row: 1}
	g.consume(p)
	c, _ := g.At(p)
	if c.Status != StatusCleared {
		t.Errorf("consuming '-' should clear it, got status %v", c.Status)
	}
	before := c
	g.consume(p) // consuming an already-consumed cell must be a no-op
	after, _ := g.At(p)
	if after != before {
		t.Errorf("re-consuming a cell changed it: %+v -> %+v", before, after)
	}
}

func TestConsumeJointStaysUsed(t *testing.T) {
	g, err := Parse("+")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := Point{Col: 1, Row: 1}
	g.consume(p)
	c, _ := g.At(p)
	if c.Status != StatusUsed {
		t.Errorf("consuming a joint should mark it Used (still visible), got %v", c.Status)
	}
}

func TestHoldsBounds(t *testing.T) {
	g, _ := Parse("ab\ncd")
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{Col: 1, Row: 1}, true},
		{Point{Col: 2, Row: 2}, true},
		{Point{Col: 0, Row: 1}, false},
		{Point{Col: 3, Row: 1}, false},
		{Point{Col: 1, Row: 0}, false},
		{Point{Col: 1, Row: 3}, false},
	}
	for _, c := range cases {
		if got := g.Holds(c.p); got != c.want {
			t.Errorf("Holds(%s) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestParseWidthIsScalarCountNotDisplayWidth(t *testing.T) {
	g, err := Parse("A漢B")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Width != 3 {
		t.Fatalf("Width = %d, want 3 (Unicode-scalar count; '漢' is one Cell despite rendering two columns wide)", g.Width)
	}
	wide, _ := g.At(Point{Col: 2, Row: 1})
	if wide.Char != '漢' || wide.Status != StatusContent {
		t.Errorf("Col 2 = %+v, want content '漢'", wide)
	}
	if got := g.ToString(); got != "A漢B" {
		t.Errorf("ToString() = %q, want %q (round-trip must not insert padding for a wide glyph)", got, "A漢B")
	}
}

func TestToStringRoundTripsUnconsumedGrid(t *testing.T) {
	src := "abc\ndef"
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := g.ToString(); got != src {
		t.Errorf("ToString() = %q, want %q", got, src)
	}
}
