// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

// This file implements §4.8's two built-in tables using the builder API
// from builder.go. Rather than transcribing roughly 120 near-identical
// upstream PHP `case` branches by hand (a2s.go's parseLines/walk switch
// statements this table replaces), each character family is generated by
// a small helper so the table reads as a specification of ASCII-art
// conventions: which characters are straight edges, which are corners,
// which are dashed, which are arrowheads.

var dashArgs = []Attr{{Name: "stroke-dasharray", Value: "5,2"}}

// neighborAny builds the Neighbor this file uses for every connector rule:
// any non-blank glyph found in the given direction. The current cell's own
// CharSet (cs, in the caller) already pins down what this rule matches;
// restricting the neighbor further to cs's own character would stop a
// straight line from ever reaching a corner or an arrowhead, so acceptance
// of what the neighbor cell actually is gets deferred to that neighbor's
// own Entry once it becomes "current".
func neighborAny(d Direction) Neighbor {
	return MustSide(CSAny, DirsOf(d))
}

// straightFamily builds start/step/end Entries for a straight-edge
// character (e.g. '-' or '|') that only ever continues along axis d1/d2.
func straightFamily(cs CharSet, d1, d2 Direction, attrs ...Attr) []Entry {
	var out []Entry
	for _, d := range [2]Direction{d1, d2} {
		out = append(out,
			BuildEntry(Start, cs, Side(neighborAny(d)), "M {RO} L {O}", attrs...),
			BuildEntry(Side(neighborAny(d)), cs, Side(neighborAny(d)), "L {O}", attrs...),
			BuildEntry(Side(neighborAny(d)), cs, End, "L {RI}", attrs...),
		)
	}
	return out
}

// diagonalFamily builds start/step/end Entries for a diagonal character
// that only ever continues in one of the two directions along its slope.
func diagonalFamily(cs CharSet, d1, d2 Direction) []Entry {
	return straightFamily(cs, d1, d2)
}

// jointFamily builds a bend: a character that may connect any incoming
// direction in ds to any outgoing direction in ds (not necessarily the
// same one, unlike straightFamily), plus a loop-start variant of the same
// shape so the finder may close a polygon here (§4.4's "Loop closure").
func jointFamily(cs CharSet, ds DirSet, template string) []Entry {
	must := MustSide(CSAny, ds)
	may := MaySide(CSAny, ds)
	return []Entry{
		BuildEntry(Start, cs, Side(may), "M {RO} L {O}"),
		BuildEntry(Side(may), cs, Side(may), template),
		BuildEntry(Side(may), cs, End, "L {RI}"),
		BuildEntry(Side(must), Loop(cs), Side(must), template),
	}
}

// cornerFamily is jointFamily for a character that can bend between any
// two compass directions: '+', '.', '\'', and the box-drawing joints.
func cornerFamily(cs CharSet, template string) []Entry {
	return jointFamily(cs, DirsAll, template)
}

// arrowFamily builds a terminal-marker entry: an arrowhead character that
// ends a path arriving by travelling in direction travel (e.g. '>' is only
// a valid terminator for a line that travelled East into it), drawing the
// little chevron scenario 3 of spec.md §8 pins down exactly.
func arrowFamily(cs CharSet, travel Direction) Entry {
	return BuildEntry(Side(MustSide(CSAny, DirsOf(travel))), cs, End, "L {RI} l 3,0 m -3,-3 l 3,3 l -3,3 m 0,-3")
}

// DemoTable is the small (37 entry) built-in table covering the core
// ASCII-art punctuation: straight edges, sharp/rounded corners,
// diagonals, and a plain arrow terminator.
func DemoTable() *Table {
	var entries []Entry
	entries = append(entries, straightFamily(CSChar('-'), East, West)...)
	entries = append(entries, straightFamily(CSChar('|'), North, South)...)
	entries = append(entries, diagonalFamily(CSChar('/'), NorthEast, SouthWest)...)
	entries = append(entries, diagonalFamily(CSChar('\\'), SouthEast, NorthWest)...)
	entries = append(entries, cornerFamily(CSChar('+'), "L {O}")...)
	entries = append(entries, cornerFamily(CSChar('.'), "Q {C} {O}")...)
	entries = append(entries, cornerFamily(CSChar('\''), "Q {C} {O}")...)
	entries = append(entries, arrowFamily(CSChar('>'), East))
	return NewTable(entries...)
}

// OriginalTable is the larger built-in table: everything in DemoTable
// plus dashed lines, box-drawing glyphs, small/large circle joins, diamond
// sides, and all four cardinal arrowheads, per §4.8.
func OriginalTable() *Table {
	var entries []Entry
	entries = append(entries, DemoTable().Entries()...)

	// Dashed lines (§8 scenario 4 pins the exact "5,2" dasharray value).
	entries = append(entries, straightFamily(CSChar('='), East, West, dashArgs...)...)
	entries = append(entries, straightFamily(CSChar(':'), North, South, dashArgs...)...)

	// Box-drawing glyphs: straight runs plus omnidirectional joints.
	entries = append(entries, straightFamily(CSChar('─'), East, West)...)
	entries = append(entries, straightFamily(CSChar('│'), North, South)...)
	for _, c := range []rune{'┌', '┐', '└', '┘', '├', '┤', '┬', '┴', '┼'} {
		entries = append(entries, cornerFamily(CSChar(c), "L {O}")...)
	}

	// Small and large circle joins: elliptical-arc anchors nudged inward
	// so the arc doesn't overshoot into the neighboring cell.
	entries = append(entries, cornerFamily(CSChar('o'), "A 2,2 0 0 1 {O/o}")...)
	entries = append(entries, cornerFamily(CSChar('O'), "A 4,4 0 0 1 {O/o}")...)

	// Diamond sides bend between the two diagonals on their own side,
	// unlike '/' and '\' which run straight through a single slope. The
	// DirSet here is the travel direction through the joint, not the
	// compass position of the neighbor: '(' is entered heading SW (from
	// the '/' above it) and left heading SE (toward the '\' below it);
	// ')' mirrors it, entered heading NE and left heading NW.
	entries = append(entries, jointFamily(CSChar('('), DirsOf(SouthWest, SouthEast), "L {O}")...)
	entries = append(entries, jointFamily(CSChar(')'), DirsOf(NorthEast, NorthWest), "L {O}")...)

	// The remaining three cardinal arrowheads; '>' is already in
	// DemoTable's entries above.
	entries = append(entries,
		arrowFamily(CSChar('<'), West),
		arrowFamily(CSChar('^'), North),
		arrowFamily(CSChar('v'), South),
	)

	return NewTable(entries...)
}
