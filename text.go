// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

import (
	"regexp"
	"unicode"
)

// bracketIdent matches a Text span whose entire value is a `[name]`
// identifier marker.
var bracketIdent = regexp.MustCompile(`^\[([^\]\n]+)\]$`)

// extractText scans the grid left-to-right, top-to-bottom for maximal
// horizontal runs of non-blank, unconsumed cells, per §4.5. Following the
// teacher's canvas.go scanText, up to two consecutive whitespace cells may
// appear inside a run before it is considered ended, and trailing
// whitespace is trimmed from the result.
func (f *Finder) extractText(ex *Extraction) {
	for row := 1; row <= f.Grid.Height; row++ {
		col := 1
		for col <= f.Grid.Width {
			start := Point{Col: col, Row: row}
			cell, _ := f.Grid.At(start)
			if cell.Status != StatusContent || isBlank(cell.Char) {
				col++
				continue
			}
			pts := []Point{start}
			runes := []rune{cell.Char}
			whitespaceStreak := 0
			c := col + 1
			for c <= f.Grid.Width {
				p := Point{Col: c, Row: row}
				pc, _ := f.Grid.At(p)
				if pc.Status != StatusContent {
					break
				}
				if isBlank(pc.Char) {
					whitespaceStreak++
					if whitespaceStreak > 2 {
						break
					}
				} else {
					whitespaceStreak = 0
				}
				pts = append(pts, p)
				runes = append(runes, pc.Char)
				c++
			}
			for len(pts) > 0 && isBlank(runes[len(runes)-1]) {
				pts = pts[:len(pts)-1]
				runes = runes[:len(runes)-1]
			}
			for _, p := range pts {
				f.Grid.consume(p)
				cc, _ := f.Grid.At(p)
				cc.Status = StatusUsed
				f.Grid.Set(p, cc)
			}
			ex.Texts = append(ex.Texts, &Text{Anchor: start, Value: string(runes)})
			col = c
		}
	}
}

// bindIdentifiers implements §4.5's identifier inference. A Text span
// whose value is exactly `[name]` is a candidate marker; it qualifies to
// label a Path when its anchor sits immediately to the right of one of
// the path's own vertical-edge steps, or a Text span when its anchor
// sits one cell below a letter of that span. For each owner, every
// qualifying marker is collected; if more than one qualifies, the
// upper-left marker is chosen and a WarnAmbiguousIdentifier is surfaced.
func (f *Finder) bindIdentifiers(ex *Extraction) {
	var markers []*Text
	for _, t := range ex.Texts {
		if bracketIdent.MatchString(t.Value) {
			markers = append(markers, t)
		}
	}
	if len(markers) == 0 {
		return
	}

	for _, p := range ex.Paths {
		p := p
		f.bindOwnerIdentifier(markers, p.Points()[0], p.SetID, func(pt Point) bool {
			return pathQualifiesFor(p, pt)
		})
	}
	for _, t := range ex.Texts {
		if bracketIdent.MatchString(t.Value) {
			continue // a marker cannot label itself
		}
		t := t
		f.bindOwnerIdentifier(markers, t.Anchor, func(id string) { t.ID = id }, func(pt Point) bool {
			return textQualifiesFor(t, pt)
		})
	}
}

// bindOwnerIdentifier collects every marker qualifying for one owner
// (qualifies reports whether a marker anchored at pt belongs to it),
// resolves ambiguity among those markers per §4.5, and calls setID with
// the winner's name.
func (f *Finder) bindOwnerIdentifier(markers []*Text, ownerAnchor Point, setID func(string), qualifies func(Point) bool) {
	var cands []*Text
	for _, m := range markers {
		if qualifies(m.Anchor) {
			cands = append(cands, m)
		}
	}
	if len(cands) == 0 {
		return
	}
	chosen := cands[0]
	for _, c := range cands[1:] {
		if upperLeftOf(c.Anchor, chosen.Anchor) {
			chosen = c
		}
	}
	if len(cands) > 1 {
		var candPts []Point
		for _, c := range cands {
			candPts = append(candPts, c.Anchor)
		}
		f.Warnings = append(f.Warnings, &WarnAmbiguousIdentifier{Owner: ownerAnchor, Candidates: candPts, Chosen: chosen.Anchor})
	}
	name := bracketIdent.FindStringSubmatch(chosen.Value)[1]
	setID(name)
}

func upperLeftOf(a, b Point) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// pathQualifiesFor reports whether the identifier marker anchored at pt
// belongs to path p: the cell immediately left of pt is one of p's own
// vertical-edge steps (e.g. `|[k]|`).
func pathQualifiesFor(p *Path, pt Point) bool {
	left := Point{Col: pt.Col - 1, Row: pt.Row}
	for _, s := range p.Steps {
		if s.Pt == left && isVerticalEdge(s.Char) {
			return true
		}
	}
	return false
}

// textQualifiesFor reports whether the identifier marker anchored at pt
// belongs to Text span t: pt is one row below t and its column lands on
// a letter of t's value.
func textQualifiesFor(t *Text, pt Point) bool {
	if pt.Row != t.Anchor.Row+1 {
		return false
	}
	offset := pt.Col - t.Anchor.Col
	runes := []rune(t.Value)
	if offset < 0 || offset >= len(runes) {
		return false
	}
	return unicode.IsLetter(runes[offset])
}
