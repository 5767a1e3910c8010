// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

import "unicode"

// A Finder walks a Grid driven by a Table, producing the Paths and Texts
// of a single extraction pass (§4.4-§4.6). A Finder is single-use: call
// Find once per Grid.
type Finder struct {
	Grid  *Grid
	Table *Table

	// Warnings collects non-fatal issues raised during extraction:
	// AmbiguousIdentifier and footnote values that fail to parse.
	// NoMatchAtStep is raised by the Renderer, not here.
	Warnings []error
}

// NewFinder builds a Finder over g driven by t.
func NewFinder(g *Grid, t *Table) *Finder {
	return &Finder{Grid: g, Table: t}
}

// An Extraction is the immutable result of a single Find pass: every Path
// and Text discovered, in the order they were found.
type Extraction struct {
	Paths []*Path
	Texts []*Text
}

// Find runs path discovery (§4.4) followed by text and identifier
// extraction (§4.5), consuming Grid cells as it goes (§4.6). After Find
// returns, the Grid is read-only.
func (f *Finder) Find() *Extraction {
	ex := &Extraction{}
	for row := 1; row <= f.Grid.Height; row++ {
		for col := 1; col <= f.Grid.Width; col++ {
			start := Point{Col: col, Row: row}
			cell, _ := f.Grid.At(start)
			if cell.Status != StatusContent || isBlank(cell.Char) {
				continue
			}
			path, ok := f.walkFrom(start)
			if !ok {
				continue // silent per §7: path-discovery failure at a starting cell
			}
			for _, s := range path.Steps {
				f.Grid.consume(s.Pt)
			}
			ex.Paths = append(ex.Paths, path)
		}
	}
	f.extractText(ex)
	f.bindIdentifiers(ex)
	f.bindFootnotes(ex)
	return ex
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == 0
}

// walkFrom attempts to grow a maximal path starting at s, per §4.4.
func (f *Finder) walkFrom(s Point) (*Path, bool) {
	startCell, _ := f.Grid.At(s)
	steps := []Step{{Pt: s, Char: startCell.Char}}
	visited := map[Point]bool{s: true}
	var best *Path
	f.dfs(steps, visited, &best)
	if best == nil || len(best.Steps) < 2 {
		return nil, false
	}
	return best, true
}

type walkCandidate struct {
	dir       Direction
	pt        Point
	ch        rune
	isClosure bool
}

// dfs explores every legal continuation of steps, recording into *best the
// most-maximal completed path found so far, per the ordering in
// considerBest. visited is mutated and restored (backtracked) as siblings
// are explored.
func (f *Finder) dfs(steps []Step, visited map[Point]bool, best **Path) {
	cur := steps[len(steps)-1]
	start := steps[0].Pt

	haveIn := len(steps) >= 2
	var dIn Direction
	var prevChar rune
	if haveIn {
		prev := steps[len(steps)-2]
		dIn, _ = prev.Pt.Towards(cur.Pt)
		prevChar = prev.Char
	}

	var candidates []walkCandidate
	for _, d := range AllDirections {
		q := cur.Pt.Neighbor(d)
		if !f.Grid.Holds(q) {
			continue
		}
		qCell, _ := f.Grid.At(q)
		if haveIn && q == start {
			candidates = append(candidates, walkCandidate{dir: d, pt: q, ch: qCell.Char, isClosure: true})
			continue
		}
		if visited[q] || qCell.Status != StatusContent || isBlank(qCell.Char) {
			continue
		}
		candidates = append(candidates, walkCandidate{dir: d, pt: q, ch: qCell.Char})
	}

	ordered := tieBreakOrder(candidates, dIn, haveIn)

	inObs := Absent
	if haveIn {
		inObs = Observed(prevChar, dIn)
	}

	for _, c := range ordered {
		if c.isClosure {
			f.tryLoopClosure(steps, c, best)
			continue
		}
		outObs := Observed(c.ch, c.dir)
		if _, ok := f.Table.FindStep(inObs, cur.Char, outObs); !ok {
			continue
		}
		visited[c.pt] = true
		f.dfs(append(steps, Step{Pt: c.pt, Char: c.ch}), visited, best)
		delete(visited, c.pt)
	}

	if haveIn {
		if _, ok := f.Table.FindEnd(inObs, cur.Char); ok {
			considerBest(best, &Path{Steps: append([]Step(nil), steps...), Closed: false})
		}
	}
}

// tryLoopClosure attempts to close the loop back at steps[0], per §4.4's
// "Loop closure" rule: the loop-start Entry's incoming side must accept
// the step just traversed into the start, and its outgoing side must
// accept the first step originally taken out of the start.
func (f *Finder) tryLoopClosure(steps []Step, c walkCandidate, best **Path) {
	if len(steps) < 2 {
		return
	}
	start := steps[0]
	firstStep := steps[1]
	outDir, _ := start.Pt.Towards(firstStep.Pt)
	loopIn := Observed(steps[len(steps)-1].Char, c.dir)
	loopOut := Observed(firstStep.Char, outDir)
	if _, ok := f.Table.FindLoopStart(loopIn, start.Char, loopOut); ok {
		considerBest(best, &Path{Steps: append([]Step(nil), steps...), Closed: true})
	}
}

// considerBest applies §4.4's maximality ordering: closed beats open,
// longer beats shorter, otherwise the earlier (tie-break-first) candidate
// found so far is kept.
func considerBest(best **Path, cand *Path) {
	if *best == nil {
		*best = cand
		return
	}
	cur := *best
	if cand.Closed != cur.Closed {
		if cand.Closed {
			*best = cand
		}
		return
	}
	if len(cand.Steps) > len(cur.Steps) {
		*best = cand
	}
}

// tieBreakOrder implements §4.4 step 3: straight first, then veer-CW, then
// veer-CCW, then any remaining, in compass order. With no incoming
// direction (the very first step of an attempt), candidates are tried in
// plain compass order, since there is no "straight" to prefer.
func tieBreakOrder(candidates []walkCandidate, dIn Direction, haveIn bool) []walkCandidate {
	if !haveIn {
		return candidates
	}
	byDir := make(map[Direction]walkCandidate, len(candidates))
	for _, c := range candidates {
		byDir[c.dir] = c
	}
	var out []walkCandidate
	used := map[Direction]bool{}
	for _, d := range []Direction{dIn, dIn.Veer(CW), dIn.Veer(CCW)} {
		if c, ok := byDir[d]; ok && !used[d] {
			out = append(out, c)
			used[d] = true
		}
	}
	for _, d := range AllDirections {
		if used[d] {
			continue
		}
		if c, ok := byDir[d]; ok {
			out = append(out, c)
			used[d] = true
		}
	}
	return out
}
